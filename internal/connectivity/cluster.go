// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package connectivity

// clusterID - the handle of a cluster in the arena. Handles are taken from a sequence and never reused,
// so two vertices are connected iff their handles are equal.
type clusterID int

// cluster - a set of vertexes forming one connected component.
type cluster[K comparable] struct {
	// id - the handle of the cluster in the arena.
	id clusterID
	// members - the vertexes of the component.
	members map[K]struct{}
}

func newCluster[K comparable](id clusterID) *cluster[K] {
	return &cluster[K]{
		id:      id,
		members: make(map[K]struct{}),
	}
}

func (c *cluster[K]) add(v K) {
	c.members[v] = struct{}{}
}

func (c *cluster[K]) size() int {
	return len(c.members)
}

func (c *cluster[K]) vertexes() []K {
	res := make([]K, 0, len(c.members))
	for v := range c.members {
		res = append(res, v)
	}
	return res
}
