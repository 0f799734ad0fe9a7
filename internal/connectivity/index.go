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

// Index - undirected, unweighted graph that keeps its connected components (clusters) indexed, so
// the connectivity check between two vertexes is a pair of map lookups.
//
// Linking two vertexes merges their clusters. Unlinking rebuilds the affected cluster by DFS
// over the adjacency sets, because the removed edge might have been a bridge.
//
// Index is not safe for concurrent use. Link and Unlink both read and then rewrite the cluster
// index, so a caller sharing an Index between goroutines must guard all calls with one mutex.
type Index[K comparable] struct {
	// adjacency - the vertex registry. The key is the vertex and the value is the set of vertexes
	// it is directly linked to. A vertex is registered once it appears in Link and is never removed.
	adjacency map[K]map[K]struct{}
	// membership - the cluster index. Maps each registered vertex to the handle of its cluster.
	membership map[K]clusterID
	// clusters - the arena of live clusters.
	clusters map[clusterID]*cluster[K]
	// clusterIDSeq - the next cluster handle.
	clusterIDSeq clusterID
}

// New - creates an empty Index.
func New[K comparable]() *Index[K] {
	return &Index[K]{
		adjacency:  make(map[K]map[K]struct{}),
		membership: make(map[K]clusterID),
		clusters:   make(map[clusterID]*cluster[K]),
	}
}

// Link - links vertexes a and b, registering them if they are unknown. Linking an already linked
// pair does not change anything.
func (ix *Index[K]) Link(a, b K) {
	ix.register(a)
	ix.register(b)
	ix.adjacency[a][b] = struct{}{}
	ix.adjacency[b][a] = struct{}{}

	clusterA, okA := ix.membership[a]
	clusterB, okB := ix.membership[b]
	switch {
	case !okA && !okB:
		c := ix.newCluster()
		ix.assign(c, a)
		ix.assign(c, b)
	case okA && okB:
		if clusterA != clusterB {
			ix.merge(clusterA, clusterB)
		}
	case okA:
		ix.assign(ix.clusters[clusterA], b)
	default:
		ix.assign(ix.clusters[clusterB], a)
	}
}

// Unlink - removes the direct link between a and b. It does nothing when either vertex is unknown,
// when they are not connected, or when they are connected only through other vertexes.
func (ix *Index[K]) Unlink(a, b K) {
	if !ix.Connected(a, b) {
		return
	}
	if !ix.Adjacent(a, b) {
		return
	}
	delete(ix.adjacency[a], b)
	delete(ix.adjacency[b], a)

	old := ix.clusters[ix.membership[a]]
	for v := range old.members {
		delete(ix.membership, v)
	}
	delete(ix.clusters, old.id)

	ix.rebuild(a)
	if _, ok := ix.membership[b]; !ok {
		ix.rebuild(b)
	}
}

// Connected - returns true if both vertexes are registered and belong to the same cluster.
// A registered vertex is always connected to itself.
func (ix *Index[K]) Connected(a, b K) bool {
	clusterA, ok := ix.membership[a]
	if !ok {
		return false
	}
	clusterB, ok := ix.membership[b]
	if !ok {
		return false
	}
	return clusterA == clusterB
}

func (ix *Index[K]) register(v K) {
	if _, ok := ix.adjacency[v]; !ok {
		ix.adjacency[v] = make(map[K]struct{})
	}
}

func (ix *Index[K]) newCluster() *cluster[K] {
	c := newCluster[K](ix.clusterIDSeq)
	ix.clusterIDSeq++
	ix.clusters[c.id] = c
	return c
}

func (ix *Index[K]) assign(c *cluster[K], v K) {
	c.add(v)
	ix.membership[v] = c.id
}

// merge - absorbs one cluster into the other and re-points every absorbed member. The smaller
// cluster is the one absorbed.
func (ix *Index[K]) merge(a, b clusterID) {
	survivor, absorbed := ix.clusters[a], ix.clusters[b]
	if absorbed.size() > survivor.size() {
		survivor, absorbed = absorbed, survivor
	}
	for v := range absorbed.members {
		ix.assign(survivor, v)
	}
	delete(ix.clusters, absorbed.id)
}

// rebuild - collects every vertex reachable from the start vertex into a fresh cluster.
func (ix *Index[K]) rebuild(start K) {
	c := ix.newCluster()
	walk(ix.adjacency, start, func(v K) {
		ix.assign(c, v)
	})
}
