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

// Stats - the summary of the Index state.
type Stats struct {
	Vertexes       int `json:"vertexes" yaml:"vertexes"`
	Edges          int `json:"edges" yaml:"edges"`
	Clusters       int `json:"clusters" yaml:"clusters"`
	LargestCluster int `json:"largest_cluster" yaml:"largest_cluster"`
}

// Len - returns the count of registered vertexes.
func (ix *Index[K]) Len() int {
	return len(ix.adjacency)
}

// ClusterCount - returns the count of clusters.
func (ix *Index[K]) ClusterCount() int {
	return len(ix.clusters)
}

// Contains - returns true if the vertex is registered.
func (ix *Index[K]) Contains(v K) bool {
	_, ok := ix.adjacency[v]
	return ok
}

// Adjacent - returns true if a and b are linked directly.
func (ix *Index[K]) Adjacent(a, b K) bool {
	_, ok := ix.adjacency[a][b]
	return ok
}

// Neighbors - returns the vertexes directly linked to v. The order is not defined.
func (ix *Index[K]) Neighbors(v K) []K {
	neighbors := ix.adjacency[v]
	res := make([]K, 0, len(neighbors))
	for to := range neighbors {
		res = append(res, to)
	}
	return res
}

// ClusterOf - returns the members of the cluster that v belongs to.
func (ix *Index[K]) ClusterOf(v K) ([]K, bool) {
	id, ok := ix.membership[v]
	if !ok {
		return nil, false
	}
	return ix.clusters[id].vertexes(), true
}

// Components - returns the members of every cluster. Neither the clusters nor the members are ordered.
func (ix *Index[K]) Components() [][]K {
	res := make([][]K, 0, len(ix.clusters))
	for _, c := range ix.clusters {
		res = append(res, c.vertexes())
	}
	return res
}

// Stats - collects the Stats of the Index.
func (ix *Index[K]) Stats() Stats {
	var edges int
	for v, neighbors := range ix.adjacency {
		edges += len(neighbors)
		// A self-loop is stored once, so it must not be halved below.
		if _, ok := neighbors[v]; ok {
			edges++
		}
	}
	s := Stats{
		Vertexes: len(ix.adjacency),
		Edges:    edges / 2,
		Clusters: len(ix.clusters),
	}
	for _, c := range ix.clusters {
		s.LargestCluster = max(s.LargestCluster, c.size())
	}
	return s
}
