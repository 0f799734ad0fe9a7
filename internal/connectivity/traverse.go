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

// walk - DFS over the adjacency sets starting from the start vertex. visit is called exactly once for
// every reachable vertex including start.
//
// It uses an explicit stack instead of recursion because the component size is not bounded.
func walk[K comparable](adjacency map[K]map[K]struct{}, start K, visit func(v K)) {
	visited := map[K]struct{}{start: {}}
	stack := []K{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(v)
		for to := range adjacency[v] {
			if _, ok := visited[to]; ok {
				continue
			}
			visited[to] = struct{}{}
			stack = append(stack, to)
		}
	}
}
