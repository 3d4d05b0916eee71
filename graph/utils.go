// Package graph - traversal and feasibility utilities shared by the solvers.
package graph

import "github.com/spantree/dcmst/dsu"

// AdjacencyOf builds the adjacency lists implied by edges. Every vertex in
// vertices appears as a key, isolated vertices included; neighbors are
// appended in edge order, so the layout is deterministic for a fixed input.
//
// Complexity: O(V + E).
func AdjacencyOf(vertices []int, edges []Edge) map[int][]int {
	adj := make(map[int][]int, len(vertices))
	for _, v := range vertices {
		adj[v] = nil
	}
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}

// IsConnected reports whether every vertex in vertices is reachable from the
// first one through edges. The empty vertex set is connected vacuously.
//
// Complexity: O(V + E).
func IsConnected(vertices []int, edges []Edge) bool {
	if len(vertices) == 0 {
		return true
	}

	adj := AdjacencyOf(vertices, edges)
	seen := make(map[int]bool, len(vertices))
	queue := make([]int, 0, len(vertices))

	seen[vertices[0]] = true
	queue = append(queue, vertices[0])

	var reached int
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		reached++
		for _, nb := range adj[v] {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return reached == len(vertices)
}

// ConnectedComponents partitions vertices into maximal connected subsets via
// repeated BFS from unvisited vertices. Components are emitted in the order
// their first vertex appears in vertices, and each component lists vertices
// in BFS visit order. Callers must not depend on which component comes
// first; the ordering is an artifact of the input layout, not a contract.
//
// Complexity: O(V + E).
func ConnectedComponents(vertices []int, edges []Edge) [][]int {
	adj := AdjacencyOf(vertices, edges)
	seen := make(map[int]bool, len(vertices))

	var comps [][]int
	for _, start := range vertices {
		if seen[start] {
			continue
		}

		// BFS one component from start.
		var comp []int
		seen[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, nb := range adj[v] {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Degrees returns the incident-edge count of every vertex touched by the
// given edge subset. Vertices with no incident edge are absent from the map.
//
// Complexity: O(len(tree)).
func Degrees(tree []Edge) map[int]int {
	deg := make(map[int]int, 2*len(tree))
	for _, e := range tree {
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}

// RespectsDegreeBounds streams through tree accumulating degree counts and
// fails fast the moment any vertex's running degree exceeds its bound. The
// early exit matters: candidate trees are checked in solver inner loops, and
// most violations surface within the first few edges. A vertex missing from
// bounds has an implicit bound of zero, so any incident edge fails.
//
// Complexity: O(len(tree)) worst case, far less on typical rejects.
func RespectsDegreeBounds(tree []Edge, bounds DegreeBounds) bool {
	deg := make(map[int]int, 2*len(tree))
	for _, e := range tree {
		deg[e.U]++
		if deg[e.U] > bounds[e.U] {
			return false
		}
		deg[e.V]++
		if deg[e.V] > bounds[e.V] {
			return false
		}
	}

	return true
}

// IsSpanningTree reports whether tree is a spanning tree of the given vertex
// set: exactly |V|-1 edges, acyclic, and covering every vertex. Acyclicity
// is checked with a disjoint set; |V|-1 acyclic edges over the vertex set
// are necessarily connected, so no separate reachability pass is needed.
// Edges touching vertices outside the set disqualify immediately.
//
// Complexity: O(V + E·α(V)).
func IsSpanningTree(vertices []int, tree []Edge) bool {
	if len(tree) != len(vertices)-1 {
		return false
	}

	members := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		members[v] = struct{}{}
	}

	ds := dsu.New(vertices)
	for _, e := range tree {
		if _, ok := members[e.U]; !ok {
			return false
		}
		if _, ok := members[e.V]; !ok {
			return false
		}
		if !ds.Union(e.U, e.V) {
			// Cycle: the endpoints were already connected.
			return false
		}
	}

	return true
}
