package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spantree/dcmst/graph"
)

// TestAdjacencyOf verifies that every vertex gets a key, isolated vertices
// included, and that neighbors follow edge order.
func TestAdjacencyOf(t *testing.T) {
	vertices := []int{0, 1, 2, 3}
	edges := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}

	adj := graph.AdjacencyOf(vertices, edges)

	assert.Len(t, adj, 4)
	assert.Equal(t, []int{1}, adj[0])
	assert.Equal(t, []int{0, 2}, adj[1])
	assert.Equal(t, []int{1}, adj[2])
	assert.Empty(t, adj[3]) // isolated, but present
}

// TestIsConnected covers the vacuous, trivial, connected, and split cases.
func TestIsConnected(t *testing.T) {
	assert.True(t, graph.IsConnected(nil, nil))
	assert.True(t, graph.IsConnected([]int{1}, nil))

	path := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	assert.True(t, graph.IsConnected([]int{0, 1, 2}, path))

	// Vertex 3 has no incident edge.
	assert.False(t, graph.IsConnected([]int{0, 1, 2, 3}, path))
}

// TestConnectedComponents splits two islands and an isolated vertex.
func TestConnectedComponents(t *testing.T) {
	vertices := []int{0, 1, 2, 3, 4}
	edges := []graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}}

	comps := graph.ConnectedComponents(vertices, edges)

	assert.Len(t, comps, 3)
	assert.Equal(t, []int{0, 1}, comps[0])
	assert.Equal(t, []int{2, 3}, comps[1])
	assert.Equal(t, []int{4}, comps[2])
}

// TestDegrees counts incident edges and omits untouched vertices.
func TestDegrees(t *testing.T) {
	tree := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 3}}

	deg := graph.Degrees(tree)

	assert.Equal(t, map[int]int{0: 1, 1: 3, 2: 1, 3: 1}, deg)
}

// TestRespectsDegreeBounds exercises the pass, the violation, and the
// implicit zero bound for vertices missing from the map.
func TestRespectsDegreeBounds(t *testing.T) {
	star := []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}

	assert.True(t, graph.RespectsDegreeBounds(star, graph.DegreeBounds{0: 3, 1: 1, 2: 1, 3: 1}))
	assert.False(t, graph.RespectsDegreeBounds(star, graph.DegreeBounds{0: 2, 1: 1, 2: 1, 3: 1}))

	// Vertex 3 missing from the map: implicit bound zero.
	assert.False(t, graph.RespectsDegreeBounds(star, graph.DegreeBounds{0: 3, 1: 1, 2: 1}))

	assert.True(t, graph.RespectsDegreeBounds(nil, nil))
}

// TestIsSpanningTree covers the acceptance case and each disqualifier: wrong
// edge count, cycle, and an endpoint outside the vertex set.
func TestIsSpanningTree(t *testing.T) {
	vertices := []int{0, 1, 2, 3}

	path := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
	assert.True(t, graph.IsSpanningTree(vertices, path))

	// Too few edges cannot span.
	assert.False(t, graph.IsSpanningTree(vertices, path[:2]))

	// Right count, but a cycle leaves vertex 3 uncovered.
	cyc := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}
	assert.False(t, graph.IsSpanningTree(vertices, cyc))

	// Foreign endpoint disqualifies.
	foreign := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 9}}
	assert.False(t, graph.IsSpanningTree(vertices, foreign))

	// A single vertex is spanned by the empty tree.
	assert.True(t, graph.IsSpanningTree([]int{5}, nil))
}
