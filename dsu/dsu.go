package dsu

// DisjointSet tracks a partition of integer vertices into disjoint sets.
// The zero value is not usable; construct with New.
type DisjointSet struct {
	// parent maps each vertex to its parent; roots map to themselves.
	parent map[int]int
	// rank is an upper bound on each root's tree height, used to keep
	// union trees shallow.
	rank map[int]int
}

// New returns a DisjointSet with every vertex in vertices as a singleton set.
//
// Complexity: O(V).
func New(vertices []int) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[int]int, len(vertices)),
		rank:   make(map[int]int, len(vertices)),
	}
	for _, v := range vertices {
		d.parent[v] = v
	}

	return d
}

// Find returns the canonical representative of the set containing v.
// The walk is iterative and compresses the path as it goes: every visited
// vertex is re-pointed at its grandparent, halving the path each pass.
// A vertex never seen before is registered as its own singleton first.
//
// Complexity: O(α(V)) amortized.
func (d *DisjointSet) Find(v int) int {
	if _, ok := d.parent[v]; !ok {
		d.parent[v] = v

		return v
	}

	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// Union merges the sets containing a and b using union by rank: the
// lower-rank root is attached under the higher-rank root, and ties
// increment the surviving root's rank. It returns false without modifying
// any state when a and b already share a set, which callers read as
// "adding the edge (a, b) would close a cycle".
//
// Complexity: O(α(V)) amortized.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
