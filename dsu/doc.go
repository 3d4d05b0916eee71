// Package dsu implements a disjoint-set (union-find) structure used as the
// incremental connectivity and cycle oracle of the DC-MST solvers.
//
// What
//
//   - Find(v): canonical representative of v's set, with iterative path
//     compression (each visited node is re-pointed at its grandparent).
//   - Union(a, b): merge by rank; returns false, with no state change, when
//     a and b are already in the same set. That false is the cycle signal
//     the greedy constructor and the exact enumerator branch on.
//
// Why
//
//	Kruskal-style construction and spanning-tree enumeration both need to
//	answer "would this edge close a cycle?" millions of times. Union-find
//	answers in near-constant amortized time, and a fresh instance per
//	candidate keeps evaluations independent.
//
// The structure is write-once per scope: sets only ever merge, there is no
// removal, and an instance is discarded after the pass that created it.
//
// Complexity: Find and Union run in O(α(V)) amortized, where α is the
// inverse Ackermann function; effectively constant.
package dsu
