// Package viz renders problem instances and spanning trees as Graphviz
// diagrams.
//
// # Overview
//
// This package produces undirected node-link visualizations of weighted
// graphs. [InstanceDOT] draws a bare instance with weight labels, and
// [TreeDOT] overlays a spanning tree on top of it so that tree edges stand
// out against the unused remainder of the graph.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := viz.TreeDOT(g, res.Tree, bounds)
//	svg, err := viz.RenderSVG(dot)
//
// The DOT source is plain text and can also be saved and processed with
// external Graphviz tools (dot, neato, xdot).
//
// # DOT Format
//
// Both builders emit a single undirected graph block. Vertices appear in
// ascending order and edges in insertion order, so the output for a given
// graph is byte-for-byte stable. Vertex labels carry the degree bound,
// edge labels carry the weight.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external Graphviz installation is required.
package viz
