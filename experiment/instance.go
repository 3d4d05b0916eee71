// Package experiment - JSON instance snapshots for replay.
package experiment

import (
	"encoding/json"
	"os"

	"github.com/spantree/dcmst/graph"
)

// EdgeRecord is one weighted edge of a snapshotted instance.
type EdgeRecord struct {
	U      int     `json:"u"`
	V      int     `json:"v"`
	Weight float64 `json:"weight"`
}

// Instance is the JSON form of a generated instance: enough to rebuild the
// exact graph and bounds without re-running the generator.
type Instance struct {
	Vertices []int        `json:"vertices"`
	Edges    []EdgeRecord `json:"edges"`
	Bounds   map[int]int  `json:"bounds"`
}

// Snapshot captures g and bounds as a serializable Instance. Vertices are
// ascending and edges keep the graph's insertion order, so rebuilding yields
// the same deterministic scan orders.
func Snapshot(g *graph.Graph, bounds graph.DegreeBounds) Instance {
	edges := g.Edges()
	ins := Instance{
		Vertices: g.Vertices(),
		Edges:    make([]EdgeRecord, 0, len(edges)),
		Bounds:   make(map[int]int, len(bounds)),
	}
	for _, e := range edges {
		w, err := g.Weight(e.U, e.V)
		if err != nil {
			// Edges come from g itself; the lookup cannot miss.
			continue
		}
		ins.Edges = append(ins.Edges, EdgeRecord{U: e.U, V: e.V, Weight: w})
	}
	for v, b := range bounds {
		ins.Bounds[v] = b
	}

	return ins
}

// Build rebuilds the graph and bounds from a snapshot. Malformed snapshots
// surface the graph package's sentinel errors (duplicate edges, loops,
// unknown endpoints, bad weights).
func (ins Instance) Build() (*graph.Graph, graph.DegreeBounds, error) {
	g := graph.New()
	g.AddVertices(ins.Vertices...)
	for _, e := range ins.Edges {
		if err := g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, nil, err
		}
	}

	bounds := make(graph.DegreeBounds, len(ins.Bounds))
	for v, b := range ins.Bounds {
		bounds[v] = b
	}

	return g, bounds, nil
}

// SaveInstance writes a snapshot as indented JSON.
func SaveInstance(path string, ins Instance) error {
	data, err := json.MarshalIndent(ins, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadInstance reads a snapshot written by SaveInstance.
func LoadInstance(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, err
	}

	var ins Instance
	if err := json.Unmarshal(data, &ins); err != nil {
		return Instance{}, err
	}

	return ins, nil
}
