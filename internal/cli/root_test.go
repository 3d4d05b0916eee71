package cli

import (
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3", "deadbeef", "2026-08-22")

	if version != "1.2.3" {
		t.Errorf("version = %q, want %q", version, "1.2.3")
	}
	if commit != "deadbeef" {
		t.Errorf("commit = %q, want %q", commit, "deadbeef")
	}
	if date != "2026-08-22" {
		t.Errorf("date = %q, want %q", date, "2026-08-22")
	}
}

func TestCommandFlags(t *testing.T) {
	solve := newSolveCmd()
	for _, name := range []string{"algo", "save", "dot", "svg", "vertices", "edge-prob", "degree", "seed"} {
		if solve.Flags().Lookup(name) == nil {
			t.Errorf("solve command missing --%s", name)
		}
	}

	generate := newGenerateCmd()
	for _, name := range []string{"out", "vertices", "edge-prob", "weight-min", "weight-max", "degree", "seed", "attempts"} {
		if generate.Flags().Lookup(name) == nil {
			t.Errorf("generate command missing --%s", name)
		}
	}

	exp := newExperimentCmd()
	for _, name := range []string{"config", "out", "summary"} {
		if exp.Flags().Lookup(name) == nil {
			t.Errorf("experiment command missing --%s", name)
		}
	}

	render := newRenderCmd()
	for _, name := range []string{"in", "algo", "seed", "dot", "svg"} {
		if render.Flags().Lookup(name) == nil {
			t.Errorf("render command missing --%s", name)
		}
	}
}

func TestCommandDefaults(t *testing.T) {
	exp := newExperimentCmd()

	if got := exp.Flags().Lookup("config").DefValue; got != "suite.toml" {
		t.Errorf("experiment --config default = %q, want %q", got, "suite.toml")
	}
	if got := exp.Flags().Lookup("out").DefValue; got != "results.csv" {
		t.Errorf("experiment --out default = %q, want %q", got, "results.csv")
	}

	solve := newSolveCmd()
	if got := solve.Flags().Lookup("algo").DefValue; got != "greedy" {
		t.Errorf("solve --algo default = %q, want %q", got, "greedy")
	}

	generate := newGenerateCmd()
	if got := generate.Flags().Lookup("out").DefValue; got != "instance.json" {
		t.Errorf("generate --out default = %q, want %q", got, "instance.json")
	}
}
