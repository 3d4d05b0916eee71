// Package experiment - TOML suite loading and normalization.
package experiment

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spantree/dcmst/solver"
)

// LoadSuite reads a TOML suite file, folds the [defaults] block into every
// run, and validates the result. Validation errors name the offending run.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("experiment: parse %s: %w", path, err)
	}
	if err := s.normalize(); err != nil {
		return Suite{}, err
	}

	return s, nil
}

// normalize fills unset run fields from Defaults, applies the package
// fallbacks (every algorithm, one repeat), and validates names and
// algorithm tokens.
func (s *Suite) normalize() error {
	if len(s.Runs) == 0 {
		return ErrNoRuns
	}

	seen := make(map[string]bool, len(s.Runs))
	for i := range s.Runs {
		r := &s.Runs[i]

		if r.Name == "" {
			return fmt.Errorf("%w: run #%d", ErrUnnamedRun, i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateRun, r.Name)
		}
		seen[r.Name] = true

		if r.Vertices == 0 {
			r.Vertices = s.Defaults.Vertices
		}
		if r.EdgeProbability == 0 {
			r.EdgeProbability = s.Defaults.EdgeProbability
		}
		if r.WeightMin == 0 {
			r.WeightMin = s.Defaults.WeightMin
		}
		if r.WeightMax == 0 {
			r.WeightMax = s.Defaults.WeightMax
		}
		if r.DegreeBound == 0 {
			r.DegreeBound = s.Defaults.DegreeBound
		}
		if r.Seed == 0 {
			r.Seed = s.Defaults.Seed
		}
		if len(r.Algorithms) == 0 {
			r.Algorithms = s.Defaults.Algorithms
		}
		if r.Repeats == 0 {
			r.Repeats = s.Defaults.Repeats
		}
		if r.Repeats == 0 {
			r.Repeats = 1
		}

		if len(r.Algorithms) == 0 {
			for _, a := range solver.Algorithms() {
				r.Algorithms = append(r.Algorithms, a.String())
			}
		}
		for _, name := range r.Algorithms {
			if _, err := solver.ParseAlgorithm(name); err != nil {
				return fmt.Errorf("experiment: run %q: %w", r.Name, err)
			}
		}
	}

	return nil
}
