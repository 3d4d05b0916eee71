// Package experiment - per (run, algorithm) aggregate statistics.
package experiment

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates every record sharing a (run name, algorithm) pair.
type Summary struct {
	Name      string
	Algorithm string

	// Count is the number of records in the group; Feasible how many of
	// them carried a feasible tree. Cost statistics cover the feasible
	// subset only and are NaN when it is empty.
	Count    int
	Feasible int
	MeanCost float64
	MinCost  float64

	// Elapsed statistics cover the whole group. StdDevElapsed is zero for
	// a single sample.
	MeanElapsed   time.Duration
	StdDevElapsed time.Duration
}

// Summarize groups records by (name, algorithm) and computes the aggregate
// statistics, returning groups sorted by name then algorithm so the output
// is stable regardless of record order.
func Summarize(records []Record) []Summary {
	type key struct{ name, algo string }
	groups := make(map[key][]Record)
	for _, r := range records {
		k := key{r.Name, r.Algorithm}
		groups[k] = append(groups[k], r)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}

		return keys[i].algo < keys[j].algo
	})

	summaries := make([]Summary, 0, len(keys))
	for _, k := range keys {
		recs := groups[k]

		var costs []float64
		elapsed := make([]float64, 0, len(recs))
		feasible := 0
		for _, r := range recs {
			elapsed = append(elapsed, r.Elapsed.Seconds())
			if r.Feasible {
				feasible++
				costs = append(costs, r.Cost)
			}
		}

		s := Summary{
			Name:      k.name,
			Algorithm: k.algo,
			Count:     len(recs),
			Feasible:  feasible,
			MeanCost:  math.NaN(),
			MinCost:   math.NaN(),
		}
		if len(costs) > 0 {
			s.MeanCost = stat.Mean(costs, nil)
			s.MinCost = floats.Min(costs)
		}

		s.MeanElapsed = secondsToDuration(stat.Mean(elapsed, nil))
		if len(elapsed) > 1 {
			s.StdDevElapsed = secondsToDuration(stat.StdDev(elapsed, nil))
		}

		summaries = append(summaries, s)
	}

	return summaries
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
