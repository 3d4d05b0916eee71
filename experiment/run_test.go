package experiment_test

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spantree/dcmst/experiment"
	"github.com/spantree/dcmst/gen"
)

// discardRunner returns a Runner whose logging goes nowhere.
func discardRunner() *experiment.Runner {
	return experiment.NewRunner(log.New(io.Discard))
}

// TestRunner_RecordGridAndOrder executes a complete-graph run with three
// algorithms and two repeats, then checks the full record grid: execution
// order (repeats outer, algorithms inner), one shared UUID, effective seeds
// Seed+repeat, and instance shape K7.
func TestRunner_RecordGridAndOrder(t *testing.T) {
	suite := experiment.Suite{Runs: []experiment.RunConfig{{
		Name:            "k7",
		Vertices:        7,
		EdgeProbability: 1,
		WeightMin:       1,
		WeightMax:       6,
		DegreeBound:     6,
		Seed:            5,
		Algorithms:      []string{"greedy", "local", "anneal"},
		Repeats:         2,
	}}}

	records, err := discardRunner().Run(suite)
	require.NoError(t, err)
	require.Len(t, records, 6)

	_, err = uuid.Parse(records[0].RunID)
	require.NoError(t, err)

	wantAlgos := []string{"greedy", "local", "anneal", "greedy", "local", "anneal"}
	wantRepeats := []int{0, 0, 0, 1, 1, 1}
	wantSeeds := []int64{5, 5, 5, 6, 6, 6}
	for i, rec := range records {
		assert.Equal(t, records[0].RunID, rec.RunID, "record %d", i)
		assert.Equal(t, "k7", rec.Name, "record %d", i)
		assert.Equal(t, wantAlgos[i], rec.Algorithm, "record %d", i)
		assert.Equal(t, wantRepeats[i], rec.Repeat, "record %d", i)
		assert.Equal(t, wantSeeds[i], rec.Seed, "record %d", i)
		assert.Equal(t, 7, rec.Vertices, "record %d", i)
		assert.Equal(t, 21, rec.Edges, "record %d", i) // C(7,2)
		assert.Equal(t, 6, rec.DegreeBound, "record %d", i)
		assert.True(t, rec.Feasible, "record %d", i)
		assert.Equal(t, 6, rec.TreeEdges, "record %d", i)
		assert.Positive(t, rec.Cost, "record %d", i)
	}

	// The searches start from the greedy tree of the same cell, so they can
	// only match or beat it.
	for _, base := range []int{0, 3} {
		assert.LessOrEqual(t, records[base+1].Cost, records[base].Cost)
		assert.LessOrEqual(t, records[base+2].Cost, records[base].Cost)
	}
}

// TestRunner_CostsReproducible runs the same suite twice: apart from the
// UUID and the timings every field must repeat exactly.
func TestRunner_CostsReproducible(t *testing.T) {
	suite := experiment.Suite{Runs: []experiment.RunConfig{{
		Name:            "repro",
		Vertices:        9,
		EdgeProbability: 0.8,
		WeightMin:       1,
		WeightMax:       20,
		DegreeBound:     4,
		Seed:            13,
		Algorithms:      []string{"greedy", "anneal", "tabu"},
		Repeats:         2,
	}}}

	first, err := discardRunner().Run(suite)
	require.NoError(t, err)
	second, err := discardRunner().Run(suite)
	require.NoError(t, err)
	require.Len(t, second, len(first))

	for i := range first {
		assert.Equal(t, first[i].Cost, second[i].Cost, "record %d", i)
		assert.Equal(t, first[i].TreeEdges, second[i].TreeEdges, "record %d", i)
		assert.Equal(t, first[i].Feasible, second[i].Feasible, "record %d", i)
		assert.Equal(t, first[i].Edges, second[i].Edges, "record %d", i)
	}
}

// TestRunner_SolverErrorsBecomeInfeasibleRecords runs a bound-1 complete
// graph: no spanning tree can respect it. Greedy returns a two-edge partial
// forest, Exact reports infeasibility, and the search cannot start from the
// short seed. All three outcomes must land as records, not suite errors.
func TestRunner_SolverErrorsBecomeInfeasibleRecords(t *testing.T) {
	suite := experiment.Suite{Runs: []experiment.RunConfig{{
		Name:            "tight",
		Vertices:        4,
		EdgeProbability: 1,
		WeightMin:       1,
		WeightMax:       1,
		DegreeBound:     1,
		Algorithms:      []string{"greedy", "exact", "local"},
		Repeats:         1,
	}}}

	records, err := discardRunner().Run(suite)
	require.NoError(t, err)
	require.Len(t, records, 3)

	greedy := records[0]
	assert.False(t, greedy.Feasible)
	assert.Equal(t, 2, greedy.TreeEdges) // two disjoint matched pairs
	assert.Equal(t, 2.0, greedy.Cost)

	exact := records[1]
	assert.False(t, exact.Feasible)
	assert.Zero(t, exact.TreeEdges)
	assert.Zero(t, exact.Cost)

	local := records[2]
	assert.False(t, local.Feasible)
	assert.Zero(t, local.TreeEdges)
	assert.Zero(t, local.Cost)
}

// TestRunner_GenerationFailureAbortsSuite uses p = 0 so no draw can reach
// the edge floor: the suite must fail and name the run and repeat.
func TestRunner_GenerationFailureAbortsSuite(t *testing.T) {
	suite := experiment.Suite{Runs: []experiment.RunConfig{{
		Name:            "sparse",
		Vertices:        6,
		EdgeProbability: 0,
		WeightMin:       1,
		WeightMax:       5,
		DegreeBound:     3,
		Algorithms:      []string{"greedy"},
		Repeats:         1,
	}}}

	records, err := discardRunner().Run(suite)
	assert.ErrorIs(t, err, gen.ErrRetriesExhausted)
	assert.ErrorContains(t, err, "sparse")
	assert.Nil(t, records)
}

// TestRunner_EmptySuite rejects a suite without runs.
func TestRunner_EmptySuite(t *testing.T) {
	_, err := discardRunner().Run(experiment.Suite{})
	assert.ErrorIs(t, err, experiment.ErrNoRuns)
}
