package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spantree/dcmst/gen"
)

// TestDefaultOptions pins the documented parameter set; experiment suites
// inherit these values, so silent drift would corrupt published results.
func TestDefaultOptions(t *testing.T) {
	o := gen.DefaultOptions()

	assert.Equal(t, 10, o.Vertices)
	assert.Equal(t, 0.5, o.EdgeProbability)
	assert.Equal(t, 1, o.WeightMin)
	assert.Equal(t, 20, o.WeightMax)
	assert.Equal(t, 3, o.DegreeBound)
	assert.Equal(t, int64(0), o.Seed)
	assert.Equal(t, 100, o.MaxAttempts)
}

// TestOptions_Violations feeds one out-of-domain value per option and
// expects the matching sentinel before any randomness is consumed.
func TestOptions_Violations(t *testing.T) {
	cases := map[string]struct {
		opt  gen.Option
		want error
	}{
		"zero vertices":        {gen.WithVertices(0), gen.ErrBadVertexCount},
		"negative vertices":    {gen.WithVertices(-3), gen.ErrBadVertexCount},
		"probability above 1":  {gen.WithEdgeProbability(1.5), gen.ErrBadProbability},
		"negative probability": {gen.WithEdgeProbability(-0.1), gen.ErrBadProbability},
		"inverted range":       {gen.WithWeightRange(5, 2), gen.ErrBadWeightRange},
		"negative minimum":     {gen.WithWeightRange(-1, 3), gen.ErrBadWeightRange},
		"zero degree bound":    {gen.WithDegreeBound(0), gen.ErrBadDegreeBound},
		"zero attempts":        {gen.WithMaxAttempts(0), gen.ErrBadAttempts},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, bounds, err := gen.Instance(tc.opt)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
			assert.Nil(t, bounds)

			_, _, err = gen.Feasible(tc.opt)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestOptions_ViolationWinsOverValidInput mixes a good option with a bad
// one; the violation must surface no matter the order.
func TestOptions_ViolationWinsOverValidInput(t *testing.T) {
	_, _, err := gen.Instance(
		gen.WithVertices(8),
		gen.WithEdgeProbability(2),
		gen.WithSeed(1),
	)

	require.ErrorIs(t, err, gen.ErrBadProbability)
}
