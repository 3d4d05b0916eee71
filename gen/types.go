// Package gen - generation options and sentinel errors.
package gen

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for instance generation.
var (
	// ErrBadVertexCount is returned for a vertex count below 1.
	ErrBadVertexCount = errors.New("gen: vertex count must be at least 1")

	// ErrBadProbability is returned for an edge probability outside [0, 1].
	ErrBadProbability = errors.New("gen: edge probability must be in [0,1]")

	// ErrBadWeightRange is returned when the weight range is negative or
	// inverted (max below min).
	ErrBadWeightRange = errors.New("gen: weight range must satisfy 0 <= min <= max")

	// ErrBadDegreeBound is returned for a degree bound below 1.
	ErrBadDegreeBound = errors.New("gen: degree bound must be at least 1")

	// ErrBadAttempts is returned for a retry budget below 1.
	ErrBadAttempts = errors.New("gen: max attempts must be at least 1")

	// ErrRetriesExhausted is returned by Feasible when no attempt produced
	// at least n-1 edges within the retry budget.
	ErrRetriesExhausted = errors.New("gen: failed to generate a feasible instance")
)

// Option configures instance generation via functional arguments. An
// out-of-domain value is recorded internally and surfaced by Instance or
// Feasible before any randomness is consumed.
type Option func(*Options)

// Options holds the generation parameters.
type Options struct {
	// Vertices is the vertex count n; vertices are labeled 0..n-1.
	Vertices int

	// EdgeProbability is the Erdős–Rényi inclusion probability per pair.
	EdgeProbability float64

	// WeightMin and WeightMax bound the uniform integer weight draw,
	// inclusive on both ends.
	WeightMin int
	WeightMax int

	// DegreeBound is the uniform maximum degree assigned to every vertex.
	DegreeBound int

	// Seed feeds the random stream. Seed == 0 selects the fixed default
	// stream, so the zero value is still reproducible.
	Seed int64

	// MaxAttempts caps Feasible's retry loop.
	MaxAttempts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the generation parameters used throughout the
// experiment suites:
//
//	Vertices        = 10
//	EdgeProbability = 0.5
//	WeightMin       = 1
//	WeightMax       = 20
//	DegreeBound     = 3
//	Seed            = 0    (fixed default stream)
//	MaxAttempts     = 100
func DefaultOptions() Options {
	return Options{
		Vertices:        10,
		EdgeProbability: 0.5,
		WeightMin:       1,
		WeightMax:       20,
		DegreeBound:     3,
		Seed:            0,
		MaxAttempts:     100,
		err:             nil,
	}
}

// WithVertices sets the vertex count (>= 1).
func WithVertices(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadVertexCount, n)

			return
		}
		o.Vertices = n
	}
}

// WithEdgeProbability sets the per-pair inclusion probability, in [0, 1].
func WithEdgeProbability(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: %v", ErrBadProbability, p)

			return
		}
		o.EdgeProbability = p
	}
}

// WithWeightRange sets the inclusive integer weight range; 0 <= min <= max.
func WithWeightRange(min, max int) Option {
	return func(o *Options) {
		if min < 0 || max < min {
			o.err = fmt.Errorf("%w: [%d,%d]", ErrBadWeightRange, min, max)

			return
		}
		o.WeightMin, o.WeightMax = min, max
	}
}

// WithDegreeBound sets the uniform per-vertex degree bound (>= 1).
func WithDegreeBound(b int) Option {
	return func(o *Options) {
		if b < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadDegreeBound, b)

			return
		}
		o.DegreeBound = b
	}
}

// WithSeed fixes the random stream. Seed 0 keeps the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxAttempts sets Feasible's retry budget (>= 1).
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadAttempts, n)

			return
		}
		o.MaxAttempts = n
	}
}

// apply folds opts over DefaultOptions and surfaces any recorded violation.
func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
