package ica

import "math/rand"

// Approach selects how the fixed-point optimizer estimates components.
type Approach int

const (
	// ApproachSymmetric estimates all components jointly per iteration with
	// symmetric orthonormalization. Preferred for well-conditioned,
	// sufficiently sampled data.
	ApproachSymmetric Approach = iota

	// ApproachDeflation estimates components one at a time, each
	// orthogonalized against the previously extracted ones. More robust when
	// few components are requested relative to the signal count or the data
	// is short or noisy.
	ApproachDeflation
)

// String returns the approach name.
func (a Approach) String() string {
	if a == ApproachDeflation {
		return "deflation"
	}

	return "symmetric"
}

// Config holds separation parameters for [Run].
type Config struct {
	Approach      Approach
	Components    int // 0 means extract as many components as signals
	Nonlinearity  Nonlinearity
	MaxIterations int
	Tolerance     float64
	Rand          *rand.Rand // nil means time-seeded
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: symmetric approach, tanh
// contrast, full extraction, 1000 iterations, tolerance 1e-4.
func DefaultConfig() Config {
	return Config{
		Approach:      ApproachSymmetric,
		Components:    0,
		Nonlinearity:  NonlinearityTanh,
		MaxIterations: 1000,
		Tolerance:     1e-4,
	}
}

// WithApproach selects the optimizer approach.
func WithApproach(approach Approach) Option {
	return func(cfg *Config) {
		if approach == ApproachSymmetric || approach == ApproachDeflation {
			cfg.Approach = approach
		}
	}
}

// WithComponents sets the number of components to extract. Values below 1
// are ignored; a value above the signal count is rejected by [Run].
func WithComponents(count int) Option {
	return func(cfg *Config) {
		if count > 0 {
			cfg.Components = count
		}
	}
}

// WithNonlinearity selects the contrast nonlinearity.
func WithNonlinearity(nonlinearity Nonlinearity) Option {
	return func(cfg *Config) {
		cfg.Nonlinearity = nonlinearity
	}
}

// WithMaxIterations sets the fixed-point iteration cap.
func WithMaxIterations(iterations int) Option {
	return func(cfg *Config) {
		if iterations > 0 {
			cfg.MaxIterations = iterations
		}
	}
}

// WithTolerance sets the convergence tolerance on the per-row direction
// change between iterations.
func WithTolerance(tolerance float64) Option {
	return func(cfg *Config) {
		if tolerance > 0 {
			cfg.Tolerance = tolerance
		}
	}
}

// WithSeed makes the random initialization deterministic. Two runs with
// identical inputs and the same seed produce identical outputs.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a pseudo-random source for initialization. Overrides
// [WithSeed].
func WithRand(rng *rand.Rand) Option {
	return func(cfg *Config) {
		if rng != nil {
			cfg.Rand = rng
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
