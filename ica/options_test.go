package ica

import (
	"math/rand"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Approach != ApproachSymmetric {
		t.Fatalf("default approach=%v want symmetric", cfg.Approach)
	}

	if cfg.Nonlinearity != NonlinearityTanh {
		t.Fatalf("default nonlinearity=%v want tanh", cfg.Nonlinearity)
	}

	if cfg.Components != 0 {
		t.Fatalf("default components=%d want 0 (full extraction)", cfg.Components)
	}

	if cfg.MaxIterations != 1000 {
		t.Fatalf("default max iterations=%d want=1000", cfg.MaxIterations)
	}

	if cfg.Tolerance != 1e-4 {
		t.Fatalf("default tolerance=%e want=1e-4", cfg.Tolerance)
	}

	if cfg.Rand != nil {
		t.Fatalf("default rand source must be nil (time-seeded at run time)")
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	cfg := ApplyOptions(
		WithComponents(-3),
		WithMaxIterations(0),
		WithTolerance(-1),
		WithApproach(Approach(42)),
		WithRand(nil),
	)

	def := DefaultConfig()

	if cfg.Components != def.Components || cfg.MaxIterations != def.MaxIterations ||
		cfg.Tolerance != def.Tolerance || cfg.Approach != def.Approach || cfg.Rand != nil {
		t.Fatalf("invalid option values were not ignored: %+v", cfg)
	}
}

func TestOptionsApply(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	cfg := ApplyOptions(
		WithApproach(ApproachDeflation),
		WithComponents(2),
		WithNonlinearity(NonlinearityGaussian),
		WithMaxIterations(250),
		WithTolerance(1e-6),
		WithRand(rng),
		nil,
	)

	if cfg.Approach != ApproachDeflation || cfg.Components != 2 ||
		cfg.Nonlinearity != NonlinearityGaussian || cfg.MaxIterations != 250 ||
		cfg.Tolerance != 1e-6 || cfg.Rand != rng {
		t.Fatalf("options not applied: %+v", cfg)
	}
}

func TestApproachString(t *testing.T) {
	if got := ApproachSymmetric.String(); got != "symmetric" {
		t.Fatalf("String()=%q want=%q", got, "symmetric")
	}

	if got := ApproachDeflation.String(); got != "deflation" {
		t.Fatalf("String()=%q want=%q", got, "deflation")
	}
}
