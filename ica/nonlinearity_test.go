package ica

import (
	"math"
	"testing"
)

func TestNonlinearityTanh(t *testing.T) {
	u := []float64{-2, -0.5, 0, 0.5, 2}
	g := make([]float64, len(u))
	gd := make([]float64, len(u))

	NonlinearityTanh.apply(u, g, gd)

	for i, v := range u {
		want := math.Tanh(v)
		if math.Abs(g[i]-want) > 1e-15 {
			t.Fatalf("g[%d]=%f want=%f", i, g[i], want)
		}

		wantD := 1 - want*want
		if math.Abs(gd[i]-wantD) > 1e-15 {
			t.Fatalf("gd[%d]=%f want=%f", i, gd[i], wantD)
		}
	}
}

func TestNonlinearityCubic(t *testing.T) {
	u := []float64{-2, -0.5, 0, 0.5, 2}
	g := make([]float64, len(u))
	gd := make([]float64, len(u))

	NonlinearityCubic.apply(u, g, gd)

	for i, v := range u {
		if math.Abs(g[i]-v*v*v) > 1e-15 {
			t.Fatalf("g[%d]=%f want=%f", i, g[i], v*v*v)
		}

		if math.Abs(gd[i]-3*v*v) > 1e-15 {
			t.Fatalf("gd[%d]=%f want=%f", i, gd[i], 3*v*v)
		}
	}
}

func TestNonlinearityGaussian(t *testing.T) {
	u := []float64{-2, -0.5, 0, 0.5, 2}
	g := make([]float64, len(u))
	gd := make([]float64, len(u))

	NonlinearityGaussian.apply(u, g, gd)

	for i, v := range u {
		e := math.Exp(-0.5 * v * v)

		if math.Abs(g[i]-v*e) > 1e-15 {
			t.Fatalf("g[%d]=%f want=%f", i, g[i], v*e)
		}

		if math.Abs(gd[i]-(1-v*v)*e) > 1e-15 {
			t.Fatalf("gd[%d]=%f want=%f", i, gd[i], (1-v*v)*e)
		}
	}
}

func TestNonlinearityUnknownFallsBackToTanh(t *testing.T) {
	u := []float64{-1, 0.25, 3}
	g := make([]float64, len(u))
	gd := make([]float64, len(u))
	wantG := make([]float64, len(u))
	wantGd := make([]float64, len(u))

	Nonlinearity(99).apply(u, g, gd)
	NonlinearityTanh.apply(u, wantG, wantGd)

	for i := range u {
		if g[i] != wantG[i] || gd[i] != wantGd[i] {
			t.Fatalf("unknown nonlinearity did not dispatch to tanh at %d: g=%f gd=%f", i, g[i], gd[i])
		}
	}

	if got := Nonlinearity(99).String(); got != "tanh" {
		t.Fatalf("unknown nonlinearity String()=%q want=%q", got, "tanh")
	}
}

func TestNonlinearityString(t *testing.T) {
	cases := []struct {
		nl   Nonlinearity
		want string
	}{
		{NonlinearityTanh, "tanh"},
		{NonlinearityCubic, "cubic"},
		{NonlinearityGaussian, "gaussian"},
	}

	for _, tc := range cases {
		if got := tc.nl.String(); got != tc.want {
			t.Fatalf("String()=%q want=%q", got, tc.want)
		}
	}
}
