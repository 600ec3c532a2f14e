package component

import (
	"math"
	"testing"
)

func TestCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}

	if c := Correlation(a, a); math.Abs(c-1) > 1e-12 {
		t.Fatalf("self correlation=%f want=1", c)
	}

	neg := []float64{-1, -2, -3, -4, -5}
	if c := Correlation(a, neg); math.Abs(c+1) > 1e-12 {
		t.Fatalf("negated correlation=%f want=-1", c)
	}

	// Scale and offset invariance.
	scaled := []float64{12, 14, 16, 18, 20}
	if c := Correlation(a, scaled); math.Abs(c-1) > 1e-12 {
		t.Fatalf("affine correlation=%f want=1", c)
	}
}

func TestCorrelationOrthogonalSignals(t *testing.T) {
	n := 1000
	sin := make([]float64, n)
	cos := make([]float64, n)

	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * 10 * float64(i) / float64(n)
		sin[i] = math.Sin(phase)
		cos[i] = math.Cos(phase)
	}

	if c := Correlation(sin, cos); math.Abs(c) > 1e-9 {
		t.Fatalf("quadrature correlation=%e want ~0", c)
	}
}

func TestCorrelationDegenerate(t *testing.T) {
	if c := Correlation(nil, nil); c != 0 {
		t.Fatalf("empty correlation=%f want=0", c)
	}

	if c := Correlation([]float64{1, 2}, []float64{1, 2, 3}); c != 0 {
		t.Fatalf("length mismatch correlation=%f want=0", c)
	}

	if c := Correlation([]float64{1, 1, 1}, []float64{1, 2, 3}); c != 0 {
		t.Fatalf("constant input correlation=%f want=0", c)
	}
}

func TestMatchSourcesPermutationAndSign(t *testing.T) {
	n := 500
	s1 := make([]float64, n)
	s2 := make([]float64, n)

	for i := 0; i < n; i++ {
		s1[i] = math.Sin(2 * math.Pi * 5 * float64(i) / float64(n))
		s2[i] = math.Sin(2 * math.Pi * 13 * float64(i) / float64(n))
	}

	flipped := make([]float64, n)
	for i, v := range s2 {
		flipped[i] = -v
	}

	// Components arrive permuted and sign-flipped relative to the sources.
	components := [][]float64{flipped, s1}
	references := [][]float64{s1, s2}

	matches, err := MatchSources(components, references)
	if err != nil {
		t.Fatalf("MatchSources error: %v", err)
	}

	if matches[0].Source != 1 || matches[0].Correlation > -0.99 {
		t.Fatalf("component 0: %+v want source 1 with corr ~ -1", matches[0])
	}

	if matches[1].Source != 0 || matches[1].Correlation < 0.99 {
		t.Fatalf("component 1: %+v want source 0 with corr ~ 1", matches[1])
	}
}

func TestMatchSourcesSurplusReferences(t *testing.T) {
	n := 100
	s1 := make([]float64, n)
	s2 := make([]float64, n)

	for i := 0; i < n; i++ {
		s1[i] = math.Sin(2 * math.Pi * 3 * float64(i) / float64(n))
		s2[i] = math.Sin(2 * math.Pi * 7 * float64(i) / float64(n))
	}

	matches, err := MatchSources([][]float64{s2}, [][]float64{s1, s2})
	if err != nil {
		t.Fatalf("MatchSources error: %v", err)
	}

	if len(matches) != 1 || matches[0].Source != 1 {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}

func TestMatchSourcesValidation(t *testing.T) {
	if _, err := MatchSources(nil, [][]float64{{1}}); err == nil {
		t.Fatalf("expected error for empty components")
	}

	if _, err := MatchSources([][]float64{{1, 2}}, [][]float64{{1, 2, 3}}); err == nil {
		t.Fatalf("expected error for sample count mismatch")
	}
}
