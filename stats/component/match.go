package component

import (
	"fmt"
	"math"
)

// Match pairs a recovered component with a reference source.
type Match struct {
	// Source is the index of the matched reference, or -1 when there were
	// fewer references than components.
	Source int

	// Correlation is the signed Pearson correlation with the matched
	// reference. A value near -1 is as good a recovery as one near +1;
	// component signs are not identifiable.
	Correlation float64
}

// Correlation returns the Pearson correlation coefficient of a and b.
// Returns 0 when either input has zero variance.
func Correlation(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	n := float64(len(a))

	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0
	}

	return cov / math.Sqrt(varA*varB)
}

// MatchSources pairs each component row with a distinct reference row by
// greedily assigning the largest remaining correlation magnitude. This is
// the correct way to compare separation output against known sources, since
// components come back in arbitrary order and with arbitrary sign.
//
// All rows must share one sample count. References may outnumber components;
// the surplus stays unmatched.
func MatchSources(components, references [][]float64) ([]Match, error) {
	if len(components) == 0 || len(references) == 0 {
		return nil, fmt.Errorf("component: match inputs must not be empty")
	}

	m := len(components[0])
	for i, row := range components {
		if len(row) != m {
			return nil, fmt.Errorf("component: component %d has %d samples, want %d", i, len(row), m)
		}
	}
	for i, row := range references {
		if len(row) != m {
			return nil, fmt.Errorf("component: reference %d has %d samples, want %d", i, len(row), m)
		}
	}

	corr := make([][]float64, len(components))
	for i, c := range components {
		corr[i] = make([]float64, len(references))
		for j, r := range references {
			corr[i][j] = Correlation(c, r)
		}
	}

	matches := make([]Match, len(components))
	for i := range matches {
		matches[i] = Match{Source: -1}
	}

	usedComp := make([]bool, len(components))
	usedRef := make([]bool, len(references))

	pairs := len(components)
	if len(references) < pairs {
		pairs = len(references)
	}

	for p := 0; p < pairs; p++ {
		best := -1.0
		bi, bj := -1, -1

		for i := range components {
			if usedComp[i] {
				continue
			}
			for j := range references {
				if usedRef[j] {
					continue
				}
				if a := math.Abs(corr[i][j]); a > best {
					best = a
					bi, bj = i, j
				}
			}
		}

		usedComp[bi] = true
		usedRef[bj] = true
		matches[bi] = Match{Source: bj, Correlation: corr[bi][bj]}
	}

	return matches, nil
}
