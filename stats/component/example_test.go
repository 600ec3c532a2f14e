package component_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ica/stats/component"
)

func ExampleKurtosis() {
	square := make([]float64, 1000)
	for i := range square {
		if i%2 == 0 {
			square[i] = 1
		} else {
			square[i] = -1
		}
	}

	fmt.Printf("%.1f\n", component.Kurtosis(square))
	// Output:
	// -2.0
}

func ExampleMatchSources() {
	n := 200
	sine := make([]float64, n)
	for i := range sine {
		sine[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	flipped := make([]float64, n)
	for i, v := range sine {
		flipped[i] = -v
	}

	matches, _ := component.MatchSources([][]float64{flipped}, [][]float64{sine})
	fmt.Printf("source=%d corr=%.1f\n", matches[0].Source, matches[0].Correlation)
	// Output:
	// source=0 corr=-1.0
}
