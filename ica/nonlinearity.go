package ica

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Nonlinearity identifies the contrast function used to approximate
// negentropy in the fixed-point update.
type Nonlinearity int

const (
	// NonlinearityTanh uses g(u) = tanh(u). A good general-purpose default,
	// suited to super-Gaussian sources.
	NonlinearityTanh Nonlinearity = iota

	// NonlinearityCubic uses g(u) = u^3, suited to sub-Gaussian sources.
	NonlinearityCubic

	// NonlinearityGaussian uses g(u) = u*exp(-u^2/2), robust to outliers.
	NonlinearityGaussian
)

// String returns the nonlinearity name. Unknown values report "tanh",
// matching the dispatch fallback.
func (n Nonlinearity) String() string {
	switch n {
	case NonlinearityCubic:
		return "cubic"
	case NonlinearityGaussian:
		return "gaussian"
	default:
		return "tanh"
	}
}

// apply evaluates the contrast g and its derivative g' elementwise over u,
// writing results into g and gd. All three slices must have equal length.
//
// Unknown nonlinearity values fall back to tanh. This is deliberate,
// documented behavior: selection never fails.
func (n Nonlinearity) apply(u, g, gd []float64) {
	switch n {
	case NonlinearityCubic:
		vecmath.MulBlock(gd, u, u)    // u^2
		vecmath.MulBlock(g, gd, u)    // u^3
		vecmath.ScaleBlock(gd, gd, 3) // 3u^2
	case NonlinearityGaussian:
		for i, v := range u {
			e := math.Exp(-0.5 * v * v)
			g[i] = v * e
			gd[i] = (1 - v*v) * e
		}
	default:
		for i, v := range u {
			t := math.Tanh(v)
			g[i] = t
			gd[i] = 1 - t*t
		}
	}
}
