package ica

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Result holds the outputs of one separation run. The three matrices are
// freshly allocated and owned by the caller.
type Result struct {
	// Unmixing maps observed-signal space to component space (k x N).
	Unmixing [][]float64

	// Mixing is the pseudo-inverse of Unmixing (N x k). It reconstructs the
	// mean-removed observations from the components.
	Mixing [][]float64

	// Sources are the recovered component signals (k x M), projected from
	// the mean-removed observations: Sources = Unmixing * (X - Mean).
	// Rows are determined only up to sign and ordering.
	Sources [][]float64

	// Mean is the per-signal sample mean removed during centering. Raw
	// observations are reconstructed as Mixing*Sources + Mean per row.
	Mean []float64

	// Converged reports whether the fixed-point iteration met the tolerance
	// within the iteration cap. When false the last iterate is still
	// returned; this is a diagnostic, not an error.
	Converged bool

	// Iterations is the iteration count of the symmetric approach, or the
	// largest per-component count under deflation.
	Iterations int

	// ComponentIterations holds per-component iteration counts for the
	// deflation approach; nil for symmetric.
	ComponentIterations []int

	// RankDeficient reports near-zero covariance eigenvalues, indicating
	// linearly dependent or duplicated input signals. Whitening proceeds
	// with a floored eigenvalue in that case.
	RankDeficient bool
}

// validate checks the observation matrix and returns its dimensions.
func validate(observations [][]float64) (n, m int, err error) {
	n = len(observations)
	if n == 0 {
		return 0, 0, ErrEmptyInput
	}

	m = len(observations[0])
	if m == 0 {
		return 0, 0, ErrEmptyInput
	}

	for i, row := range observations {
		if len(row) != m {
			return 0, 0, fmt.Errorf("%w: row %d has %d samples, want %d", ErrRaggedInput, i, len(row), m)
		}

		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: row %d, sample %d", ErrNonFiniteInput, i, j)
			}
		}
	}

	if m < n {
		return 0, 0, fmt.Errorf("%w: %d signals, %d samples", ErrInsufficientSamples, n, m)
	}

	// The sample covariance uses a 1/(M-1) normalization.
	if m < 2 {
		return 0, 0, fmt.Errorf("%w: covariance needs at least 2 samples, got %d", ErrInsufficientSamples, m)
	}

	return n, m, nil
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse through a thin
// SVD, zeroing singular values below a relative tolerance.
func pseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, fmt.Errorf("ica: svd factorization failed")
	}

	vals := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	r, c := a.Dims()

	maxDim := r
	if c > r {
		maxDim = c
	}

	eps := math.Nextafter(1, 2) - 1
	tol := float64(maxDim) * vals[0] * eps

	vr, vc := v.Dims()
	scaled := mat.NewDense(vr, vc, nil)

	for j, s := range vals {
		if s <= tol {
			continue
		}

		inv := 1 / s
		for i := 0; i < vr; i++ {
			scaled.Set(i, j, v.At(i, j)*inv)
		}
	}

	var pinv mat.Dense
	pinv.Mul(scaled, u.T())

	return &pinv, nil
}

// toRows copies a dense matrix into caller-owned row slices.
func toRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()

	out := make([][]float64, r)
	for i := range out {
		row := make([]float64, c)
		for j := range row {
			row[j] = m.At(i, j)
		}

		out[i] = row
	}

	return out
}

// Run separates the observation matrix (N signal rows x M sample columns)
// into statistically independent components. The input is read but never
// mutated; centering and whitening operate on an internal copy.
//
// Fatal input errors ([ErrEmptyInput], [ErrRaggedInput],
// [ErrNonFiniteInput], [ErrInsufficientSamples],
// [ErrInvalidComponentCount]) abort with a nil result. Non-convergence and
// covariance rank deficiency are reported through the corresponding
// [Result] fields alongside a complete result.
//
// Identical inputs and an identical injected seed (see [WithSeed]) produce
// identical outputs.
func Run(observations [][]float64, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)

	n, _, err := validate(observations)
	if err != nil {
		return nil, err
	}

	k := cfg.Components
	if k == 0 {
		k = n
	}

	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidComponentCount, k, n)
	}

	centered, mean := center(observations)

	wh, err := whiten(centered)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	result := &Result{
		Mean:          mean,
		RankDeficient: wh.rankDeficient,
	}

	var wk *mat.Dense

	switch cfg.Approach {
	case ApproachDeflation:
		var iters []int
		wk, iters, result.Converged = optimizeDeflation(wh.z, k, cfg.Nonlinearity, cfg.MaxIterations, cfg.Tolerance, rng)

		result.ComponentIterations = iters
		for _, it := range iters {
			if it > result.Iterations {
				result.Iterations = it
			}
		}
	default:
		wk, result.Converged, result.Iterations, err = optimizeSymmetric(wh.z, k, cfg.Nonlinearity, cfg.MaxIterations, cfg.Tolerance, rng)
		if err != nil {
			return nil, err
		}
	}

	// Compose with the whitening transform to obtain the unmixing matrix in
	// the original signal space, then derive its pseudo-inverse and project
	// the mean-removed observations through it.
	unmix := mat.NewDense(k, n, nil)
	unmix.Mul(wk, wh.white)

	mixing, err := pseudoInverse(unmix)
	if err != nil {
		return nil, err
	}

	var sources mat.Dense
	sources.Mul(unmix, centered)

	result.Unmixing = toRows(unmix)
	result.Mixing = toRows(mixing)
	result.Sources = toRows(&sources)

	return result, nil
}
