package ica

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// eigFloorScale scales the largest covariance eigenvalue into the additive
// floor applied before the inverse square root, guarding rank-deficient or
// duplicated signals against division by (near-)zero.
const eigFloorScale = 1e-12

// whitening holds the outcome of the whitening stage.
type whitening struct {
	z             *mat.Dense // decorrelated, unit-variance data, N x M
	white         *mat.Dense // whitening transform, N x N
	dewhite       *mat.Dense // inverse of white, N x N
	rankDeficient bool
}

// center copies the observations into a dense matrix with the per-signal
// sample mean removed. The caller's slices are never mutated.
func center(observations [][]float64) (*mat.Dense, []float64) {
	n := len(observations)
	m := len(observations[0])

	mean := make([]float64, n)
	centered := mat.NewDense(n, m, nil)

	for i, row := range observations {
		var sum float64
		for _, v := range row {
			sum += v
		}

		mean[i] = sum / float64(m)

		dst := centered.RawRowView(i)
		for j, v := range row {
			dst[j] = v - mean[i]
		}
	}

	return centered, mean
}

// whiten decorrelates centered data through an eigendecomposition of its
// sample covariance (1/(M-1) normalization). Eigenpairs are sorted by
// eigenvalue descending with a stable sort; negative eigenvalues from
// ill-conditioning are clamped to zero before the inverse square root.
//
// The returned transforms satisfy white*cov*white^T ~ I and
// white*dewhite = I up to the eigenvalue floor.
func whiten(centered *mat.Dense) (*whitening, error) {
	n, m := centered.Dims()

	var cov mat.Dense
	cov.Mul(centered, centered.T())
	cov.Scale(1/float64(m-1), &cov)

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, cov.At(i, j))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("ica: covariance eigendecomposition failed")
	}

	vals := eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	sort.SliceStable(perm, func(a, b int) bool {
		return vals[perm[a]] > vals[perm[b]]
	})

	maxEig := vals[perm[0]]
	if maxEig < 0 {
		maxEig = 0
	}

	floor := eigFloorScale * maxEig
	if floor == 0 {
		floor = eigFloorScale
	}

	rankDeficient := false
	white := mat.NewDense(n, n, nil)
	dewhite := mat.NewDense(n, n, nil)

	for i, p := range perm {
		ev := vals[p]
		if ev < 0 {
			ev = 0
		}

		if ev <= floor {
			rankDeficient = true
		}

		root := math.Sqrt(ev + floor)
		for j := 0; j < n; j++ {
			white.Set(i, j, vecs.At(j, p)/root)
			dewhite.Set(j, i, vecs.At(j, p)*root)
		}
	}

	var z mat.Dense
	z.Mul(white, centered)

	return &whitening{
		z:             &z,
		white:         white,
		dewhite:       dewhite,
		rankDeficient: rankDeficient,
	}, nil
}
