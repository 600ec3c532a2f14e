package ica

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// degenerateNorm is the threshold below which a deflation candidate is
// considered fully projected away by the accepted rows and redrawn.
const degenerateNorm = 1e-12

func dot(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}

	return sum
}

// normalize scales v to unit length in place. It reports false if the norm
// is too small to normalize reliably.
func normalize(v []float64) bool {
	norm := math.Sqrt(dot(v, v))
	if norm < degenerateNorm {
		return false
	}

	for i := range v {
		v[i] /= norm
	}

	return true
}

// maxDirectionChange returns max over rows of |1 - |<a_i, b_i>||, the
// sign-invariant direction change between two row-wise unit matrices.
func maxDirectionChange(a, b *mat.Dense) float64 {
	k, _ := a.Dims()

	var worst float64
	for i := 0; i < k; i++ {
		d := math.Abs(1 - math.Abs(dot(a.RawRowView(i), b.RawRowView(i))))
		if d > worst {
			worst = d
		}
	}

	return worst
}

// symmetricOrthonormalize replaces w (k x n, k <= n) with (w*w^T)^(-1/2)*w,
// making its rows mutually orthonormal.
func symmetricOrthonormalize(w *mat.Dense) error {
	k, _ := w.Dims()

	var gram mat.Dense
	gram.Mul(w, w.T())

	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, gram.At(i, j))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return fmt.Errorf("ica: orthonormalization eigendecomposition failed")
	}

	vals := eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues arrive in ascending order; the floor guards nearly
	// dependent rows in the random initializer.
	maxEig := vals[k-1]
	if maxEig < 0 {
		maxEig = 0
	}

	floor := eigFloorScale * maxEig
	if floor == 0 {
		floor = eigFloorScale
	}

	scaled := mat.NewDense(k, k, nil)

	for j := 0; j < k; j++ {
		ev := vals[j]
		if ev < 0 {
			ev = 0
		}

		s := 1 / math.Sqrt(ev+floor)
		for i := 0; i < k; i++ {
			scaled.Set(i, j, vecs.At(i, j)*s)
		}
	}

	var invRoot mat.Dense
	invRoot.Mul(scaled, vecs.T())

	var out mat.Dense
	out.Mul(&invRoot, w)
	w.Copy(&out)

	return nil
}

// optimizeSymmetric runs the joint fixed-point iteration on whitened data z
// (n x m), estimating k orthonormal rows at once. It returns the unmixing
// matrix in whitened space, whether the tolerance was met, and the number of
// iterations performed.
func optimizeSymmetric(z *mat.Dense, k int, nl Nonlinearity, maxIter int, tol float64, rng *rand.Rand) (*mat.Dense, bool, int, error) {
	n, m := z.Dims()

	w := mat.NewDense(k, n, nil)
	for i := 0; i < k; i++ {
		row := w.RawRowView(i)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
	}

	if err := symmetricOrthonormalize(w); err != nil {
		return nil, false, 0, err
	}

	prev := mat.NewDense(k, n, nil)
	u := mat.NewDense(k, m, nil)
	g := mat.NewDense(k, m, nil)
	gd := make([]float64, m)
	gdMean := make([]float64, k)
	update := mat.NewDense(k, n, nil)

	for iter := 1; iter <= maxIter; iter++ {
		prev.Copy(w)

		u.Mul(w, z)

		for i := 0; i < k; i++ {
			nl.apply(u.RawRowView(i), g.RawRowView(i), gd)

			var sum float64
			for _, v := range gd {
				sum += v
			}

			gdMean[i] = sum / float64(m)
		}

		// W <- g(U)*Z^T/M - diag(mean g'(U))*W
		update.Mul(g, z.T())
		update.Scale(1/float64(m), update)

		for i := 0; i < k; i++ {
			row := update.RawRowView(i)
			old := prev.RawRowView(i)
			for j := range row {
				row[j] -= gdMean[i] * old[j]
			}
		}

		w.Copy(update)

		if err := symmetricOrthonormalize(w); err != nil {
			return nil, false, 0, err
		}

		if maxDirectionChange(w, prev) < tol {
			return w, true, iter, nil
		}
	}

	return w, false, maxIter, nil
}

// orthogonalize removes from v its projection onto the first count rows of
// basis (Gram-Schmidt; rows are unit length).
func orthogonalize(v []float64, basis *mat.Dense, count int) {
	for r := 0; r < count; r++ {
		row := basis.RawRowView(r)
		c := dot(v, row)

		for i := range v {
			v[i] -= c * row[i]
		}
	}
}

// randomUnit draws a random direction orthogonal to the first count rows of
// basis and normalizes it to unit length.
func randomUnit(n int, rng *rand.Rand, basis *mat.Dense, count int) []float64 {
	v := make([]float64, n)

	for {
		for i := range v {
			v[i] = rng.NormFloat64()
		}

		orthogonalize(v, basis, count)

		if normalize(v) {
			return v
		}
	}
}

// optimizeDeflation estimates k components one at a time, orthogonalizing
// each candidate against the previously accepted rows after every update.
// It returns the unmixing matrix in whitened space, the iterations spent on
// each component, and whether every component met the tolerance.
func optimizeDeflation(z *mat.Dense, k int, nl Nonlinearity, maxIter int, tol float64, rng *rand.Rand) (*mat.Dense, []int, bool) {
	n, m := z.Dims()

	basis := mat.NewDense(k, n, nil)
	iterations := make([]int, k)
	converged := true

	y := make([]float64, m)
	g := make([]float64, m)
	gd := make([]float64, m)
	wNew := make([]float64, n)

	for comp := 0; comp < k; comp++ {
		w := randomUnit(n, rng, basis, comp)

		var (
			used int
			done bool
		)

		for iter := 1; iter <= maxIter; iter++ {
			used = iter

			// y = w^T Z
			for j := range y {
				y[j] = 0
			}

			for i := 0; i < n; i++ {
				zi := z.RawRowView(i)
				wi := w[i]
				for j, v := range zi {
					y[j] += wi * v
				}
			}

			nl.apply(y, g, gd)

			var gdSum float64
			for _, v := range gd {
				gdSum += v
			}
			gdMean := gdSum / float64(m)

			// w <- E[g(y)*z] - E[g'(y)]*w
			for i := 0; i < n; i++ {
				zi := z.RawRowView(i)

				var s float64
				for j, v := range zi {
					s += g[j] * v
				}

				wNew[i] = s/float64(m) - gdMean*w[i]
			}

			orthogonalize(wNew, basis, comp)

			if !normalize(wNew) {
				// The update collapsed into the span of the accepted rows;
				// restart this component from a fresh direction.
				copy(w, randomUnit(n, rng, basis, comp))
				continue
			}

			delta := math.Abs(1 - math.Abs(dot(wNew, w)))
			copy(w, wNew)

			if delta < tol {
				done = true
				break
			}
		}

		iterations[comp] = used

		if !done {
			converged = false
		}

		basis.SetRow(comp, w)
	}

	return basis, iterations, converged
}
