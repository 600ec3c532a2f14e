package component

import "math"

// expLogCoshGauss is E[log cosh(v)] for standard normal v, the Gaussian
// reference point of the logcosh negentropy approximation.
const expLogCoshGauss = 0.3745672074

// Stats holds moment statistics of a single component signal.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64
	Skewness float64
	Kurtosis float64 // excess kurtosis; 0 for Gaussian data
}

// Calculate computes moment statistics in a single pass using Welford's
// online algorithm for numerical stability on the higher-order moments.
func Calculate(component []float64) Stats {
	mean, variance, skewness, kurtosis := Moments(component)

	return Stats{
		Length:   len(component),
		Mean:     mean,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of the component using Welford's online algorithm.
func Moments(component []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(component)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, x := range component {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// Kurtosis returns the excess kurtosis of the component, the classic
// non-Gaussianity measure: positive for super-Gaussian (peaked) sources,
// negative for sub-Gaussian (flat) ones, near zero for Gaussian data.
func Kurtosis(component []float64) float64 {
	_, _, _, kurtosis := Moments(component)
	return kurtosis
}

// Negentropy returns the logcosh negentropy approximation
// J(y) = (E[log cosh y] - E[log cosh v])^2 of the standardized component,
// with v standard normal. Larger values indicate stronger non-Gaussianity.
// Returns 0 for empty or constant input.
func Negentropy(component []float64) float64 {
	mean, variance, _, _ := Moments(component)
	if variance <= 0 {
		return 0
	}

	std := math.Sqrt(variance)

	var sum float64
	for _, x := range component {
		y := (x - mean) / std
		sum += math.Log(math.Cosh(y))
	}

	d := sum/float64(len(component)) - expLogCoshGauss

	return d * d
}
