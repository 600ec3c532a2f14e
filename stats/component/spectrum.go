package component

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}

// hann returns symmetric Hann window coefficients.
func hann(size int) []float64 {
	coeffs := make([]float64, size)
	if size == 1 {
		coeffs[0] = 1
		return coeffs
	}

	for i := range coeffs {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}

	return coeffs
}

// PowerSpectrum returns the one-sided power spectrum |X[k]|^2 of a component
// signal, Hann-windowed and zero-padded to fftSize. A non-positive fftSize
// selects the next power of two at or above the component length. The result
// has fftSize/2+1 bins from DC to Nyquist; bin i corresponds to frequency
// i*sampleRate/fftSize.
func PowerSpectrum(component []float64, fftSize int) ([]float64, error) {
	if len(component) == 0 {
		return nil, fmt.Errorf("component: power spectrum input must not be empty")
	}

	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(component))
	}

	if fftSize < len(component) {
		return nil, fmt.Errorf("component: fft size %d smaller than component length %d", fftSize, len(component))
	}

	windowed := make([]float64, len(component))
	copy(windowed, component)
	vecmath.MulBlockInPlace(windowed, hann(len(component)))

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("component: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("component: fft: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	return power, nil
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin
// of a one-sided power spectrum produced by [PowerSpectrum].
func DominantFrequency(power []float64, sampleRate float64) (float64, error) {
	if len(power) < 2 {
		return 0, fmt.Errorf("component: dominant frequency needs at least 2 bins: %d", len(power))
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("component: sample rate must be > 0: %f", sampleRate)
	}

	fftSize := 2 * (len(power) - 1)

	maxBin := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[maxBin] {
			maxBin = i
		}
	}

	return float64(maxBin) * sampleRate / float64(fftSize), nil
}
