package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate used to convert frequencies in Hz to
// per-sample phase increments.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. Defaults: 1000 Hz
// sample rate, seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 1000,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

func (g *Generator) validate(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return fmt.Errorf("signal: sample rate must be > 0: %f", g.sampleRate)
	}
	return nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Square generates a square wave alternating between +amplitude and
// -amplitude, starting in the positive half-cycle.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	step := freqHz / g.sampleRate

	for i := range out {
		phase := step * float64(i)
		if phase-math.Floor(phase) < 0.5 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}

	return out, nil
}

// Sawtooth generates a rising sawtooth in [-amplitude, amplitude].
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	step := freqHz / g.sampleRate

	for i := range out {
		phase := step * float64(i)
		frac := phase - math.Floor(phase)
		out[i] = amplitude * (2*frac - 1)
	}

	return out, nil
}

// WhiteNoise generates deterministic uniform noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// GaussianNoise generates deterministic normal noise with the given standard
// deviation.
func (g *Generator) GaussianNoise(stddev float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}
	if stddev < 0 {
		return nil, fmt.Errorf("signal: noise stddev must be >= 0: %f", stddev)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = rng.NormFloat64() * stddev
	}

	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}

// Mix applies a mixing matrix to a set of source signals, producing the
// observation matrix X = A*S. The mixing matrix has one row per observed
// signal and one column per source; all sources must have equal length.
func Mix(mixing [][]float64, sources [][]float64) ([][]float64, error) {
	if len(mixing) == 0 || len(sources) == 0 {
		return nil, fmt.Errorf("signal: mix inputs must not be empty")
	}

	k := len(sources)
	m := len(sources[0])

	for i, s := range sources {
		if len(s) != m {
			return nil, fmt.Errorf("signal: source %d has %d samples, want %d", i, len(s), m)
		}
	}

	for i, row := range mixing {
		if len(row) != k {
			return nil, fmt.Errorf("signal: mixing row %d has %d entries, want %d", i, len(row), k)
		}
	}

	a := mat.NewDense(len(mixing), k, nil)
	for i, row := range mixing {
		a.SetRow(i, row)
	}

	s := mat.NewDense(k, m, nil)
	for i, row := range sources {
		s.SetRow(i, row)
	}

	var x mat.Dense
	x.Mul(a, s)

	out := make([][]float64, len(mixing))
	for i := range out {
		row := make([]float64, m)
		copy(row, x.RawRowView(i))
		out[i] = row
	}

	return out, nil
}
