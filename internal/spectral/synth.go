package spectral

import (
	"math"

	"github.com/papapumpkin/spectra/internal/periodic"
)

// Visible range and resolution used by default.
const (
	DefaultMinNm   = 380.0
	DefaultMaxNm   = 780.0
	DefaultSamples = 400
)

// Peak shapes. These are illustrative placeholders, not measured data.
const (
	primaryAmplitude   = 0.8
	primarySigmaNm     = 10.0
	secondaryAmplitude = 0.3
	secondarySigmaNm   = 8.0
	secondaryStepNm    = 30.0
	secondaryCount     = 3
)

// Sample is one point of a synthesized spectrum.
type Sample struct {
	Nm        float64 `json:"nm" toml:"nm" yaml:"nm"`
	Intensity float64 `json:"intensity" toml:"intensity" yaml:"intensity"`
}

// Options controls the sampling grid.
type Options struct {
	MinNm   float64
	MaxNm   float64
	Samples int
}

// Option configures Synthesize.
type Option func(*Options)

// WithDomain sets the wavelength range. A reversed range is swapped.
func WithDomain(minNm, maxNm float64) Option {
	return func(o *Options) {
		if minNm > maxNm {
			minNm, maxNm = maxNm, minNm
		}
		o.MinNm, o.MaxNm = minNm, maxNm
	}
}

// WithSamples sets the sample count; values below 2 are raised to 2.
func WithSamples(n int) Option {
	return func(o *Options) {
		o.Samples = max(n, 2)
	}
}

// DefaultOptions returns the visible-range grid.
func DefaultOptions() Options {
	return Options{MinNm: DefaultMinNm, MaxNm: DefaultMaxNm, Samples: DefaultSamples}
}

// Grid returns Samples equally spaced wavelengths covering [MinNm, MaxNm],
// both ends included.
func (o Options) Grid() []float64 {
	n := max(o.Samples, 2)
	step := (o.MaxNm - o.MinNm) / float64(n-1)
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = o.MinNm + float64(i)*step
	}
	grid[n-1] = o.MaxNm
	return grid
}

// Synthesize samples the display spectrum of symbol. Elements with a
// signature get a primary Gaussian at the dominant wavelength plus up to
// three weaker peaks spaced 30 nm above it, each kept only when it falls
// inside the domain. Elements without a signature yield a flat zero curve.
func Synthesize(cat *periodic.Catalog, symbol string, opts ...Option) []Sample {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sig, ok := cat.Signature(symbol)
	if !ok {
		return Curve(nil, o)
	}
	return Curve(&sig, o)
}

// Curve samples the display spectrum for sig over the grid in o. A nil
// signature yields zeros.
func Curve(sig *periodic.Signature, o Options) []Sample {
	grid := o.Grid()
	out := make([]Sample, len(grid))
	for i, nm := range grid {
		out[i].Nm = nm
	}
	if sig == nil {
		return out
	}

	type peak struct{ center, amp, sigma float64 }
	peaks := []peak{{sig.DominantNm, primaryAmplitude, primarySigmaNm}}
	for k := 1; k <= secondaryCount; k++ {
		center := sig.DominantNm + float64(k)*secondaryStepNm
		if center >= o.MinNm && center <= o.MaxNm {
			peaks = append(peaks, peak{center, secondaryAmplitude, secondarySigmaNm})
		}
	}

	for i := range out {
		for _, p := range peaks {
			out[i].Intensity += gaussian(out[i].Nm, p.center, p.amp, p.sigma)
		}
	}
	return out
}

func gaussian(x, center, amp, sigma float64) float64 {
	z := (x - center) / sigma
	return amp * math.Exp(-0.5*z*z)
}

// Peaks returns the indices of local maxima: samples strictly above their
// left neighbor, at least their right neighbor, and above zero. Plateaus
// report their first sample.
func Peaks(samples []Sample) []int {
	var idx []int
	for i, s := range samples {
		if s.Intensity <= 0 {
			continue
		}
		if i > 0 && samples[i-1].Intensity >= s.Intensity {
			continue
		}
		if i < len(samples)-1 && samples[i+1].Intensity > s.Intensity {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Intensities projects the intensity column of samples.
func Intensities(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Intensity
	}
	return out
}
