// Package window provides the cosine-sum tapers used before spectral
// analysis.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop

	typeCount
)

var (
	names = [typeCount]string{
		"Rectangular", "Hann", "Hamming", "Blackman", "BlackmanHarris4Term", "FlatTop",
	}

	// Cosine-sum terms: w(x) = Σ c_k cos(2πkx), x in [0, 1].
	coeffs = [typeCount][]float64{
		TypeRectangular:         {1},
		TypeHann:                {0.5, -0.5},
		TypeHamming:             {0.54, -0.46},
		TypeBlackman:            {0.42, -0.5, 0.08},
		TypeBlackmanHarris4Term: {0.35875, -0.48829, 0.14128, -0.01168},
		TypeFlatTop:             {0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
	}
)

// String returns the window name.
func (t Type) String() string {
	if t >= 0 && t < typeCount {
		return names[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type config struct {
	periodic bool
}

// Option configures window generation.
type Option func(*config)

// WithPeriodic generates the periodic (DFT-even) form, whose last sample
// is not the repeat of the first.
func WithPeriodic() Option {
	return func(cfg *config) {
		cfg.periodic = true
	}
}

// Generate returns length coefficients of window t. Unknown types give a
// rectangular window.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	terms := coeffs[TypeRectangular]
	if t >= 0 && t < typeCount {
		terms = coeffs[t]
	}

	den := float64(length - 1)
	if cfg.periodic {
		den = float64(length)
	}

	out := make([]float64, length)
	for n := range out {
		x := 0.0
		if den > 0 {
			x = float64(n) / den
		}
		for k, c := range terms {
			out[n] += c * math.Cos(2*math.Pi*float64(k)*x)
		}
	}
	return out
}

// Apply multiplies buf in place by window t and returns the coherent gain
// of the coefficients used.
func Apply(t Type, buf []float64, opts ...Option) float64 {
	if len(buf) == 0 {
		return 0
	}
	w := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, w)
	return CoherentGain(w)
}

// CoherentGain returns the mean of the coefficients, the amplitude factor
// a windowed sinusoid picks up.
func CoherentGain(w []float64) float64 {
	if len(w) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum / float64(len(w))
}
