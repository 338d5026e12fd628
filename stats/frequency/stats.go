// Package frequency analyzes the spectrum of a rendered channel.
package frequency

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/window"
)

// ErrEmptySignal is returned when there is nothing to analyze.
var ErrEmptySignal = errors.New("frequency: empty signal")

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
//
//nolint:revive
type Stats struct {
	BinCount int
	Max      float64
	Max_dB   float64
	MaxBin   int
	Peak     float64 // frequency of MaxBin (Hz)
	Centroid float64 // Hz
	Energy   float64 // sum of squared magnitudes
}

type config struct {
	window window.Type
}

// Option configures spectral analysis.
type Option func(*config)

// WithWindow selects the taper applied before the FFT. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// BinFrequency returns the frequency in Hz of bin i of a one-sided spectrum
// with binCount bins (FFT size 2·(binCount-1)).
func BinFrequency(i int, sampleRate float64, binCount int) float64 {
	if binCount < 2 {
		return 0
	}
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Spectrum returns the one-sided magnitude spectrum of signal.
//
// The signal is windowed (Hann unless WithWindow says otherwise) and zero-padded to the next power of two.
// Magnitudes are scaled so a sinusoid of amplitude A that falls on a bin
// peaks at A.
func Spectrum(signal []float64, opts ...Option) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	cfg := config{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if len(signal) == 1 {
		cfg.window = window.TypeRectangular
	}

	fftSize := nextPowerOf2(len(signal))
	if fftSize < 2 {
		fftSize = 2
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("frequency: failed to create FFT plan: %w", err)
	}

	windowed := make([]float64, len(signal))
	copy(windowed, signal)
	gain := window.Apply(cfg.window, windowed) * float64(len(signal))

	in := make([]complex128, fftSize)
	for i, x := range windowed {
		in[i] = complex(x, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("frequency: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	if gain > 0 {
		vecmath.ScaleBlock(mag, mag, 2/gain)
	}
	return mag, nil
}

// DominantFrequency estimates the frequency of the strongest non-DC
// component of signal. The peak bin is refined by fitting a parabola
// through the log magnitudes of its neighbours.
func DominantFrequency(signal []float64, sampleRate float64, opts ...Option) (float64, error) {
	if !(sampleRate > 0) {
		return 0, fmt.Errorf("frequency: sample rate must be > 0: %f", sampleRate)
	}
	mag, err := Spectrum(signal, opts...)
	if err != nil {
		return 0, err
	}

	peak := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}
	if mag[peak] == 0 {
		return 0, nil
	}

	offset := 0.0
	if peak > 0 && peak < len(mag)-1 && mag[peak-1] > 0 && mag[peak+1] > 0 {
		a := math.Log(mag[peak-1])
		b := math.Log(mag[peak])
		c := math.Log(mag[peak+1])
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	return (float64(peak) + offset) * sampleRate / float64(2*(len(mag)-1)), nil
}

// Calculate computes statistics from a one-sided magnitude spectrum
// (linear scale, not dB).
func Calculate(magnitude []float64, sampleRate float64) Stats {
	s := Stats{BinCount: len(magnitude), Max_dB: math.Inf(-1)}
	if len(magnitude) == 0 {
		return s
	}

	sum, weighted := 0.0, 0.0
	for i, v := range magnitude {
		sum += v
		s.Energy += v * v
		weighted += v * BinFrequency(i, sampleRate, len(magnitude))
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}
	s.Max_dB = toDB(s.Max)
	s.Peak = BinFrequency(s.MaxBin, sampleRate, len(magnitude))
	if sum > 0 {
		s.Centroid = weighted / sum
	}
	return s
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
