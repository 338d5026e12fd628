package signal

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Oscillator is a cosine oscillator with a phase accumulator. The frequency
// is itself a Signal, sampled once per call, so vibrato and FM are plain
// graph composition.
type Oscillator struct {
	freq   Signal
	period float64
	phase  float64
}

// NewOscillator creates an oscillator driven by freq (Hz). The sample rate is
// taken from opts (default 44100 Hz).
func NewOscillator(freq Signal, opts ...core.ProcessorOption) *Oscillator {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Oscillator{
		freq:   orSilence(freq),
		period: cfg.SamplePeriod(),
	}
}

// Phase returns the current phase in radians, in [0, 2π).
func (o *Oscillator) Phase() float64 { return o.phase }

// Sample returns cos(phase) and then advances the phase by
// 2π·samplePeriod·freq(t).
func (o *Oscillator) Sample(t float64) float64 {
	out := math.Cos(o.phase)
	o.phase = core.WrapPhase(o.phase + 2*math.Pi*o.period*o.freq.Sample(t))
	return out
}

// Duplicate copies the oscillator including its phase.
func (o *Oscillator) Duplicate() Signal {
	return &Oscillator{
		freq:   o.freq.Duplicate(),
		period: o.period,
		phase:  o.phase,
	}
}
