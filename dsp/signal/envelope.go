package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// EnvelopeState is the stage of an ADSR envelope.
type EnvelopeState int

const (
	// EnvelopeIdle holds the last released value (normally zero).
	EnvelopeIdle EnvelopeState = iota
	// EnvelopeAttack ramps up towards the peak level.
	EnvelopeAttack
	// EnvelopeDecay ramps down from the peak towards the sustain level.
	EnvelopeDecay
	// EnvelopeSustain holds the sustain level while the gate stays open.
	EnvelopeSustain
	// EnvelopeRelease ramps down to zero after the gate closes.
	EnvelopeRelease

	envelopeStateCount
)

var envelopeStateNames = [envelopeStateCount]string{
	"Idle", "Attack", "Decay", "Sustain", "Release",
}

// String returns the name of the stage.
func (s EnvelopeState) String() string {
	if s >= 0 && s < envelopeStateCount {
		return envelopeStateNames[s]
	}
	return fmt.Sprintf("EnvelopeState(%d)", s)
}

// ADSR holds the envelope shape. Durations are in seconds.
type ADSR struct {
	Attack       float64
	Decay        float64
	Release      float64
	PeakLevel    float64
	SustainLevel float64
}

// DefaultADSR returns a short electric-piano style shape:
// 10 ms attack, 300 ms decay to half level, 10 ms release.
func DefaultADSR() ADSR {
	return ADSR{
		Attack:       0.01,
		Decay:        0.3,
		Release:      0.01,
		PeakLevel:    1.0,
		SustainLevel: 0.5,
	}
}

// Validate reports whether the shape is usable.
func (a ADSR) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"attack", a.Attack},
		{"decay", a.Decay},
		{"release", a.Release},
	} {
		if d.v < 0 || math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return fmt.Errorf("signal: envelope %s must be >= 0 and finite: %f", d.name, d.v)
		}
	}
	if !(a.PeakLevel > 0) || math.IsInf(a.PeakLevel, 0) {
		return fmt.Errorf("signal: envelope peak level must be > 0 and finite: %f", a.PeakLevel)
	}
	if a.SustainLevel < 0 || a.SustainLevel > a.PeakLevel || math.IsNaN(a.SustainLevel) {
		return fmt.Errorf("signal: envelope sustain level must be in [0, %f]: %f", a.PeakLevel, a.SustainLevel)
	}
	return nil
}

// Envelope shapes its input with an ADSR contour driven by a gate signal.
//
// A rising gate edge starts the attack from the current level and a falling
// edge starts the release from the current level, so re-triggering in the
// middle of a phase never jumps. Each call samples the gate and the input
// exactly once and returns level × input.
type Envelope struct {
	gate  Signal
	input Signal
	adsr  ADSR

	// phase lengths in samples, floored at one sample
	attackSamples  float64
	decaySamples   float64
	releaseSamples float64

	state    EnvelopeState
	value    float64
	begValue float64
	gateLast bool
}

// NewEnvelope creates an envelope over input triggered by gate. The sample
// rate is taken from opts (default 44100 Hz).
func NewEnvelope(gate, input Signal, adsr ADSR, opts ...core.ProcessorOption) *Envelope {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Envelope{
		gate:           orSilence(gate),
		input:          orSilence(input),
		adsr:           adsr,
		attackSamples:  math.Max(adsr.Attack*cfg.SampleRate, 1),
		decaySamples:   math.Max(adsr.Decay*cfg.SampleRate, 1),
		releaseSamples: math.Max(adsr.Release*cfg.SampleRate, 1),
	}
}

// ADSR returns the envelope shape.
func (e *Envelope) ADSR() ADSR { return e.adsr }

// State returns the current stage.
func (e *Envelope) State() EnvelopeState { return e.state }

// Value returns the current envelope level.
func (e *Envelope) Value() float64 { return e.value }

// Sample implements Signal.
func (e *Envelope) Sample(t float64) float64 {
	gate := e.gate.Sample(t) > 0
	switch {
	case gate && !e.gateLast:
		e.begValue = e.value
		e.state = EnvelopeAttack
	case !gate && e.gateLast:
		e.begValue = e.value
		e.state = EnvelopeRelease
	}
	e.gateLast = gate

	e.advance()

	return e.value * e.input.Sample(t)
}

func (e *Envelope) advance() {
	peak, sustain := e.adsr.PeakLevel, e.adsr.SustainLevel

	switch e.state {
	case EnvelopeIdle:
		e.begValue = 0

	case EnvelopeAttack:
		e.value += peak / e.attackSamples
		if e.value >= peak {
			e.value = peak
			e.state = EnvelopeDecay
		}

	case EnvelopeDecay:
		e.value -= (peak - sustain) / e.decaySamples
		if e.value <= sustain {
			e.value = sustain
			e.state = EnvelopeSustain
		}

	case EnvelopeSustain:
		e.value = sustain

	case EnvelopeRelease:
		e.value -= e.begValue / e.releaseSamples
		if e.value <= 0 {
			e.value = 0
			e.state = EnvelopeIdle
		}
	}
}

// Duplicate copies the envelope including its stage and level.
func (e *Envelope) Duplicate() Signal {
	dup := *e
	dup.gate = e.gate.Duplicate()
	dup.input = e.input.Duplicate()
	return &dup
}
