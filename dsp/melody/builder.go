package melody

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

// DefaultSilenceGap is the articulation gap between notes, in beats.
const DefaultSilenceGap = 0.02

type config struct {
	silenceGap float64
	harmonics  []float64
	adsr       signal.ADSR
	processor  []core.ProcessorOption
}

func defaultConfig() config {
	return config{
		silenceGap: DefaultSilenceGap,
		harmonics:  append([]float64(nil), PianoHarmonics[:]...),
		adsr:       signal.DefaultADSR(),
	}
}

// Option configures a [Builder].
type Option func(*config) error

// WithSilenceGap sets the forced silence at the end of every note, in beats.
func WithSilenceGap(beats float64) Option {
	return func(cfg *config) error {
		if beats < 0 || math.IsNaN(beats) || math.IsInf(beats, 0) {
			return fmt.Errorf("melody: silence gap must be >= 0 and finite: %f", beats)
		}
		cfg.silenceGap = beats
		return nil
	}
}

// WithHarmonics sets the relative harmonic volumes of every voice.
func WithHarmonics(volumes []float64) Option {
	return func(cfg *config) error {
		if len(volumes) == 0 {
			return errors.New("melody: harmonics must not be empty")
		}
		cfg.harmonics = append([]float64(nil), volumes...)
		return nil
	}
}

// WithEnvelope sets the ADSR shape applied to the melody.
func WithEnvelope(adsr signal.ADSR) Option {
	return func(cfg *config) error {
		if err := adsr.Validate(); err != nil {
			return err
		}
		cfg.adsr = adsr
		return nil
	}
}

// WithProcessorOptions sets the sample rate used by the voices and the
// envelope.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(cfg *config) error {
		cfg.processor = append(cfg.processor, opts...)
		return nil
	}
}

// Builder assembles melody graphs with a fixed configuration.
type Builder struct {
	cfg config
}

// NewBuilder creates a Builder. The defaults are a 0.02-beat silence gap,
// [PianoHarmonics] and [signal.DefaultADSR].
func NewBuilder(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Builder{cfg: cfg}, nil
}

// SilenceGap returns the articulation gap in beats.
func (b *Builder) SilenceGap() float64 { return b.cfg.silenceGap }

// Build returns the frequency and gate step sequences for notes at bpm.
//
// For each note the frequency sequence holds the note's voice for the full
// note length, and the gate sequence holds 1 for the note length minus the
// silence gap followed by 0 for the gap. A note shorter than the gap is
// silent for its whole length. Both sequences always have the same total.
func (b *Builder) Build(notes []Note, bpm float64) (freq, gate *signal.StepSequencer, err error) {
	if err := validateTempo(bpm); err != nil {
		return nil, nil, err
	}
	if err := validateNotes(notes); err != nil {
		return nil, nil, err
	}

	secondsPerBeat := 60 / bpm
	gap := b.cfg.silenceGap

	freqSteps := make([]signal.Step, 0, len(notes))
	gateSteps := make([]signal.Step, 0, 2*len(notes))
	for _, n := range notes {
		freqSteps = append(freqSteps, signal.Step{
			Signal:   Voice(n.Frequency, b.cfg.harmonics, b.cfg.processor...),
			Duration: n.Beats * secondsPerBeat,
		})
		gateSteps = append(gateSteps,
			signal.Step{Signal: signal.NewConstant(1), Duration: math.Max(n.Beats-gap, 0) * secondsPerBeat},
			signal.Step{Signal: signal.NewConstant(0), Duration: math.Min(gap, n.Beats) * secondsPerBeat},
		)
	}

	return signal.NewStepSequencer(freqSteps...), signal.NewStepSequencer(gateSteps...), nil
}

// Melody builds notes at bpm and wraps them in the configured envelope.
// An empty note list yields a silent envelope.
func (b *Builder) Melody(notes []Note, bpm float64) (*signal.Envelope, error) {
	freq, gate, err := b.Build(notes, bpm)
	if err != nil {
		return nil, err
	}
	return signal.NewEnvelope(gate, freq, b.cfg.adsr, b.cfg.processor...), nil
}
