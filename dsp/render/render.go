package render

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

// DefaultVolume is the master volume applied to the root signal.
const DefaultVolume = 0.4

// Option configures a [Renderer]. Invalid values are ignored.
type Option func(*Renderer)

// WithVolume sets the linear master volume. Negative or non-finite values
// are ignored.
func WithVolume(v float64) Option {
	return func(r *Renderer) {
		if v >= 0 && !math.IsInf(v, 0) {
			r.volume = v
		}
	}
}

// WithVolumeDB sets the master volume in decibels.
func WithVolumeDB(db float64) Option {
	return WithVolume(core.DBToLinear(db))
}

// WithPan sets the stereo position in [-1, 1]; values outside are clamped.
func WithPan(pan float64) Option {
	return func(r *Renderer) {
		r.pan = clampPan(pan)
	}
}

// WithPanLaw selects the pan law.
func WithPanLaw(law PanLaw) Option {
	return func(r *Renderer) {
		if law == PanBalance || law == PanConstantPower {
			r.law = law
		}
	}
}

// WithProcessorOptions sets the sample rate of the render loop.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(r *Renderer) {
		for _, opt := range opts {
			if opt != nil {
				opt(&r.cfg)
			}
		}
	}
}

// Renderer turns a signal graph into a stereo buffer.
type Renderer struct {
	cfg core.ProcessorConfig

	volume float64
	pan    float64
	law    PanLaw

	left, right float64 // cached pan gains
}

// New returns a Renderer at 44100 Hz, volume [DefaultVolume], centered.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		cfg:    core.DefaultProcessorConfig(),
		volume: DefaultVolume,
		law:    PanBalance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.left, r.right = r.law.Gains(r.pan)
	return r
}

// SampleRate returns the render sample rate in Hz.
func (r *Renderer) SampleRate() float64 { return r.cfg.SampleRate }

// Volume returns the linear master volume.
func (r *Renderer) Volume() float64 { return r.volume }

// Pan returns the stereo position.
func (r *Renderer) Pan() float64 { return r.pan }

// PanLaw returns the pan law.
func (r *Renderer) PanLaw() PanLaw { return r.law }

// Frames returns the frame count for seconds of audio, rounded to the
// nearest frame. Negative or non-finite durations give 0.
func (r *Renderer) Frames(seconds float64) int {
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return 0
	}
	return int(math.Round(seconds * r.cfg.SampleRate))
}

// Render samples root once per frame for frames frames. A nil root renders
// silence.
func (r *Renderer) Render(root signal.Signal, frames int) *buffer.Stereo {
	out := buffer.NewStereo(frames, r.cfg.SampleRate)
	if root == nil {
		return out
	}

	period := r.cfg.SamplePeriod()
	dst := out.Frames()
	for i := range dst {
		x := root.Sample(float64(i)*period) * r.volume
		dst[i] = buffer.Frame{L: x * r.left, R: x * r.right}
	}
	return out
}

// RenderDuration renders seconds of audio.
func (r *Renderer) RenderDuration(root signal.Signal, seconds float64) *buffer.Stereo {
	return r.Render(root, r.Frames(seconds))
}
