package render

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/internal/testutil"
	timestats "github.com/cwbudde/algo-synth/stats/time"
)

func TestRenderSineEndToEnd(t *testing.T) {
	root := signal.NewGain(signal.NewOscillator(signal.NewConstant(440)), 0.5)
	buf := New(WithVolume(1)).Render(root, 44100)

	if buf.Len() != 44100 {
		t.Fatalf("Len() = %d, want 44100", buf.Len())
	}
	if f := buf.At(0); f.L != 0.5 || f.R != 0.5 {
		t.Fatalf("frame 0 = %+v, want {0.5 0.5}", f)
	}
	// 440 Hz over one second is a whole number of cycles.
	testutil.RequireNearlyEqual(t, "RMS", timestats.RMS(buf.Left()), 0.5/math.Sqrt2, 1e-6)
	testutil.RequireSliceNearlyEqual(t, buf.Left(), buf.Right(), 0)
}

func TestRenderMatchesReferenceCosine(t *testing.T) {
	root := signal.NewOscillator(signal.NewConstant(1000), core.WithSampleRate(8000))
	r := New(WithVolume(0.25), WithProcessorOptions(core.WithSampleRate(8000)))
	buf := r.Render(root, 64)
	testutil.RequireSliceNearlyEqual(t, buf.Left(), testutil.DeterministicCosine(1000, 8000, 0.25, 64), 1e-12)
	if buf.SampleRate() != 8000 {
		t.Fatalf("SampleRate() = %v, want 8000", buf.SampleRate())
	}
}

func TestRenderSamplesRootOncePerFrame(t *testing.T) {
	var times []float64
	root := &probe{fn: func(t float64) float64 {
		times = append(times, t)
		return 1
	}}
	New(WithProcessorOptions(core.WithSampleRate(4))).Render(root, 4)
	testutil.RequireSliceNearlyEqual(t, times, []float64{0, 0.25, 0.5, 0.75}, 1e-15)
}

func TestRenderDefaults(t *testing.T) {
	r := New()
	if r.Volume() != DefaultVolume || r.Pan() != 0 || r.PanLaw() != PanBalance || r.SampleRate() != 44100 {
		t.Fatalf("defaults = %v/%v/%v/%v", r.Volume(), r.Pan(), r.PanLaw(), r.SampleRate())
	}
	buf := r.Render(signal.NewConstant(1), 3)
	for i, f := range buf.Frames() {
		if f.L != DefaultVolume || f.R != DefaultVolume {
			t.Fatalf("frame %d = %+v, want %v on both channels", i, f, DefaultVolume)
		}
	}
}

func TestRenderNilRootIsSilent(t *testing.T) {
	buf := New().Render(nil, 10)
	if buf.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", buf.Len())
	}
	for i, f := range buf.Frames() {
		if f.L != 0 || f.R != 0 {
			t.Fatalf("frame %d = %+v, want silence", i, f)
		}
	}
}

func TestRenderNegativeFrames(t *testing.T) {
	if n := New().Render(signal.NewConstant(1), -5).Len(); n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
}

func TestRenderDuration(t *testing.T) {
	r := New(WithProcessorOptions(core.WithSampleRate(1000)))
	tests := []struct {
		seconds float64
		want    int
	}{
		{1, 1000},
		{0.0015, 2},
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := r.RenderDuration(signal.NewConstant(0), tt.seconds).Len(); got != tt.want {
			t.Errorf("RenderDuration(%v) frames = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	r := New(WithVolume(-1), WithVolume(math.Inf(1)), WithPanLaw(PanLaw(9)), nil)
	if r.Volume() != DefaultVolume {
		t.Fatalf("Volume() = %v, want %v", r.Volume(), DefaultVolume)
	}
	if r.PanLaw() != PanBalance {
		t.Fatalf("PanLaw() = %v, want balance", r.PanLaw())
	}
	if got := New(WithPan(3)).Pan(); got != 1 {
		t.Fatalf("Pan() = %v, want clamped 1", got)
	}
}

func TestWithVolumeDB(t *testing.T) {
	r := New(WithVolumeDB(-6))
	testutil.RequireNearlyEqual(t, "volume", r.Volume(), math.Pow(10, -6.0/20), 1e-12)
}

func TestRenderPanned(t *testing.T) {
	r := New(WithVolume(1), WithPan(-1))
	f := r.Render(signal.NewConstant(0.5), 1).At(0)
	if f.L != 0.5 || f.R != 0 {
		t.Fatalf("frame = %+v, want {0.5 0}", f)
	}
}

type probe struct {
	fn func(float64) float64
}

func (p *probe) Sample(t float64) float64 { return p.fn(t) }

func (p *probe) Duplicate() signal.Signal { return p }

func BenchmarkRender(b *testing.B) {
	r := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		root := signal.NewOscillator(signal.NewConstant(440))
		r.Render(root, 4096)
	}
}
