package loudness

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

// A full-scale 1 kHz tone reads about -3 LUFS per channel after K-weighting.
const toneLUFS = -3.0

func stereoTone(freq, sampleRate, amp, seconds float64) *buffer.Stereo {
	n := int(seconds * sampleRate)
	x := testutil.DeterministicCosine(freq, sampleRate, amp, n)
	buf := buffer.NewStereo(n, sampleRate)
	for i, v := range x {
		buf.Set(i, buffer.Frame{L: v, R: v})
	}
	return buf
}

func TestMonoTone(t *testing.T) {
	const sampleRate = 48000.0
	m := NewMeter(WithSampleRate(sampleRate), WithChannels(1))
	for _, v := range testutil.DeterministicCosine(1000, sampleRate, 1, int(4*sampleRate)) {
		m.ProcessSample([]float64{v})
	}

	testutil.RequireNearlyEqual(t, "momentary", m.Momentary(), toneLUFS, 0.2)
	testutil.RequireNearlyEqual(t, "short-term", m.ShortTerm(), toneLUFS, 0.2)
	testutil.RequireNearlyEqual(t, "integrated", m.Integrated(), toneLUFS, 0.2)
}

func TestStereoSumsChannelPower(t *testing.T) {
	buf := stereoTone(1000, 48000, 1, 4)

	mono := NewMeter(WithSampleRate(48000), WithChannels(1))
	mono.ProcessStereo(buf)
	stereo := Measure(buf)

	want := mono.Integrated() + 10*math.Log10(2)
	testutil.RequireNearlyEqual(t, "stereo integrated", stereo.Integrated, want, 1e-6)
}

func TestGatingIgnoresSilence(t *testing.T) {
	tone := stereoTone(1000, 48000, 0.5, 3)
	withGap := buffer.NewStereo(2*tone.Len(), 48000)
	for i, f := range tone.Frames() {
		withGap.Set(i, f)
	}

	got := Measure(withGap).Integrated
	want := Measure(tone).Integrated
	testutil.RequireNearlyEqual(t, "integrated", got, want, 0.5)
}

func TestSilenceAndShortInput(t *testing.T) {
	silent := Measure(buffer.NewStereo(48000, 48000))
	if !math.IsInf(silent.Integrated, -1) {
		t.Fatalf("silent Integrated = %v, want -Inf", silent.Integrated)
	}
	if silent.Momentary != floorLUFS || silent.ShortTerm != floorLUFS {
		t.Fatalf("silent windows = %v/%v, want %v", silent.Momentary, silent.ShortTerm, floorLUFS)
	}

	short := Measure(stereoTone(1000, 48000, 1, 0.2))
	if !math.IsInf(short.Integrated, -1) {
		t.Fatalf("short Integrated = %v, want -Inf", short.Integrated)
	}

	if r := Measure(nil); !math.IsInf(r.Integrated, -1) {
		t.Fatalf("Measure(nil).Integrated = %v, want -Inf", r.Integrated)
	}
}

func TestReset(t *testing.T) {
	m := NewMeter(WithSampleRate(8000))
	m.ProcessStereo(stereoTone(440, 8000, 1, 1))
	if math.IsInf(m.Integrated(), -1) {
		t.Fatal("expected a finite reading before Reset")
	}
	m.Reset()
	if !math.IsInf(m.Integrated(), -1) || m.Momentary() != floorLUFS {
		t.Fatalf("after Reset: integrated %v momentary %v", m.Integrated(), m.Momentary())
	}
}

func TestProcessSampleShortFrame(t *testing.T) {
	m := NewMeter(WithChannels(2))
	m.ProcessSample([]float64{1})
	if m.samples != 0 {
		t.Fatalf("samples = %d, want 0", m.samples)
	}
}

func TestMeterOptions(t *testing.T) {
	cfg := ApplyMeterOptions(WithSampleRate(-1), WithChannels(0), nil)
	if cfg.SampleRate != 44100 || cfg.Channels != 2 {
		t.Fatalf("invalid options changed config: %+v", cfg)
	}
	cfg = ApplyMeterOptions(WithSampleRate(96000), WithChannels(1))
	if cfg.SampleRate != 96000 || cfg.Channels != 1 {
		t.Fatalf("config = %+v", cfg)
	}
	if NewMeter(WithChannels(1)).Channels() != 1 {
		t.Fatal("Channels() mismatch")
	}
}

func TestKWeightingPassThroughOnBadFrequency(t *testing.T) {
	s := highpass(30000, 1/math.Sqrt2, 48000)
	if got := s.process(0.7); got != 0.7 {
		t.Fatalf("pass-through = %v, want 0.7", got)
	}
}

func BenchmarkMeasure(b *testing.B) {
	buf := stereoTone(1000, 48000, 0.5, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Measure(buf)
	}
}
