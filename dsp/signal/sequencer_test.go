package signal

import (
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func TestStepSequencerLocalTime(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	seq := NewStepSequencer(
		Step{Signal: a, Duration: 1.0},
		Step{Signal: b, Duration: 2.0},
	)

	got := seq.Sample(1.5)
	testutil.RequireNearlyEqual(t, "Sample(1.5)", got, 0.5, 1e-12)
	if len(a.times) != 0 {
		t.Fatalf("first segment sampled %d times, want 0", len(a.times))
	}
	if len(b.times) != 1 {
		t.Fatalf("second segment sampled %d times, want 1", len(b.times))
	}
}

func TestStepSequencerSelectsSegment(t *testing.T) {
	seq := NewStepSequencer(
		Step{Signal: NewConstant(1), Duration: 0.25},
		Step{Signal: NewConstant(2), Duration: 0.25},
		Step{Signal: NewConstant(3), Duration: 0.5},
	)
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{0.24, 1},
		{0.25, 2},
		{0.6, 3},
		{0.99, 3},
		{1.0, 1},
		{1.3, 2},
	}
	for _, tt := range tests {
		if got := seq.Sample(tt.t); got != tt.want {
			t.Fatalf("Sample(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if seq.TotalTime() != 1 {
		t.Fatalf("TotalTime() = %v, want 1", seq.TotalTime())
	}
	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}
}

func TestStepSequencerLooping(t *testing.T) {
	proto := NewStepSequencer(
		Step{Signal: &recorder{}, Duration: 1.0},
		Step{Signal: &recorder{}, Duration: 2.0},
	)
	total := proto.TotalTime()

	for _, tm := range []float64{0.2, 1.5, 2.75} {
		want := proto.Duplicate().Sample(tm)
		for k := 1; k <= 4; k++ {
			got := proto.Duplicate().Sample(tm + float64(k)*total)
			testutil.RequireNearlyEqual(t, "looped sample", got, want, 1e-9)
		}
	}
}

func TestStepSequencerEmptyIsSilent(t *testing.T) {
	seq := NewStepSequencer()
	for _, tm := range []float64{0, 0.5, 12} {
		if got := seq.Sample(tm); got != 0 {
			t.Fatalf("Sample(%v) = %v, want 0", tm, got)
		}
	}
}

func TestStepSequencerNegativeDurationSkipped(t *testing.T) {
	seq := NewStepSequencer(
		Step{Signal: NewConstant(9), Duration: -1},
		Step{Signal: NewConstant(4), Duration: 1},
	)
	if seq.TotalTime() != 1 {
		t.Fatalf("TotalTime() = %v, want 1", seq.TotalTime())
	}
	if got := seq.Sample(0.5); got != 4 {
		t.Fatalf("Sample(0.5) = %v, want 4", got)
	}
}

func TestStepSequencerOnlySelectedSegmentAdvances(t *testing.T) {
	first := NewOscillator(NewConstant(1000))
	second := NewOscillator(NewConstant(1000))
	seq := NewStepSequencer(
		Step{Signal: first, Duration: 1},
		Step{Signal: second, Duration: 1},
	)
	for i := 0; i < 10; i++ {
		seq.Sample(float64(i) / testSampleRate)
	}
	if first.Phase() == 0 {
		t.Fatal("selected segment did not advance")
	}
	if second.Phase() != 0 {
		t.Fatalf("unselected segment phase = %v, want 0", second.Phase())
	}
}

func TestStepSequencerDuplicateIsDeep(t *testing.T) {
	osc := NewOscillator(NewConstant(1000))
	seq := NewStepSequencer(Step{Signal: osc, Duration: 1})
	dup := seq.Duplicate().(*StepSequencer)

	dup.Sample(0)
	dup.Sample(1.0 / testSampleRate)
	if osc.Phase() != 0 {
		t.Fatalf("original oscillator advanced through duplicate: phase %v", osc.Phase())
	}
	if dup.TotalTime() != seq.TotalTime() {
		t.Fatalf("TotalTime() = %v, want %v", dup.TotalTime(), seq.TotalTime())
	}
}
