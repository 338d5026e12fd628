package melody

import (
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func TestTranspose(t *testing.T) {
	testutil.RequireNearlyEqual(t, "octave", Transpose(C4, 12), 2*C4, 1e-9)
	testutil.RequireNearlyEqual(t, "unison", Transpose(C4, 0), C4, 0)
	testutil.RequireNearlyEqual(t, "octave down", Transpose(440, -12), 220, 1e-9)
}

func TestNamedPitches(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"B3", B3, 246.94},
		{"D4", D4, 293.66},
		{"E4", E4, 329.63},
		{"F4", F4, 349.23},
		{"G4", G4, 392.00},
		{"A4", A4, 440.00},
		{"B4", B4, 493.88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireNearlyEqual(t, tt.name, tt.got, tt.want, 0.02)
		})
	}
}

func TestScoreValidate(t *testing.T) {
	if err := DemoScore().Validate(); err != nil {
		t.Fatalf("DemoScore().Validate() error = %v", err)
	}
	if err := (Score{BPM: -1}).Validate(); err == nil {
		t.Fatal("expected tempo error")
	}
	if err := (Score{BPM: 90, Notes: []Note{{Frequency: 440}}}).Validate(); err == nil {
		t.Fatal("expected duration error")
	}
}

func TestScoreDuration(t *testing.T) {
	s := Score{BPM: 60, Notes: []Note{{440, 1}, {220, 0.5}}}
	if got := s.Duration(); got != 1.5 {
		t.Fatalf("Duration() = %v, want 1.5", got)
	}
	if got := (Score{}).Duration(); got != 0 {
		t.Fatalf("Duration() = %v, want 0", got)
	}
}
