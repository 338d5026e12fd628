package melody

import (
	"fmt"
	"math"
)

// HalfStep is the frequency ratio of one equal-tempered semitone.
var HalfStep = math.Pow(2, 1.0/12)

// Transpose returns base moved by steps semitones.
func Transpose(base, steps float64) float64 {
	return base * math.Pow(HalfStep, steps)
}

// C4 is middle C in Hz.
const C4 = 261.63

// Named pitches around middle C.
var (
	B3 = Transpose(C4, -1)
	D4 = Transpose(C4, 2)
	E4 = Transpose(C4, 4)
	F4 = Transpose(C4, 5)
	G4 = Transpose(C4, 7)
	A4 = Transpose(C4, 9)
	B4 = Transpose(C4, 11)
)

// Note is a pitch held for a number of beats.
type Note struct {
	Frequency float64 `json:"frequency"` // Hz
	Beats     float64 `json:"beats"`
}

// Score is a melody with its tempo.
type Score struct {
	BPM   float64 `json:"bpm"`
	Notes []Note  `json:"notes"`
}

// DemoScore returns a short seven-note phrase at 120 BPM.
func DemoScore() Score {
	return Score{
		BPM: 120,
		Notes: []Note{
			{E4, 1.5},
			{E4, 0.5},
			{G4, 0.5 * 1.5},
			{E4, 0.5 * 1.5},
			{D4, 0.5},
			{C4, 2.0},
			{B3, 2.0},
		},
	}
}

// Validate checks the tempo and every note.
func (s Score) Validate() error {
	if err := validateTempo(s.BPM); err != nil {
		return err
	}
	return validateNotes(s.Notes)
}

// Duration returns the length of one pass through the score in seconds.
// It returns 0 for an invalid tempo.
func (s Score) Duration() float64 {
	if validateTempo(s.BPM) != nil {
		return 0
	}
	beats := 0.0
	for _, n := range s.Notes {
		beats += n.Beats
	}
	return beats * 60 / s.BPM
}

func validateTempo(bpm float64) error {
	if !(bpm > 0) || math.IsInf(bpm, 0) {
		return fmt.Errorf("melody: tempo must be > 0 and finite: %f", bpm)
	}
	return nil
}

func validateNotes(notes []Note) error {
	for i, n := range notes {
		if !(n.Frequency > 0) || math.IsInf(n.Frequency, 0) {
			return fmt.Errorf("melody: note %d frequency must be > 0 and finite: %f", i, n.Frequency)
		}
		if !(n.Beats > 0) || math.IsInf(n.Beats, 0) {
			return fmt.Errorf("melody: note %d duration must be > 0 and finite: %f", i, n.Beats)
		}
	}
	return nil
}
