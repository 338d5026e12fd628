package signal

import "math"

// Step is one segment of a StepSequencer.
type Step struct {
	Signal   Signal
	Duration float64 // seconds
}

// StepSequencer partitions time into consecutive segments, each driven by its
// own sub-signal, and loops the whole sequence indefinitely.
//
// A segment's sub-signal sees local time: zero at the start of the segment.
type StepSequencer struct {
	steps []Step
	total float64
}

// NewStepSequencer creates a sequencer from steps. Negative or NaN durations
// are treated as zero, which makes the segment unreachable.
func NewStepSequencer(steps ...Step) *StepSequencer {
	s := &StepSequencer{steps: make([]Step, len(steps))}
	for i, st := range steps {
		if !(st.Duration > 0) {
			st.Duration = 0
		}
		st.Signal = orSilence(st.Signal)
		s.steps[i] = st
		s.total += st.Duration
	}
	return s
}

// Len returns the number of segments.
func (s *StepSequencer) Len() int { return len(s.steps) }

// TotalTime returns the loop length in seconds.
func (s *StepSequencer) TotalTime() float64 { return s.total }

// Steps returns a copy of the segment list. The sub-signals are shared with
// the sequencer; sampling them advances the sequencer's state.
func (s *StepSequencer) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Sample implements Signal. An empty sequence is silent.
func (s *StepSequencer) Sample(t float64) float64 {
	if s.total <= 0 {
		return 0
	}

	t = math.Mod(t, s.total)
	if t < 0 {
		t += s.total
	}

	start := 0.0
	for i := range s.steps {
		st := &s.steps[i]
		if t < start+st.Duration {
			return st.Signal.Sample(t - start)
		}
		start += st.Duration
	}

	// Rounding left t at or past the accumulated end.
	return 0
}

// Duplicate deep-copies every segment.
func (s *StepSequencer) Duplicate() Signal {
	steps := make([]Step, len(s.steps))
	for i, st := range s.steps {
		steps[i] = Step{Signal: st.Signal.Duplicate(), Duration: st.Duration}
	}
	return &StepSequencer{steps: steps, total: s.total}
}
