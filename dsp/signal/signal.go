package signal

// Signal is a stateful generator of a time-indexed amplitude sequence.
type Signal interface {
	// Sample returns the amplitude at time t in seconds and advances the
	// node's state by one step.
	Sample(t float64) float64

	// Duplicate returns an independent deep copy, including current state.
	Duplicate() Signal
}

// orSilence substitutes a zero constant for a nil child so that a malformed
// graph renders silence instead of panicking.
func orSilence(s Signal) Signal {
	if s == nil {
		return Constant{}
	}
	return s
}
