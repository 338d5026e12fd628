package signal

// Mixer sums two signals.
type Mixer struct {
	a, b Signal
}

// NewMixer returns a + b.
func NewMixer(a, b Signal) *Mixer {
	return &Mixer{a: orSilence(a), b: orSilence(b)}
}

// Sample implements Signal. Both inputs are sampled exactly once.
func (m *Mixer) Sample(t float64) float64 {
	return m.a.Sample(t) + m.b.Sample(t)
}

// Duplicate implements Signal.
func (m *Mixer) Duplicate() Signal {
	return &Mixer{a: m.a.Duplicate(), b: m.b.Duplicate()}
}

// Mix folds signals into a chain of Mixers, starting from a zero constant.
// With no arguments the result is silence.
func Mix(signals ...Signal) Signal {
	var acc Signal = Constant{}
	for _, s := range signals {
		acc = NewMixer(acc, s)
	}
	return acc
}
