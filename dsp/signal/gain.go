package signal

// Gain scales its input by a fixed factor.
type Gain struct {
	in   Signal
	gain float64
}

// NewGain returns in scaled by gain.
func NewGain(in Signal, gain float64) *Gain {
	return &Gain{in: orSilence(in), gain: gain}
}

// Sample implements Signal.
func (g *Gain) Sample(t float64) float64 {
	return g.in.Sample(t) * g.gain
}

// Duplicate implements Signal.
func (g *Gain) Duplicate() Signal {
	return &Gain{in: g.in.Duplicate(), gain: g.gain}
}
