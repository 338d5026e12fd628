package signal

import "math"

// PeriodicGate is a pulse train: 1 while (t mod period) < duration, else 0.
// It is a pure function of the absolute time.
type PeriodicGate struct {
	period   float64
	duration float64
}

// NewPeriodicGate returns a gate that opens every period seconds and stays
// open for duration seconds.
func NewPeriodicGate(period, duration float64) PeriodicGate {
	return PeriodicGate{period: period, duration: duration}
}

// Sample implements Signal. A non-positive period yields a closed gate.
func (g PeriodicGate) Sample(t float64) float64 {
	if !(g.period > 0) {
		return 0
	}
	if math.Mod(t, g.period) < g.duration {
		return 1
	}
	return 0
}

// Duplicate implements Signal.
func (g PeriodicGate) Duplicate() Signal { return g }
