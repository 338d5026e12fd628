package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// PanLaw selects how a mono value is distributed between two channels.
type PanLaw int

const (
	// PanBalance keeps both channels at unity in the center and attenuates
	// the far channel linearly as the position moves off center.
	PanBalance PanLaw = iota
	// PanConstantPower follows a quarter sine/cosine curve, -3 dB per
	// channel in the center.
	PanConstantPower
)

// String implements fmt.Stringer.
func (l PanLaw) String() string {
	switch l {
	case PanBalance:
		return "balance"
	case PanConstantPower:
		return "constant-power"
	default:
		return fmt.Sprintf("PanLaw(%d)", int(l))
	}
}

// ParsePanLaw maps a name produced by [PanLaw.String] back to the law.
func ParsePanLaw(name string) (PanLaw, error) {
	switch name {
	case "balance":
		return PanBalance, nil
	case "constant-power":
		return PanConstantPower, nil
	default:
		return 0, fmt.Errorf("render: unknown pan law %q", name)
	}
}

// Gains returns the left and right channel gains for pan in [-1, 1]
// (-1 hard left, 1 hard right). Out-of-range positions are clamped.
func (l PanLaw) Gains(pan float64) (left, right float64) {
	pan = clampPan(pan)
	if l == PanConstantPower {
		angle := (pan + 1) * math.Pi / 4
		return math.Cos(angle), math.Sin(angle)
	}
	return math.Min(1, 1-pan), math.Min(1, 1+pan)
}

// Pan places x in the stereo field.
func Pan(x, pan float64, law PanLaw) buffer.Frame {
	l, r := law.Gains(pan)
	return buffer.Frame{L: x * l, R: x * r}
}

func clampPan(pan float64) float64 {
	if math.IsNaN(pan) {
		return 0
	}
	return core.Clamp(pan, -1, 1)
}
