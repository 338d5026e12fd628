package melody

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

// PianoHarmonics holds the relative volumes of the first ten harmonics of a
// piano sample. Used as an additive stack it sounds like an electric piano.
var PianoHarmonics = [10]float64{
	0.700, 0.243, 0.229, 0.095, 0.139, 0.087, 0.288, 0.199, 0.124, 0.090,
}

// Voice builds an additive tone: the sum over i of
// harmonics[i] · cos(2π · base·(i+1) · t).
func Voice(base float64, harmonics []float64, opts ...core.ProcessorOption) signal.Signal {
	partials := make([]signal.Signal, len(harmonics))
	for i, vol := range harmonics {
		freq := signal.NewConstant(base * float64(i+1))
		partials[i] = signal.NewGain(signal.NewOscillator(freq, opts...), vol)
	}
	return signal.Mix(partials...)
}
