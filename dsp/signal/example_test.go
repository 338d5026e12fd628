package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/signal"
)

func ExampleStepSequencer() {
	seq := signal.NewStepSequencer(
		signal.Step{Signal: signal.NewConstant(0.25), Duration: 1},
		signal.Step{Signal: signal.NewConstant(0.75), Duration: 2},
	)

	for _, t := range []float64{0.5, 1.5, 3.5} {
		fmt.Printf("t=%.1f %.2f\n", t, seq.Sample(t))
	}

	// Output:
	// t=0.5 0.25
	// t=1.5 0.75
	// t=3.5 0.25
}

func ExampleOscillator() {
	// Half the sample rate: the phase advances by π per sample.
	osc := signal.NewOscillator(signal.NewConstant(500), core.WithSampleRate(1000))
	for i := 0; i < 4; i++ {
		fmt.Printf("%.0f\n", osc.Sample(float64(i)/1000))
	}

	// Output:
	// 1
	// -1
	// 1
	// -1
}

func ExampleMix() {
	voice := signal.NewGain(signal.NewConstant(1), 0.5)
	m := signal.Mix(voice, voice.Duplicate(), signal.NewConstant(0.25))
	fmt.Println(m.Sample(0))

	// Output:
	// 1.25
}
