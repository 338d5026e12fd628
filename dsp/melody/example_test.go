package melody_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/melody"
)

func ExampleBuilder_Build() {
	b, err := melody.NewBuilder()
	if err != nil {
		panic(err)
	}
	_, gate, err := b.Build([]melody.Note{{Frequency: 440, Beats: 1}}, 60)
	if err != nil {
		panic(err)
	}
	for _, st := range gate.Steps() {
		fmt.Printf("%.0f for %.2fs\n", st.Signal.Sample(0), st.Duration)
	}

	// Output:
	// 1 for 0.98s
	// 0 for 0.02s
}
