package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/resample"
)

func ExampleNew() {
	r, _ := resample.New(44100, 48000, resample.WithQuality(resample.QualityBest))
	up, down := r.Ratio()
	fmt.Printf("ratio=%d/%d\n", up, down)
	// Output:
	// ratio=160/147
}
