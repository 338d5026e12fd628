package testutil

import (
	"math"
	"math/rand"
)

// Sampler is the part of a signal node a test needs to drive it.
type Sampler interface {
	Sample(t float64) float64
}

// Collect samples s once per frame for n frames at sampleRate, starting at
// t = 0, the same way the render loop does.
func Collect(s Sampler, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	period := 1 / sampleRate
	for i := range out {
		out[i] = s.Sample(float64(i) * period)
	}
	return out
}

// CollectAt samples s once at each of times, in order.
func CollectAt(s Sampler, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = s.Sample(t)
	}
	return out
}

// DeterministicCosine generates amplitude·cos(2π·f·n/sampleRate), the
// reference output of a fixed-frequency oscillator.
func DeterministicCosine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns length samples rising linearly from 1/length to 1. Handy as
// a recording whose every sample is distinct.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i+1) / float64(length)
	}
	return out
}
