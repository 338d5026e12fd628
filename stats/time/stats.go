// Package time measures the level of a rendered channel.
package time

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Stats holds level statistics of one channel.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	Peak_dB        float64
	PeakPos        int
	CrestFactor    float64 // peak / RMS
	CrestFactor_dB float64
	ZeroCrossings  int
	Clipped        int // samples with |x| > 1
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return emptyStats()
	}

	var (
		sum, sumSq float64
		peak       float64
		peakPos    int
		crossings  int
		clipped    int
	)
	for i, x := range signal {
		sum += x
		sumSq += x * x

		a := math.Abs(x)
		if a > peak {
			peak = a
			peakPos = i
		}
		if a > 1 {
			clipped++
		}
		if i > 0 && signal[i-1]*x < 0 {
			crossings++
		}
	}

	n := float64(len(signal))
	rms := math.Sqrt(sumSq / n)

	s := Stats{
		Length:         len(signal),
		DC:             sum / n,
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Peak:           peak,
		Peak_dB:        core.LinearToDB(peak),
		PeakPos:        peakPos,
		CrestFactor_dB: math.Inf(-1),
		ZeroCrossings:  crossings,
		Clipped:        clipped,
	}
	if rms > 0 {
		s.CrestFactor = peak / rms
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	}
	return s
}

// Stereo returns the statistics of both channels of buf.
func Stereo(buf *buffer.Stereo) (left, right Stats) {
	return Calculate(buf.Left()), Calculate(buf.Right())
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}
	return peak
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(signal []float64) int {
	var count int
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}
