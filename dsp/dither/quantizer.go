package dither

import (
	"math"
	"math/rand/v2"
)

// Quantizer maps samples in [-1, +1] to signed integers of a fixed bit
// depth, optionally adding dither noise before rounding. Out-of-range
// input is clipped to the integer range.
type Quantizer struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	rng             *rand.Rand

	// derived from bitDepth
	scale   float64
	limitLo int
	limitHi int
}

// NewQuantizer creates a Quantizer. The default configuration is 16-bit
// without dither, which makes the output a pure function of the input.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	q := &Quantizer{
		bitDepth:        cfg.bitDepth,
		ditherType:      cfg.ditherType,
		ditherAmplitude: cfg.ditherAmplitude,
		rng:             cfg.rng,
	}

	if q.rng == nil {
		q.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	full := math.Exp2(float64(q.bitDepth - 1))
	q.scale = full - 1
	q.limitLo = -int(full)
	q.limitHi = int(full) - 1

	return q, nil
}

// ProcessInteger quantizes one sample.
func (q *Quantizer) ProcessInteger(input float64) int {
	if math.IsNaN(input) {
		return 0
	}
	v := math.Round(q.scale*input + q.noise())
	if v < float64(q.limitLo) {
		return q.limitLo
	}
	if v > float64(q.limitHi) {
		return q.limitHi
	}
	return int(v)
}

// ProcessBlock quantizes src into dst. It processes min(len(dst), len(src))
// samples and returns that count.
func (q *Quantizer) ProcessBlock(dst []int, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = q.ProcessInteger(src[i])
	}
	return n
}

func (q *Quantizer) noise() float64 {
	switch q.ditherType {
	case DitherRectangular:
		return q.ditherAmplitude * (q.rng.Float64() - 0.5)
	case DitherTriangular:
		return q.ditherAmplitude * (q.rng.Float64() - q.rng.Float64())
	default:
		return 0
	}
}

// BitDepth returns the target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// DitherType returns the dither noise type.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// DitherAmplitude returns the dither noise amplitude in LSB.
func (q *Quantizer) DitherAmplitude() float64 { return q.ditherAmplitude }

// Limits returns the smallest and largest integer the quantizer emits.
func (q *Quantizer) Limits() (lo, hi int) { return q.limitLo, q.limitHi }

// Normalize maps an integer sample of the given bit depth back to
// [-1, +1). It is the inverse of quantization up to one LSB.
func Normalize(v, bitDepth int) float64 {
	if bitDepth < 1 {
		return 0
	}
	return float64(v) / math.Exp2(float64(bitDepth-1))
}
