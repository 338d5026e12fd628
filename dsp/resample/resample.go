package resample

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRatio indicates an invalid up/down ratio.
	ErrInvalidRatio = errors.New("resample: invalid ratio")
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// Quality controls the anti-aliasing filter.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation.
	QualityBest
)

type profile struct {
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
}

func (q Quality) profile() profile {
	switch q {
	case QualityFast:
		return profile{tapsPerPhase: 16, cutoffScale: 0.88, kaiserBeta: 5.0}
	case QualityBest:
		return profile{tapsPerPhase: 64, cutoffScale: 0.96, kaiserBeta: 9.0}
	default:
		return profile{tapsPerPhase: 32, cutoffScale: 0.92, kaiserBeta: 7.5}
	}
}

type config struct {
	quality Quality
	maxDen  int
}

// Option configures a Resampler.
type Option func(*config)

// WithQuality selects the anti-aliasing quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithMaxDenominator caps the denominator when approximating a rate ratio.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

// Resampler performs streaming rational sample-rate conversion.
type Resampler struct {
	up, down int
	quality  Quality

	phases     [][]float64
	maxPhaseLn int

	phase      int
	inputIndex int
	totalIn    int
	history    []float64
}

// New creates a resampler converting inRate to outRate. The ratio
// outRate/inRate is approximated by a fraction whose denominator is capped
// by [WithMaxDenominator] (default 4096).
func New(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if !(inRate > 0) || !(outRate > 0) || math.IsInf(inRate, 0) || math.IsInf(outRate, 0) {
		return nil, ErrInvalidRate
	}

	cfg := config{quality: QualityBalanced, maxDen: 4096}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	up, down := approximateRatio(outRate/inRate, cfg.maxDen)
	return newRational(up, down, cfg)
}

func newRational(up, down int, cfg config) (*Resampler, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}
	g := gcd(up, down)
	up /= g
	down /= g

	phases, err := designPolyphase(up, down, cfg.quality.profile())
	if err != nil {
		return nil, err
	}

	maxLn := 0
	for _, p := range phases {
		maxLn = max(maxLn, len(p))
	}

	return &Resampler{
		up:         up,
		down:       down,
		quality:    cfg.quality,
		phases:     phases,
		maxPhaseLn: maxLn,
		history:    make([]float64, 0, max(0, maxLn-1)),
	}, nil
}

// Convert resamples a whole clip in one call. Equal rates return a copy.
func Convert(input []float64, inRate, outRate float64, opts ...Option) ([]float64, error) {
	if inRate == outRate && inRate > 0 {
		return append([]float64(nil), input...), nil
	}
	r, err := New(inRate, outRate, opts...)
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// Ratio returns the reduced up/down conversion factors.
func (r *Resampler) Ratio() (up, down int) { return r.up, r.down }

// Quality returns the quality mode.
func (r *Resampler) Quality() Quality { return r.quality }

// Reset clears the filter history.
func (r *Resampler) Reset() {
	r.phase = 0
	r.inputIndex = 0
	r.totalIn = 0
	r.history = r.history[:0]
}

// Process converts the next block of input. Filter history carries over
// between calls, so a clip split into blocks converts the same as in one
// piece.
func (r *Resampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}

	work := make([]float64, len(r.history)+len(input))
	copy(work, r.history)
	copy(work[len(r.history):], input)

	base := r.totalIn - len(r.history)
	last := r.totalIn + len(input) - 1

	var out []float64
	for r.inputIndex <= last {
		var y float64
		for k, c := range r.phases[r.phase] {
			idx := r.inputIndex - k
			if idx < base || idx > last {
				continue
			}
			y += c * work[idx-base]
		}
		out = append(out, y)

		r.phase += r.down
		r.inputIndex += r.phase / r.up
		r.phase %= r.up
	}

	r.totalIn += len(input)
	keep := min(max(0, r.maxPhaseLn-1), len(work))
	r.history = append(r.history[:0], work[len(work)-keep:]...)

	return out
}
