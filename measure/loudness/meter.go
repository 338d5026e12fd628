// Package loudness implements EBU R128 / ITU-R BS.1770 loudness metering
// of rendered audio.
package loudness

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/buffer"
)

const (
	// Integration window durations in seconds.
	momentaryDuration = 0.4
	shortTermDuration = 3.0

	// Gating parameters.
	absThreshold = -70.0
	relThreshold = -10.0
	blockStep    = 0.1 // 75% overlap of 400 ms gating blocks

	// Reported instead of -Inf for silent sliding windows.
	floorLUFS = -120.0
)

// Meter measures the loudness of a multi-channel stream one frame at a time.
type Meter struct {
	sampleRate float64
	channels   int

	filters []kFilter

	mom   window
	short window

	samples          int64
	stepSamples      int
	samplesSinceStep int

	blocks []float64 // mean-square power of each gating block
}

// window is a sliding sum of squared K-weighted samples per channel.
type window struct {
	history [][]float64
	sums    []float64
	pos     int
}

func newWindow(channels, length int) window {
	w := window{
		history: make([][]float64, channels),
		sums:    make([]float64, channels),
	}
	for i := range w.history {
		w.history[i] = make([]float64, length)
	}
	return w
}

func (w *window) push(ch int, sq float64) {
	old := w.history[ch][w.pos]
	w.history[ch][w.pos] = sq
	w.sums[ch] += sq - old
	if w.sums[ch] < 0 {
		w.sums[ch] = 0
	}
}

func (w *window) advance() {
	w.pos = (w.pos + 1) % len(w.history[0])
}

// power returns the summed mean square over all channels.
func (w *window) power() float64 {
	n := float64(len(w.history[0]))
	p := 0.0
	for _, s := range w.sums {
		p += s / n
	}
	return p
}

func (w *window) reset() {
	for ch := range w.history {
		clear(w.history[ch])
		w.sums[ch] = 0
	}
	w.pos = 0
}

// NewMeter creates a loudness meter with the given options.
func NewMeter(opts ...MeterOption) *Meter {
	cfg := ApplyMeterOptions(opts...)

	m := &Meter{
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		filters:    make([]kFilter, cfg.Channels),
	}
	for i := range m.filters {
		m.filters[i] = newKFilter(m.sampleRate)
	}
	m.mom = newWindow(m.channels, max(int(math.Round(momentaryDuration*m.sampleRate)), 1))
	m.short = newWindow(m.channels, max(int(math.Round(shortTermDuration*m.sampleRate)), 1))
	m.stepSamples = max(int(math.Round(blockStep*m.sampleRate)), 1)

	return m
}

// Channels returns the number of channels per frame.
func (m *Meter) Channels() int { return m.channels }

// Reset clears filter state, sliding windows and gating blocks.
func (m *Meter) Reset() {
	for i := range m.filters {
		m.filters[i].reset()
	}
	m.mom.reset()
	m.short.reset()
	m.samples = 0
	m.samplesSinceStep = 0
	m.blocks = nil
}

// ProcessSample feeds one frame. Frames shorter than the channel count are
// ignored.
func (m *Meter) ProcessSample(frame []float64) {
	if len(frame) < m.channels {
		return
	}

	for ch := range m.channels {
		v := m.filters[ch].process(frame[ch])
		sq := v * v
		m.mom.push(ch, sq)
		m.short.push(ch, sq)
	}
	m.mom.advance()
	m.short.advance()
	m.samples++

	m.samplesSinceStep++
	if m.samplesSinceStep < m.stepSamples {
		return
	}
	m.samplesSinceStep = 0

	// Gating blocks start once the first 400 ms block is complete.
	if m.samples >= int64(len(m.mom.history[0])) {
		m.blocks = append(m.blocks, m.mom.power())
	}
}

// ProcessStereo feeds every frame of buf. A mono meter receives the mean
// of both channels.
func (m *Meter) ProcessStereo(buf *buffer.Stereo) {
	if buf == nil {
		return
	}
	frame := make([]float64, max(m.channels, 2))
	for _, f := range buf.Frames() {
		if m.channels == 1 {
			frame[0] = 0.5 * (f.L + f.R)
		} else {
			frame[0], frame[1] = f.L, f.R
		}
		m.ProcessSample(frame)
	}
}

// Momentary returns the loudness of the last 400 ms in LUFS.
func (m *Meter) Momentary() float64 {
	return toLUFS(m.mom.power())
}

// ShortTerm returns the loudness of the last 3 s in LUFS.
func (m *Meter) ShortTerm() float64 {
	return toLUFS(m.short.power())
}

// Integrated returns the gated loudness of everything processed since the
// last Reset. It is -Inf when no block passes the gates.
func (m *Meter) Integrated() float64 {
	var (
		absSum   float64
		absCount int
	)
	for _, b := range m.blocks {
		if toLUFS(b) > absThreshold {
			absSum += b
			absCount++
		}
	}
	if absCount == 0 {
		return math.Inf(-1)
	}

	gate := toLUFS(absSum/float64(absCount)) + relThreshold

	var (
		relSum   float64
		relCount int
	)
	for _, b := range m.blocks {
		if l := toLUFS(b); l > absThreshold && l > gate {
			relSum += b
			relCount++
		}
	}
	if relCount == 0 {
		return math.Inf(-1)
	}
	return toLUFS(relSum / float64(relCount))
}

// Result summarizes the loudness of a whole buffer.
type Result struct {
	Integrated float64 // LUFS, -Inf when shorter than one gating block or silent
	Momentary  float64 // LUFS over the final 400 ms
	ShortTerm  float64 // LUFS over the final 3 s
}

// Measure meters buf as a stereo programme at its own sample rate.
func Measure(buf *buffer.Stereo) Result {
	if buf == nil {
		return Result{Integrated: math.Inf(-1), Momentary: floorLUFS, ShortTerm: floorLUFS}
	}
	m := NewMeter(WithSampleRate(buf.SampleRate()), WithChannels(2))
	m.ProcessStereo(buf)
	return Result{
		Integrated: m.Integrated(),
		Momentary:  m.Momentary(),
		ShortTerm:  m.ShortTerm(),
	}
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return floorLUFS
	}
	return -0.691 + 10*math.Log10(meanSquare)
}
