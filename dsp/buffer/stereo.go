package buffer

import vecmath "github.com/cwbudde/algo-vecmath"

// Frame is one stereo output sample.
type Frame struct {
	L, R float64
}

// Stereo is a fixed-length sequence of stereo frames at a known sample rate.
type Stereo struct {
	frames     []Frame
	sampleRate float64
}

// NewStereo returns a silent buffer of length frames.
func NewStereo(length int, sampleRate float64) *Stereo {
	if length < 0 {
		length = 0
	}
	return &Stereo{frames: make([]Frame, length), sampleRate: sampleRate}
}

// Len returns the number of frames.
func (s *Stereo) Len() int { return len(s.frames) }

// SampleRate returns the sample rate in Hz.
func (s *Stereo) SampleRate() float64 { return s.sampleRate }

// Duration returns the buffer length in seconds.
func (s *Stereo) Duration() float64 {
	if s.sampleRate <= 0 {
		return 0
	}
	return float64(len(s.frames)) / s.sampleRate
}

// Frames returns the underlying frame slice. Writes through it are visible
// in the buffer.
func (s *Stereo) Frames() []Frame { return s.frames }

// At returns frame i.
func (s *Stereo) At(i int) Frame { return s.frames[i] }

// Set stores frame i.
func (s *Stereo) Set(i int, f Frame) { s.frames[i] = f }

// Left returns a copy of the left channel.
func (s *Stereo) Left() []float64 {
	out := make([]float64, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.L
	}
	return out
}

// Right returns a copy of the right channel.
func (s *Stereo) Right() []float64 {
	out := make([]float64, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.R
	}
	return out
}

// Mono returns the average of both channels.
func (s *Stereo) Mono() []float64 {
	out := s.Left()
	if len(out) == 0 {
		return out
	}
	vecmath.AddBlockInPlace(out, s.Right())
	vecmath.ScaleBlock(out, out, 0.5)
	return out
}

// Interleaved returns the samples as L, R, L, R, ...
func (s *Stereo) Interleaved() []float64 {
	out := make([]float64, 2*len(s.frames))
	for i, f := range s.frames {
		out[2*i] = f.L
		out[2*i+1] = f.R
	}
	return out
}
