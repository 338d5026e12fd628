package playback

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/cwbudde/algo-synth/dsp/buffer"
)

const (
	channelCount   = 2
	bytesPerSample = 4
	bytesPerFrame  = channelCount * bytesPerSample
)

// stream serves a stereo buffer as interleaved little-endian float32.
type stream struct {
	frames []buffer.Frame
	pos    int // next frame
	tail   [bytesPerFrame]byte
	tailN  int // pending bytes of a split frame
	tailAt int
}

func newStream(buf *buffer.Stereo) *stream {
	return &stream{frames: buf.Frames()}
}

// Read implements io.Reader. A frame split across two reads is carried over.
func (s *stream) Read(p []byte) (int, error) {
	n := 0
	if s.tailN > 0 {
		c := copy(p, s.tail[s.tailAt:s.tailAt+s.tailN])
		s.tailAt += c
		s.tailN -= c
		n += c
	}

	for n < len(p) && s.pos < len(s.frames) {
		f := s.frames[s.pos]
		s.pos++

		var frame [bytesPerFrame]byte
		binary.LittleEndian.PutUint32(frame[0:], math.Float32bits(float32(f.L)))
		binary.LittleEndian.PutUint32(frame[4:], math.Float32bits(float32(f.R)))

		c := copy(p[n:], frame[:])
		n += c
		if c < bytesPerFrame {
			s.tail = frame
			s.tailAt = c
			s.tailN = bytesPerFrame - c
		}
	}

	if n == 0 && s.pos >= len(s.frames) {
		return 0, io.EOF
	}
	return n, nil
}

// Played returns the number of frames handed out so far.
func (s *stream) Played() int { return s.pos }
