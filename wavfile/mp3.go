package wavfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"

	"github.com/cwbudde/algo-synth/dsp/dither"
)

// mp3FrameBytes is one decoded frame: two signed 16-bit little-endian samples.
const mp3FrameBytes = 4

// ReadMonoMP3 decodes an MP3 stream and averages its two channels into a
// mono clip.
func ReadMonoMP3(r io.Reader, opts ...Option) (*Clip, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	cfg.logger.Debug("decoding mp3 stream",
		"sampleRate", decoder.SampleRate(),
		"bytes", decoder.Length(),
	)

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("wavfile: decode mp3: %w", err)
	}

	clip := &Clip{
		Samples:    monoFromStereo16(data),
		SampleRate: decoder.SampleRate(),
	}

	cfg.logger.Debug("decoded mp3 stream", "nframes", len(clip.Samples), "seconds", clip.Duration())
	return clip, nil
}

// monoFromStereo16 averages interleaved signed 16-bit little-endian stereo
// frames. A trailing partial frame is dropped.
func monoFromStereo16(data []byte) []float64 {
	out := make([]float64, len(data)/mp3FrameBytes)
	for i := range out {
		frame := data[i*mp3FrameBytes:]
		l := int16(binary.LittleEndian.Uint16(frame[0:]))
		r := int16(binary.LittleEndian.Uint16(frame[2:]))
		out[i] = 0.5 * (dither.Normalize(int(l), 16) + dither.Normalize(int(r), 16))
	}
	return out
}

// LoadClip decodes a sample file chosen by extension: ".mp3" goes through
// [ReadMonoMP3], everything else through [ReadMono].
func LoadClip(path string, opts ...Option) (*Clip, error) {
	if !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return ReadMonoFile(path, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: open %s: %w", path, err)
	}
	defer f.Close()

	clip, err := ReadMonoMP3(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("wavfile: read %s: %w", path, err)
	}
	return clip, nil
}
