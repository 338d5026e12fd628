package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-synth/dsp/dither"
)

var (
	// ErrInvalidFile is returned for streams that are not RIFF/WAVE.
	ErrInvalidFile = errors.New("wavfile: invalid WAV file")
	// ErrUnsupportedFormat is returned for encodings the decoder cannot
	// normalize, such as 8-bit unsigned PCM.
	ErrUnsupportedFormat = errors.New("wavfile: unsupported WAV format")
)

// WAVE format tags of the fmt chunk.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// Clip is a decoded mono recording.
type Clip struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// ReadMono decodes a 16/24/32-bit integer PCM or 32-bit IEEE float WAV
// stream. Integer samples are normalized by the bit depth and all channels
// are averaged into one.
func ReadMono(r io.ReadSeeker, opts ...Option) (*Clip, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidFile
	}
	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wavfile: seek to PCM data: %w", err)
	}

	format := decoder.Format()
	bitDepth := int(decoder.SampleBitDepth())
	normalize := func(v int) float64 { return dither.Normalize(v, bitDepth) }
	switch decoder.WavAudioFormat {
	case formatPCM, formatExtensible:
		switch bitDepth {
		case 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
		}
	case formatIEEEFloat:
		if bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float samples", ErrUnsupportedFormat, bitDepth)
		}
		// The decoder hands back the raw little-endian bits as int32.
		normalize = func(v int) float64 { return float64(math.Float32frombits(uint32(v))) }
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, decoder.WavAudioFormat)
	}
	nchannels := format.NumChannels
	if nchannels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, nchannels)
	}

	bytesPerSample := bitDepth / 8
	nsamples := int(decoder.PCMLen()) / bytesPerSample
	cfg.logger.Debug("decoding wav stream",
		"sampleRate", format.SampleRate,
		"nchannels", nchannels,
		"bitDepth", bitDepth,
		"formatTag", decoder.WavAudioFormat,
		"nsamples", nsamples,
	)

	buf := &audio.IntBuffer{
		Format:         format,
		Data:           make([]int, nsamples),
		SourceBitDepth: bitDepth,
	}
	n, err := decoder.PCMBuffer(buf)
	if err != nil {
		return nil, fmt.Errorf("wavfile: decode PCM: %w", err)
	}
	data := buf.Data[:n]

	nframes := len(data) / nchannels
	clip := &Clip{
		Samples:    make([]float64, nframes),
		SampleRate: format.SampleRate,
	}
	for i := range clip.Samples {
		sum := 0.0
		for _, v := range data[i*nchannels : (i+1)*nchannels] {
			sum += normalize(v)
		}
		clip.Samples[i] = sum / float64(nchannels)
	}

	cfg.logger.Debug("decoded wav stream", "nframes", nframes, "seconds", clip.Duration())
	return clip, nil
}

// ReadMonoFile opens path and decodes it with [ReadMono].
func ReadMonoFile(path string, opts ...Option) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: open %s: %w", path, err)
	}
	defer f.Close()

	clip, err := ReadMono(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("wavfile: read %s: %w", path, err)
	}
	return clip, nil
}
