package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/dither"
)

const wavFormatPCM = 1

// Write encodes buf as a two-channel integer PCM WAV stream.
func Write(w io.WriteSeeker, buf *buffer.Stereo, opts ...Option) error {
	if buf == nil {
		return errors.New("wavfile: nil buffer")
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return err
	}
	quant, err := dither.NewQuantizer(cfg.quantizer...)
	if err != nil {
		return err
	}

	sampleRate := int(buf.SampleRate())
	if sampleRate <= 0 {
		return fmt.Errorf("wavfile: sample rate must be > 0: %v", buf.SampleRate())
	}
	bitDepth := quant.BitDepth()

	cfg.logger.Debug("encoding wav stream",
		"sampleRate", sampleRate,
		"bitDepth", bitDepth,
		"dither", quant.DitherType().String(),
		"nframes", buf.Len(),
	)

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 2, wavFormatPCM)
	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	samples := make([]float64, 0, 2*cfg.blockSize)
	ints := make([]int, 2*cfg.blockSize)
	frames := buf.Frames()
	if len(frames) == 0 {
		// An empty write still emits the RIFF header.
		intBuf.Data = ints[:0]
		if err := enc.Write(intBuf); err != nil {
			return fmt.Errorf("wavfile: write: %w", err)
		}
	}
	for start := 0; start < len(frames); start += cfg.blockSize {
		end := min(start+cfg.blockSize, len(frames))
		samples = samples[:0]
		for _, f := range frames[start:end] {
			samples = append(samples, f.L, f.R)
		}
		n := quant.ProcessBlock(ints, samples)
		intBuf.Data = ints[:n]
		if err := enc.Write(intBuf); err != nil {
			return fmt.Errorf("wavfile: write: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: finalize: %w", err)
	}
	return nil
}

// WriteFile creates path and writes buf to it.
func WriteFile(path string, buf *buffer.Stereo, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wavfile: close %s: %w", path, cerr)
		}
	}()

	return Write(f, buf, opts...)
}
