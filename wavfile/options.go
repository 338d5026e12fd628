package wavfile

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-synth/dsp/dither"
)

type config struct {
	quantizer []dither.Option
	logger    *slog.Logger
	blockSize int
}

func defaultConfig() config {
	return config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		blockSize: 4096,
	}
}

// Option configures reading or writing.
type Option func(*config) error

// WithBitDepth sets the PCM bit depth of written files: 16 (default), 24
// or 32.
func WithBitDepth(bits int) Option {
	return func(cfg *config) error {
		switch bits {
		case 16, 24, 32:
		default:
			return fmt.Errorf("wavfile: bit depth must be 16, 24 or 32: %d", bits)
		}
		cfg.quantizer = append(cfg.quantizer, dither.WithBitDepth(bits))
		return nil
	}
}

// WithDither selects the dither applied before quantization. The default is
// [dither.DitherNone].
func WithDither(dt dither.DitherType) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("wavfile: invalid dither type: %d", dt)
		}
		cfg.quantizer = append(cfg.quantizer, dither.WithDitherType(dt))
		return nil
	}
}

// WithQuantizerOptions passes options straight to the [dither.Quantizer].
func WithQuantizerOptions(opts ...dither.Option) Option {
	return func(cfg *config) error {
		cfg.quantizer = append(cfg.quantizer, opts...)
		return nil
	}
}

// WithLogger sets the logger for debug diagnostics. A nil logger keeps the
// default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger != nil {
			cfg.logger = logger
		}
		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
