//go:build headless

package playback

import (
	"context"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Player is unavailable in headless builds.
type Player struct{}

// New always fails with ErrUnavailable.
func New(int, ...core.ProcessorOption) (*Player, error) {
	return nil, ErrUnavailable
}

// Play always fails with ErrUnavailable.
func (*Player) Play(context.Context, *buffer.Stereo) error { return ErrUnavailable }

// Close is a no-op.
func (*Player) Close() error { return nil }
