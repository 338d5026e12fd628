//go:build !headless

package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
)

const pollInterval = 10 * time.Millisecond

// Player writes stereo buffers to the system audio device.
type Player struct {
	ctx        *oto.Context
	sampleRate int
}

// New opens the audio device at sampleRate. The block size of opts sets the
// device buffer length.
func New(sampleRate int, opts ...core.ProcessorOption) (*Player, error) {
	cfg := core.ApplyProcessorOptions(append([]core.ProcessorOption{core.WithSampleRate(float64(sampleRate))}, opts...)...)

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(float64(cfg.BlockSize) / cfg.SampleRate * float64(time.Second)),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	<-ready

	return &Player{ctx: ctx, sampleRate: sampleRate}, nil
}

// Play blocks until buf has been played or ctx is done.
func (p *Player) Play(ctx context.Context, buf *buffer.Stereo) error {
	if int(buf.SampleRate()) != p.sampleRate {
		return fmt.Errorf("playback: buffer sample rate %v does not match device rate %d", buf.SampleRate(), p.sampleRate)
	}

	player := p.ctx.NewPlayer(newStream(buf))
	defer player.Close()
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return player.Err()
}

// Close suspends the device. The underlying context is process-wide and
// cannot be reopened with a different format.
func (p *Player) Close() error {
	return p.ctx.Suspend()
}
