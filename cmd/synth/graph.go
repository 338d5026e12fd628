package main

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/melody"
	"github.com/cwbudde/algo-synth/dsp/resample"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/wavfile"
)

// buildGraph wires the enveloped melody and, when a kick clip is given, a
// periodically retriggered sample player on top of it.
func buildGraph(cfg config, score melody.Score, kick *wavfile.Clip, logger *slog.Logger) (signal.Signal, error) {
	proc := core.WithSampleRate(float64(cfg.sampleRate))

	b, err := melody.NewBuilder(
		melody.WithSilenceGap(cfg.gap),
		melody.WithProcessorOptions(proc),
	)
	if err != nil {
		return nil, err
	}
	mel, err := b.Melody(score.Notes, score.BPM)
	if err != nil {
		return nil, err
	}
	logger.Debug("built melody", "notes", len(score.Notes), "bpm", score.BPM, "seconds", score.Duration())

	if kick == nil {
		return mel, nil
	}

	pcm, err := kickPCM(kick, cfg.sampleRate, logger)
	if err != nil {
		return nil, err
	}

	gate := signal.NewPeriodicGate(cfg.kickPeriod, cfg.kickLength)
	drum := signal.NewGain(signal.NewSamplePlayer(gate, pcm), cfg.kickGain)
	logger.Debug("built kick", "frames", len(pcm), "period", cfg.kickPeriod, "gain", cfg.kickGain)

	return signal.Mix(mel, drum), nil
}

// kickPCM returns the clip samples at sampleRate, resampling when the clip
// was recorded at another rate.
func kickPCM(kick *wavfile.Clip, sampleRate int, logger *slog.Logger) ([]float64, error) {
	if kick.SampleRate == sampleRate {
		return kick.Samples, nil
	}
	logger.Info("resampling kick", "from", kick.SampleRate, "to", sampleRate)
	pcm, err := resample.Convert(kick.Samples, float64(kick.SampleRate), float64(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("resample kick: %w", err)
	}
	return pcm, nil
}
