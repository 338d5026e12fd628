package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/dither"
	"github.com/cwbudde/algo-synth/dsp/render"
	"github.com/cwbudde/algo-synth/internal/playback"
	"github.com/cwbudde/algo-synth/measure/loudness"
	"github.com/cwbudde/algo-synth/stats/frequency"
	timestats "github.com/cwbudde/algo-synth/stats/time"
	"github.com/cwbudde/algo-synth/wavfile"
)

func run(ctx context.Context, cfg config, logger *slog.Logger, stdout io.Writer) error {
	score, err := loadScore(cfg.scorePath, cfg.bpm)
	if err != nil {
		return err
	}
	law, err := render.ParsePanLaw(cfg.panLaw)
	if err != nil {
		return err
	}
	dt, err := dither.ParseDitherType(cfg.dither)
	if err != nil {
		return err
	}

	var kick *wavfile.Clip
	if cfg.kickPath != "" {
		kick, err = wavfile.LoadClip(cfg.kickPath, wavfile.WithLogger(logger))
		if err != nil {
			return err
		}
	}

	root, err := buildGraph(cfg, score, kick, logger)
	if err != nil {
		return err
	}

	r := render.New(
		render.WithVolume(cfg.volume),
		render.WithPan(cfg.pan),
		render.WithPanLaw(law),
		render.WithProcessorOptions(core.WithSampleRate(float64(cfg.sampleRate))),
	)
	buf := r.RenderDuration(root, cfg.duration)
	if buf.Len() > 0 {
		first := buf.At(0)
		logger.Info("rendered", "frames", buf.Len(), "seconds", buf.Duration(), "firstL", first.L, "firstR", first.R)
	}

	if cfg.out != "" {
		if err := wavfile.WriteFile(cfg.out, buf,
			wavfile.WithBitDepth(cfg.bits),
			wavfile.WithDither(dt),
			wavfile.WithLogger(logger),
		); err != nil {
			return err
		}
		logger.Info("wrote wav", "path", cfg.out, "bits", cfg.bits, "dither", dt.String())
	}

	if cfg.report {
		if err := printReport(stdout, buf); err != nil {
			return err
		}
	}

	if cfg.play {
		p, err := playback.New(cfg.sampleRate)
		if err != nil {
			return err
		}
		defer p.Close()
		logger.Info("playing", "seconds", buf.Duration())
		if err := p.Play(ctx, buf); err != nil {
			return err
		}
	}
	return nil
}

func printReport(w io.Writer, buf *buffer.Stereo) error {
	left, right := timestats.Stereo(buf)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tRMS [dB]\tPeak [dB]\tCrest [dB]\tDC\tClipped\n")
	fmt.Fprintf(tw, "-------\t--------\t---------\t----------\t--\t-------\n")
	for _, row := range []struct {
		name string
		s    timestats.Stats
	}{{"left", left}, {"right", right}} {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.5f\t%d\n",
			row.name, row.s.RMS_dB, row.s.Peak_dB, row.s.CrestFactor_dB, row.s.DC, row.s.Clipped)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if buf.Len() == 0 {
		return nil
	}
	f, err := frequency.DominantFrequency(buf.Mono(), buf.SampleRate())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "dominant frequency: %.2f Hz\n", f); err != nil {
		return err
	}

	lufs := loudness.Measure(buf)
	if math.IsInf(lufs.Integrated, -1) {
		_, err = fmt.Fprintf(w, "integrated loudness: below gate\n")
		return err
	}
	_, err = fmt.Fprintf(w, "integrated loudness: %.1f LUFS\n", lufs.Integrated)
	return err
}
