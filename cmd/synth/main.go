// Command synth renders a melody, optionally over a repeating recorded
// kick, to a stereo WAV file.
//
// Usage:
//
//	synth [flags]
//
// Without -score it renders a built-in seven-note phrase at 120 BPM.
//
// Examples:
//
//	synth -out melody.wav
//	synth -score tune.json -bpm 96 -duration 8
//	synth -kick ~/samples/kick.wav -kick-gain 3 -play
//	synth -kick $SAMPLES/kick.mp3
//	synth -bits 24 -dither triangular -pan -0.3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	ossignal "os/signal"

	"github.com/mitchellh/go-homedir"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		die("%v", err)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		stop()
		die("%v", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "synth: "+format+"\n", args...)
	os.Exit(1)
}

type config struct {
	out        string
	scorePath  string
	duration   float64
	bpm        float64
	gap        float64
	volume     float64
	pan        float64
	panLaw     string
	kickPath   string
	kickGain   float64
	kickPeriod float64
	kickLength float64
	bits       int
	dither     string
	sampleRate int
	play       bool
	report     bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("synth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.out, "out", "audio.wav", "output WAV path (empty to skip writing)")
	fs.StringVar(&cfg.scorePath, "score", "", "JSON score file (default: built-in phrase)")
	fs.Float64Var(&cfg.duration, "duration", 5, "render length in seconds")
	fs.Float64Var(&cfg.bpm, "bpm", 0, "tempo override in beats per minute (0 keeps the score tempo)")
	fs.Float64Var(&cfg.gap, "gap", 0.02, "silence at the end of each note in beats")
	fs.Float64Var(&cfg.volume, "volume", 0.4, "master volume (linear)")
	fs.Float64Var(&cfg.pan, "pan", 0, "stereo position in [-1, 1]")
	fs.StringVar(&cfg.panLaw, "pan-law", "balance", "pan law: balance|constant-power")
	fs.StringVar(&cfg.kickPath, "kick", "", "WAV or MP3 sample triggered on every kick gate")
	fs.Float64Var(&cfg.kickGain, "kick-gain", 3, "kick gain (linear)")
	fs.Float64Var(&cfg.kickPeriod, "kick-period", 0.5, "kick gate period in seconds")
	fs.Float64Var(&cfg.kickLength, "kick-length", 0.3, "kick gate open time in seconds")
	fs.IntVar(&cfg.bits, "bits", 16, "output bit depth: 16|24|32")
	fs.StringVar(&cfg.dither, "dither", "none", "dither: none|rectangular|triangular")
	fs.IntVar(&cfg.sampleRate, "sample-rate", 44100, "render sample rate in Hz")
	fs.BoolVar(&cfg.play, "play", false, "play the result on the default audio device")
	fs.BoolVar(&cfg.report, "report", true, "print level and pitch statistics")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: synth [flags]\n\n")
		fmt.Fprintf(stderr, "Renders a melody to a stereo WAV file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !(cfg.duration > 0) {
		return cfg, fmt.Errorf("duration must be > 0: %v", cfg.duration)
	}
	if cfg.bpm < 0 {
		return cfg, fmt.Errorf("bpm must be >= 0: %v", cfg.bpm)
	}
	if !(cfg.volume >= 0) || math.IsInf(cfg.volume, 1) {
		return cfg, fmt.Errorf("volume must be a finite value >= 0: %v", cfg.volume)
	}
	if cfg.sampleRate <= 0 {
		return cfg, fmt.Errorf("sample-rate must be > 0: %d", cfg.sampleRate)
	}
	if cfg.out == "" && !cfg.play && !cfg.report {
		return cfg, errors.New("nothing to do: set -out, -play or -report")
	}
	for _, p := range []*string{&cfg.out, &cfg.scorePath, &cfg.kickPath} {
		expanded, err := expandPath(*p)
		if err != nil {
			return cfg, err
		}
		*p = expanded
	}
	return cfg, nil
}

// expandPath resolves a leading ~ and environment variables. Empty paths
// stay empty.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return os.ExpandEnv(p), nil
}
