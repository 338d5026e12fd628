package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/algo-synth/dsp/melody"
)

// loadScore reads a JSON score, or returns the demo phrase when path is
// empty. A positive bpm replaces the score tempo.
func loadScore(path string, bpm float64) (melody.Score, error) {
	score := melody.DemoScore()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return melody.Score{}, fmt.Errorf("read score: %w", err)
		}
		score = melody.Score{}
		if err := json.Unmarshal(data, &score); err != nil {
			return melody.Score{}, fmt.Errorf("parse score %s: %w", path, err)
		}
	}
	if bpm > 0 {
		score.BPM = bpm
	}
	if err := score.Validate(); err != nil {
		return melody.Score{}, err
	}
	return score, nil
}
