//go:build headless

package playback

import (
	"context"
	"errors"
	"testing"
)

func TestHeadlessUnavailable(t *testing.T) {
	if _, err := New(44100); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("New() error = %v, want ErrUnavailable", err)
	}
	var p Player
	if err := p.Play(context.Background(), nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Play() error = %v, want ErrUnavailable", err)
	}
}
