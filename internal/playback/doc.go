// Package playback plays rendered buffers on the default audio device.
//
// Builds tagged headless carry a stub whose constructor always fails with
// [ErrUnavailable], for CI machines without an audio stack.
package playback

import "errors"

// ErrUnavailable is returned when no audio device can be used.
var ErrUnavailable = errors.New("playback: audio output unavailable")
