// Package wavfile reads and writes RIFF/WAVE files for the synthesizer.
//
// Rendered stereo buffers are written as integer PCM through a
// [dither.Quantizer]. Recorded clips for sample playback are decoded to
// mono float64 in [-1, +1); [LoadClip] also accepts MP3 files.
package wavfile
