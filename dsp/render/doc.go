// Package render drives a signal graph sample by sample into a stereo
// buffer.
//
// The loop evaluates the root once per frame at t = i/sampleRate, scales
// the value by the master volume and pans it into both channels. Rendering
// has no side effects beyond advancing the graph's own state.
package render
