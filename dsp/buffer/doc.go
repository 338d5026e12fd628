// Package buffer provides the stereo frame buffer that the render loop fills.
// A Stereo buffer is created silent with a fixed length and never resized;
// writers and analysers take per-channel or interleaved views of it.
package buffer
