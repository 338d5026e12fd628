// Package melody turns a literal list of notes and a tempo into a signal
// graph: a frequency step sequence of additive piano-like voices and a gate
// step sequence with short articulation gaps, joined by one ADSR envelope.
//
// Building is pure: no node is sampled while the graph is assembled.
package melody
