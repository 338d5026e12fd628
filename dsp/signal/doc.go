// Package signal provides a pull-based graph of composable audio generators.
//
// Every node implements [Signal]: Sample(t) returns one amplitude for the
// absolute time t (seconds) and advances the node's internal state exactly
// once. Sampling is therefore not idempotent; a render loop must call Sample
// on the root at most once per frame, and composite nodes call each child at
// most once per own call.
//
// Graphs are trees. A composite exclusively owns its children. To use one
// sub-graph in two places, call Duplicate, which deep-copies the sub-graph
// including its current state (oscillator phase, envelope stage, playback
// cursor) so both copies evolve independently afterwards.
//
// Leaves: [Constant], [Oscillator], [PeriodicGate], [SamplePlayer].
// Internal nodes: [Gain], [Mixer], [StepSequencer], [Envelope].
package signal
