// Package resample converts recorded clips between sample rates.
//
// Conversion is rational (up/down) through a polyphase FIR with a
// Kaiser-windowed sinc prototype. Quality modes trade taps for stopband:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
package resample
