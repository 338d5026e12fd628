package signal

// SamplePlayer plays a decoded mono recording while its gate is open.
//
// Each call with the gate open emits the next recorded sample. When the gate
// closes the cursor rewinds, so the next opening restarts the recording from
// the beginning. Past the end of the recording the player is silent until
// re-triggered.
type SamplePlayer struct {
	gate  Signal
	pcm   []float64
	index int
}

// NewSamplePlayer creates a player for pcm. The samples are copied.
func NewSamplePlayer(gate Signal, pcm []float64) *SamplePlayer {
	return &SamplePlayer{
		gate: orSilence(gate),
		pcm:  append([]float64(nil), pcm...),
	}
}

// Len returns the recording length in samples.
func (p *SamplePlayer) Len() int { return len(p.pcm) }

// Position returns the playback cursor.
func (p *SamplePlayer) Position() int { return p.index }

// Sample implements Signal.
func (p *SamplePlayer) Sample(t float64) float64 {
	if p.gate.Sample(t) <= 0 {
		p.index = 0
		return 0
	}
	if p.index >= len(p.pcm) {
		return 0
	}
	v := p.pcm[p.index]
	p.index++
	return v
}

// Duplicate implements Signal. The recording is never written after
// construction, so copies share it and only the cursor is per-copy.
func (p *SamplePlayer) Duplicate() Signal {
	return &SamplePlayer{
		gate:  p.gate.Duplicate(),
		pcm:   p.pcm,
		index: p.index,
	}
}
