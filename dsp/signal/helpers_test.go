package signal

// scripted replays a fixed list of values, one per call, ignoring time.
type scripted struct {
	values []float64
	i      int
}

func (s *scripted) Sample(float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func (s *scripted) Duplicate() Signal {
	return &scripted{values: append([]float64(nil), s.values...), i: s.i}
}

// recorder returns the time it was sampled at and remembers every call.
type recorder struct {
	times []float64
}

func (r *recorder) Sample(t float64) float64 {
	r.times = append(r.times, t)
	return t
}

func (r *recorder) Duplicate() Signal {
	return &recorder{times: append([]float64(nil), r.times...)}
}
