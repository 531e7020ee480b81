package report

// fixedSource replays a fixed sequence so metric draws and opening selection
// are deterministic in tests.
type fixedSource struct {
	seq []int
	i   int
}

func (s *fixedSource) IntN(n int) int {
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v % n
}

// zeroSource always picks the lowest value in range.
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }
