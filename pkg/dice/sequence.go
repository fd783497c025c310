package dice

// Sequence replays scripted draws in order. Each value is clamped into the
// requested range; once exhausted every draw returns min.
type Sequence struct {
	values []int
	calls  int
}

var _ Source = (*Sequence)(nil)

// NewSequence returns a Source that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntBetween(min, max int) int {
	if s.calls >= len(s.values) {
		s.calls++
		return min
	}
	v := s.values[s.calls]
	s.calls++
	if v < min {
		return min
	}
	if v > max && max >= min {
		return max
	}
	return v
}

// Calls reports how many draws have been made.
func (s *Sequence) Calls() int {
	return s.calls
}

// Remaining reports how many scripted values have not been consumed.
func (s *Sequence) Remaining() int {
	if s.calls >= len(s.values) {
		return 0
	}
	return len(s.values) - s.calls
}
