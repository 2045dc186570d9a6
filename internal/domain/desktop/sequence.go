package desktop

// Sequence is a monotonic allocation counter
type Sequence struct {
	next int64
}

// NewSequence returns a sequence whose first allocation is start
func NewSequence(start int64) Sequence {
	return Sequence{next: start}
}

// Next allocates the current value and advances the counter
func (s *Sequence) Next() int64 {
	v := s.next
	s.next++
	return v
}

// Peek returns the value the next allocation will return
func (s Sequence) Peek() int64 {
	return s.next
}
