package localize

// valueStack holds the previously-active values for one localized
// attribute, most recent last. Each Overridable owns exactly one stack;
// stacks are never shared across instances, even when two instances were
// bound from the same Descriptor.
type valueStack[V any] struct {
	saved []V
}

func (s *valueStack[V]) push(v V) {
	s.saved = append(s.saved, v)
}

// pop removes and returns the most recently saved value. The boolean
// reports whether a value was available; popping an empty stack is a
// broken LIFO contract, and callers escalate it rather than recover.
func (s *valueStack[V]) pop() (V, bool) {
	var zero V
	if len(s.saved) == 0 {
		return zero, false
	}
	last := len(s.saved) - 1
	v := s.saved[last]
	s.saved[last] = zero
	s.saved = s.saved[:last]
	return v, true
}

func (s *valueStack[V]) depth() int {
	return len(s.saved)
}
