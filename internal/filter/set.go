package filter

// Set is an immutable set of allowed values for one filter dimension.
//
// A nil *Set means the dimension is not filtered. A non-nil empty Set allows
// nothing, which is how an emptied multi-select behaves.
type Set[T comparable] struct {
	order []T
	index map[T]struct{}
}

// NewSet builds a Set from vals, dropping duplicates and keeping first-seen
// order. NewSet() with no values is the empty set, not the nil set.
func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.order = append(s.order, v)
	}
	return s
}

// Allows reports whether v passes this dimension.
func (s *Set[T]) Allows(v T) bool {
	if s == nil {
		return true
	}
	_, ok := s.index[v]
	return ok
}

// Values returns the allowed values in insertion order. Nil for a nil Set.
func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
