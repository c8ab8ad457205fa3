package sparse

// Set is an unordered collection of comparable elements.
//
// Read methods (Contains, Len, Values, ForEach) tolerate a nil receiver and
// treat it as an empty set, which lets callers hand out "empty" views
// without allocating. Mutating methods require a Set built by NewSet.
type Set[E comparable] struct {
	items map[E]struct{}
}

// NewSet returns an empty Set with a capacity hint. A hint of 0 is valid
// and defers all allocation sizing to the runtime.
//
// Complexity: O(1)
func NewSet[E comparable](capacity int) *Set[E] {
	return &Set[E]{items: make(map[E]struct{}, capacity)}
}

// Add inserts e into the set. Adding a present element is a no-op.
//
// Complexity: O(1) expected.
func (s *Set[E]) Add(e E) {
	s.items[e] = struct{}{}
}

// Remove deletes e from the set. Removing an absent element is a no-op.
//
// Complexity: O(1) expected.
func (s *Set[E]) Remove(e E) {
	delete(s.items, e)
}

// Contains reports whether e is an element of the set.
//
// Complexity: O(1) expected.
func (s *Set[E]) Contains(e E) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[e]

	return ok
}

// Len reports the number of elements in the set.
//
// Complexity: O(1)
func (s *Set[E]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Values returns the elements as a freshly allocated slice in unspecified
// order. The slice is the caller's to keep; later mutations of the set do
// not affect it.
//
// Complexity: O(n)
func (s *Set[E]) Values() []E {
	if s == nil {
		return nil
	}
	out := make([]E, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}

	return out
}

// ForEach calls fn once per element, in unspecified order.
// fn must not add to or remove from s.
//
// Complexity: O(n)
func (s *Set[E]) ForEach(fn func(E)) {
	if s == nil {
		return
	}
	for e := range s.items {
		fn(e)
	}
}

// Drain removes every element, calling fn for each one as it goes.
// Each element is detached from the set before fn sees it, so fn may freely
// mutate other structures keyed by the drained elements. The set is empty
// when Drain returns.
//
// Complexity: O(n)
func (s *Set[E]) Drain(fn func(E)) {
	for e := range s.items {
		delete(s.items, e)
		fn(e)
	}
}

// Clone returns an independent copy of the set.
//
// Complexity: O(n)
func (s *Set[E]) Clone() *Set[E] {
	if s == nil {
		return nil
	}
	out := NewSet[E](len(s.items))
	for e := range s.items {
		out.items[e] = struct{}{}
	}

	return out
}
