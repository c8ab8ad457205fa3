package sparse

// Map is a sparse associative store from keys of type K to values of type V.
// A key that was never inserted is a defined, non-error case: Get reports
// absence, and GetOrInsert materializes a caller-supplied default.
//
// The zero Map is not usable; construct with NewMap.
type Map[K comparable, V any] struct {
	items map[K]V
}

// NewMap returns an empty Map. Storage grows lazily as keys are first
// referenced; no capacity needs to be declared up front.
//
// Complexity: O(1)
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{items: make(map[K]V)}
}

// Get returns the value stored under k and whether k is present.
// For absent keys it returns the zero value of V and false.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

// GetOrInsert returns the value stored under k, inserting mk() first when
// k is absent. mk is only invoked on a miss. When V is a reference type
// (pointer, map, slice) the returned value aliases the stored one, so
// mutations through it are visible to later Gets.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) GetOrInsert(k K, mk func() V) V {
	if v, ok := m.items[k]; ok {
		return v
	}
	v := mk()
	m.items[k] = v

	return v
}

// Insert stores v under k, replacing any prior value.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) Insert(k K, v V) {
	m.items[k] = v
}

// Remove deletes k and returns the value it held, if any.
// Removing an absent key is a no-op and reports false.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	v, ok := m.items[k]
	if ok {
		delete(m.items, k)
	}

	return v, ok
}

// Len reports the number of keys currently stored.
//
// Complexity: O(1)
func (m *Map[K, V]) Len() int {
	return len(m.items)
}

// ForEach calls fn once per stored key/value pair, in unspecified order.
// fn must not insert into or remove from m.
//
// Complexity: O(n)
func (m *Map[K, V]) ForEach(fn func(K, V)) {
	for k, v := range m.items {
		fn(k, v)
	}
}
