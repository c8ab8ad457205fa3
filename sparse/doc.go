// Package sparse provides the lazily growing keyed-storage primitives the
// rest of tether is built on: a typed Map and an unordered Set.
//
// 🚀 What is sparse?
//
//	A thin, generic layer over builtin maps that makes "absence" a
//	first-class, non-error state:
//	  • Get reports absence instead of failing
//	  • GetOrInsert materializes a default on first touch
//	  • Remove hands back the prior value, if any
//	  • Set is nil-tolerant: a nil *Set behaves as an empty set for reads
//
// ✨ Key properties:
//   - No preallocation – storage grows as keys are first referenced
//   - No iteration-order guarantees – callers must not rely on any
//   - No internal locking – owners serialize access externally
//
// ⚙️ Usage:
//
//	import "github.com/rastvel/tether/sparse"
//
//	m := sparse.NewMap[string, int]()
//	m.Insert("a", 1)
//	v, ok := m.Get("a") // 1, true
//
//	s := sparse.NewSet[int](4)
//	s.Add(7)
//	s.Drain(func(e int) { fmt.Println(e) }) // s is empty afterwards
//
// Performance: every operation is O(1) expected, except the O(n) bulk
// operations (Values, Drain, ForEach, Clone).
package sparse
