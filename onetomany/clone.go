// File: clone.go
// Role: Deep copying of a Relation.
// Determinism:
//   - Clone never mutates the receiver; the copy shares no storage with it.

package onetomany

import "github.com/rastvel/tether/sparse"

// Clone returns a deep copy of the Relation: configuration, forward sets
// and backward references. The clone and the original can diverge freely
// afterwards; explicitly-empty target sets (left behind by UnlinkSource)
// are carried over, which is observationally identical to dropping them.
//
// Complexity: O(n + k) over linked targets and recorded sources.
func (r *Relation[Source, Target]) Clone() *Relation[Source, Target] {
	clone := New[Source, Target](WithTargetCapacity(r.targetCapacity))

	r.source.ForEach(func(target Target, owner Source) {
		clone.source.Insert(target, owner)
	})
	r.targets.ForEach(func(owner Source, set *sparse.Set[Target]) {
		clone.targets.Insert(owner, set.Clone())
	})

	return clone
}
