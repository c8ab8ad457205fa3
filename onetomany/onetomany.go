package onetomany

import "github.com/rastvel/tether/sparse"

// Link establishes target → source ownership. If target is already linked
// anywhere — including to source itself — that prior linkage is torn down
// first, so Link behaves as an atomic move between sources and re-linking
// is idempotent. Both ids may be entirely new; entries are created lazily.
//
// The old linkage must come out before the new set insertion goes in:
// inserting first would briefly record a target under two sources, and
// re-linking to the same source would double-count membership.
//
// Link never fails.
//
// Complexity: O(1) expected.
func (r *Relation[Source, Target]) Link(source Source, target Target) {
	r.Unlink(target)

	r.source.Insert(target, source)
	set := r.targets.GetOrInsert(source, func() *sparse.Set[Target] {
		return sparse.NewSet[Target](r.targetCapacity)
	})
	set.Add(target)
}

// Unlink removes target's ownership relation, if any. Unlinking a target
// that has no owner — including one never seen before — is a no-op.
//
// Unlink never fails.
//
// Complexity: O(1) expected.
func (r *Relation[Source, Target]) Unlink(target Target) {
	owner, ok := r.source.Remove(target)
	if !ok {
		return
	}
	if set, found := r.targets.Get(owner); found {
		set.Remove(target)
	}
}

// UnlinkSource removes the ownership relation of every target currently
// owned by source, leaving its target set empty. Each target's
// back-reference is cleared as the set drains, so the two maps stay in
// agreement throughout the cascade. Unknown sources are a no-op.
//
// UnlinkSource never fails.
//
// Complexity: O(k), where k is the number of targets removed.
func (r *Relation[Source, Target]) UnlinkSource(source Source) {
	set, ok := r.targets.Get(source)
	if !ok {
		return
	}
	set.Drain(func(target Target) {
		r.source.Remove(target)
	})
}

// Len reports the number of targets currently linked to some source.
//
// Complexity: O(1)
func (r *Relation[Source, Target]) Len() int {
	return r.source.Len()
}
