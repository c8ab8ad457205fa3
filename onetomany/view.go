// File: view.go
// Role: Non-mutating read access to the relation (owner lookup, target views).
// Determinism:
//   - Views are live: they observe links made after the view was taken.
//   - No iteration-order guarantees anywhere.

package onetomany

import "github.com/rastvel/tether/sparse"

// TargetView is a read-only window onto the live set of targets owned by
// one source. It exposes no mutating methods, so invariants cannot be
// broken through it; callers that need a mutable snapshot take Values().
//
// The zero TargetView is a valid empty view.
type TargetView[Target comparable] struct {
	set *sparse.Set[Target]
}

// Len reports how many targets the source currently owns.
//
// Complexity: O(1)
func (v TargetView[Target]) Len() int {
	return v.set.Len()
}

// Contains reports whether target is currently owned by the viewed source.
//
// Complexity: O(1) expected.
func (v TargetView[Target]) Contains(target Target) bool {
	return v.set.Contains(target)
}

// Values returns the owned targets as a freshly allocated slice in
// unspecified order — a snapshot safe to iterate while mutating the
// relation (the drain-before-mutate pattern for cascades driven by the
// host).
//
// Complexity: O(k)
func (v TargetView[Target]) Values() []Target {
	return v.set.Values()
}

// ForEach calls fn once per owned target, in unspecified order.
// fn must not mutate the relation.
//
// Complexity: O(k)
func (v TargetView[Target]) ForEach(fn func(Target)) {
	v.set.ForEach(fn)
}

// TargetsOf returns a read-only live view of the targets owned by source.
// For a source with no targets — including one never seen before — the
// view is empty; sparse absence and explicit emptiness are
// indistinguishable through it.
//
// Complexity: O(1)
func (r *Relation[Source, Target]) TargetsOf(source Source) TargetView[Target] {
	set, _ := r.targets.Get(source)

	return TargetView[Target]{set: set}
}

// SourceOf returns the current owner of target. The second result is false
// when target has no owner, in which case the first is the zero Source.
//
// Complexity: O(1) expected.
func (r *Relation[Source, Target]) SourceOf(target Target) (Source, bool) {
	return r.source.Get(target)
}
