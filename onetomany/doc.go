// Package onetomany maintains a bidirectional one-to-many association
// between two typed identifier families, Source and Target.
//
// 🚀 What is onetomany?
//
//	A Relation keeps two aspects of a single fact in lockstep:
//	  • forward  — each Source id maps to the set of Targets it owns
//	  • backward — each Target id maps to its unique current owner
//	Every public call leaves both aspects agreeing with each other, so a
//	host system (scene graph, dependency graph, entity/component store)
//	can reparent and cascade-delete without bookkeeping of its own.
//
// ✨ Key properties:
//   - Single owner – a Target belongs to at most one Source, structurally
//   - Total API – no operation errors or panics for any pair of ids
//   - Sparse & lazy – ids need no registration; absence means empty/none
//   - Statically typed – Source and Target ids are distinct type
//     parameters, so cross-family misuse is a compile error
//
// ⚙️ Usage:
//
//	import "github.com/rastvel/tether/onetomany"
//
//	type NodeID int    // the "one" side
//	type ShapeID int   // the "many" side
//
//	rel := onetomany.New[NodeID, ShapeID]()
//	rel.Link(1, 10)            // node 1 owns shape 10
//	rel.Link(2, 10)            // shape 10 moves to node 2
//	owner, ok := rel.SourceOf(10)   // 2, true
//	rel.UnlinkSource(2)             // cascade: shape 10 is orphaned
//
// Concurrency: the Relation is deliberately unlocked. Both internal maps
// are mutated as a unit within each call; callers needing shared access
// must serialize whole calls externally (one writer lock around the whole
// Relation), because any finer grain could observe the two maps mid-update.
//
// Performance: Link, Unlink, TargetsOf and SourceOf are O(1) expected;
// UnlinkSource is O(k) in the number of targets removed.
package onetomany
