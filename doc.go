// Package tether is a tiny in-memory toolkit for keeping two families of
// typed identifiers consistently linked — a bidirectional one-to-many
// index you can embed inside a scene graph, dependency graph, or
// entity/component store.
//
// 🚀 What is tether?
//
//	A small, pure-Go library that brings together:
//		• Relation primitives: link, unlink and cascade-unlink typed ids
//		• Structural guarantees: forward and backward views never disagree
//		• Sparse storage: lazily growing maps & sets, absence means "empty"
//		• Read-only views: observe a source's targets without copying
//
// ✨ Why choose tether?
//
//   - Minimal API – five verbs cover the whole relation lifecycle
//   - Total by design – no errors, no panics, every input is a defined case
//   - Statically typed – Source and Target id spaces cannot be mixed up
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	onetomany/ — the Relation store: Link, Unlink, UnlinkSource + read views
//	sparse/    — lazily growing keyed Map and Set primitives
//
// Quick ASCII example:
//
//	    s0          s1
//	   ╱  ╲          │
//	  t0   t1       t2
//
//	two sources owning three targets; each target has exactly one owner.
//
// The relation is single-threaded on purpose: both internal maps are
// mutated together inside each call, so callers needing concurrency wrap
// the whole Relation behind one lock rather than relying on partial,
// per-map views that could disagree mid-flight.
//
//	go get github.com/rastvel/tether/onetomany
package tether
