package onetomany

import "github.com/rastvel/tether/sparse"

// defaultTargetCapacity sizes the target set allocated when a source
// receives its first link. Most real-world sources own a handful of
// targets, so a small hint avoids immediate rehashing without wasting
// space on sources that stay near-empty.
const defaultTargetCapacity = 4

// RelationOption configures a Relation before creation.
type RelationOption func(*relationConfig)

// relationConfig collects option values ahead of construction.
type relationConfig struct {
	targetCapacity int
}

// WithTargetCapacity overrides the capacity hint used for a source's first
// target set. Values below 1 are ignored and the default of 4 applies.
func WithTargetCapacity(n int) RelationOption {
	return func(c *relationConfig) {
		if n >= 1 {
			c.targetCapacity = n
		}
	}
}

// Relation is a bidirectional one-to-many index between two identifier
// families: each Source owns zero or more Targets, and each Target belongs
// to at most one Source at a time.
//
// The two maps are two aspects of one relation and are always mutated
// together inside a single call; between calls they never disagree:
//
//  1. backward says t belongs to s  ⇒  t is in forward's set for s
//  2. t is in forward's set for s   ⇒  backward says t belongs to s
//
// Identifiers are consumed as opaque comparable keys. They need no
// registration: an id never seen before simply reads as "no targets" or
// "no owner". The Relation is not safe for concurrent use; see the
// package documentation.
type Relation[Source comparable, Target comparable] struct {
	// forward: Source id → set of owned Target ids.
	targets *sparse.Map[Source, *sparse.Set[Target]]

	// backward: Target id → current owner. Presence of a key is the
	// "Some" state; absence is "None".
	source *sparse.Map[Target, Source]

	// targetCapacity is the hint for a source's first target set.
	targetCapacity int
}

// New creates an empty Relation: no sources, no targets, no links.
//
// Complexity: O(1)
func New[Source comparable, Target comparable](opts ...RelationOption) *Relation[Source, Target] {
	cfg := relationConfig{targetCapacity: defaultTargetCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Relation[Source, Target]{
		targets:        sparse.NewMap[Source, *sparse.Set[Target]](),
		source:         sparse.NewMap[Target, Source](),
		targetCapacity: cfg.targetCapacity,
	}
}
