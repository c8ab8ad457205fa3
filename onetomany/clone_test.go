package onetomany_test

import (
	"testing"

	"github.com/rastvel/tether/onetomany"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelation_Clone verifies that a clone carries all links and then
// diverges freely from the original in both directions.
func TestRelation_Clone(t *testing.T) {
	rel := onetomany.New[nodeID, shapeID]()
	rel.Link(1, 10)
	rel.Link(1, 11)
	rel.Link(2, 20)

	clone := rel.Clone()
	require.Equal(t, 3, clone.Len(), "clone must carry every link")
	assert.Equal(t, []shapeID{10, 11}, sortedTargets(clone, 1))
	owner, ok := clone.SourceOf(20)
	require.True(t, ok)
	assert.Equal(t, nodeID(2), owner)

	// Diverge: mutate the clone, original must not move.
	clone.Link(2, 10)
	assert.Equal(t, []shapeID{11}, sortedTargets(clone, 1))
	assert.Equal(t, []shapeID{10, 11}, sortedTargets(rel, 1), "original must not see clone moves")

	// Diverge the other way: mutate the original, clone must not move.
	rel.UnlinkSource(1)
	assert.Equal(t, 1, rel.Len())
	assert.Equal(t, []shapeID{11}, sortedTargets(clone, 1), "clone must not see original cascades")
}

// TestRelation_CloneEmpty verifies that cloning an empty relation yields a
// usable empty relation.
func TestRelation_CloneEmpty(t *testing.T) {
	rel := onetomany.New[nodeID, shapeID]()

	clone := rel.Clone()
	assert.Equal(t, 0, clone.Len())

	clone.Link(1, 10)
	assert.Equal(t, 0, rel.Len(), "original must stay empty")
	assert.Equal(t, 1, clone.Len())
}
