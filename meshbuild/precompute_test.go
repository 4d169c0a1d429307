package meshbuild

import (
	"testing"

	"github.com/arl/navmesh/quadtree"
	"github.com/stretchr/testify/assert"
)

func TestPrecomputeSetsLeafCentre(t *testing.T) {
	leaf := &quadtree.CompressedLabelTree{BX: 0, BZ: 0, OX: 4, OZ: 8, C: 4, Label: 1}

	Precompute([]*quadtree.CompressedLabelTree{leaf})

	assert.EqualValues(t, 6, leaf.PX)
	assert.EqualValues(t, 10, leaf.PZ)
}

func TestPrecomputeDirectionsAndDistancesAreSymmetric(t *testing.T) {
	ids := &IDAllocator{}
	a := &quadtree.CompressedLabelTree{ID: ids.Next(), BX: 0, BZ: 0, OX: 0, OZ: 0, C: 4, Label: 1}
	b := &quadtree.CompressedLabelTree{ID: ids.Next(), BX: 0, BZ: 0, OX: 4, OZ: 0, C: 4, Label: 1}
	a.AddNeighbor(b)
	b.AddNeighbor(a)

	Precompute([]*quadtree.CompressedLabelTree{a, b})

	assert.InDelta(t, a.NeighborDistances[b.ID], b.NeighborDistances[a.ID], 1e-6)

	dAB := a.NeighborDirections[b.ID]
	dBA := b.NeighborDirections[a.ID]
	assert.InDelta(t, dAB.X(), -dBA.X(), 1e-6)
	assert.InDelta(t, dAB.Z(), -dBA.Z(), 1e-6)
}

func TestPrecomputeSkipsImpassableLeaves(t *testing.T) {
	leaf := &quadtree.CompressedLabelTree{C: 4, Label: quadtree.Impassable}

	Precompute([]*quadtree.CompressedLabelTree{leaf})

	assert.Zero(t, leaf.PX)
	assert.Zero(t, leaf.PZ)
}
