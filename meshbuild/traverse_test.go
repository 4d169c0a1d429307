package meshbuild

import (
	"testing"

	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
	"github.com/stretchr/testify/assert"
)

func TestCollectLeavesOrderIsTLTRBLBR(t *testing.T) {
	root := &quadtree.CompressedLabelTree{C: 4}
	tl := &quadtree.CompressedLabelTree{C: 2, Label: 1}
	tr := &quadtree.CompressedLabelTree{C: 2, Label: 2}
	bl := &quadtree.CompressedLabelTree{C: 2, Label: 3}
	br := &quadtree.CompressedLabelTree{C: 2, Label: 4}
	root.Children[quadtree.TL] = tl
	root.Children[quadtree.TR] = tr
	root.Children[quadtree.BL] = bl
	root.Children[quadtree.BR] = br

	leaves := CollectLeaves(nil, root)

	assert.Len(t, leaves, 4)
	assert.EqualValues(t, []int32{1, 2, 3, 4}, []int32{
		leaves[0].Label, leaves[1].Label, leaves[2].Label, leaves[3].Label,
	})
}

func TestLayerLeavesWalksEveryBlock(t *testing.T) {
	grid := quadtree.NewNavGrid(terrain.Land, 4, 2)
	grid.Trees[0][0] = &quadtree.CompressedLabelTree{C: 4, Label: 1}
	grid.Trees[0][1] = &quadtree.CompressedLabelTree{C: 4, Label: 2}
	grid.Trees[1][0] = &quadtree.CompressedLabelTree{C: 4, Label: 3}
	grid.Trees[1][1] = &quadtree.CompressedLabelTree{C: 4, Label: 4}

	leaves := LayerLeaves(grid)
	assert.Len(t, leaves, 4)
}

func TestValidateMapSizeRejectsNonMultipleOfBlocksPerAxis(t *testing.T) {
	_, _, err := ValidateMapSize(terrain.BlocksPerAxis + 1)
	assert.ErrorIs(t, err, terrain.ErrInvalidInput)
}

func TestValidateMapSizeRejectsNonPositive(t *testing.T) {
	_, _, err := ValidateMapSize(0)
	assert.ErrorIs(t, err, terrain.ErrInvalidInput)
}

func TestValidateMapSizeAcceptsWellFormedSize(t *testing.T) {
	blockSize, threshold, err := ValidateMapSize(256)
	assert.NoError(t, err)
	assert.EqualValues(t, 16, blockSize)
	assert.EqualValues(t, 2, threshold)
}
