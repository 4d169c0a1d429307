package meshbuild

import (
	"testing"

	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
	"github.com/stretchr/testify/assert"
)

func makeLeaf(ids *IDAllocator, bx, bz, ox, oz, c int32, label int32) *quadtree.CompressedLabelTree {
	return &quadtree.CompressedLabelTree{ID: ids.Next(), BX: bx, BZ: bz, OX: ox, OZ: oz, C: c, Label: label}
}

// twoByTwoGrid builds a single-block grid split into four equal leaves, all
// pathable except the one at index impassable (TL, TR, BL, BR order; -1 for
// none).
func twoByTwoGrid(t *testing.T, side int32, impassable int) (*quadtree.NavGrid, []*quadtree.CompressedLabelTree) {
	t.Helper()
	ids := &IDAllocator{}
	h := side / 2

	label := func(i int) int32 {
		if i == impassable {
			return quadtree.Impassable
		}
		return quadtree.Unassigned
	}

	root := &quadtree.CompressedLabelTree{ID: ids.Next(), BX: 0, BZ: 0, OX: 0, OZ: 0, C: side}
	root.Children[quadtree.TL] = makeLeaf(ids, 0, 0, 0, 0, h, label(quadtree.TL))
	root.Children[quadtree.TR] = makeLeaf(ids, 0, 0, h, 0, h, label(quadtree.TR))
	root.Children[quadtree.BL] = makeLeaf(ids, 0, 0, 0, h, h, label(quadtree.BL))
	root.Children[quadtree.BR] = makeLeaf(ids, 0, 0, h, h, h, label(quadtree.BR))

	grid := quadtree.NewNavGrid(terrain.Land, side, 1)
	grid.Trees[0][0] = root

	leaves := []*quadtree.CompressedLabelTree{
		root.Children[quadtree.TL], root.Children[quadtree.TR],
		root.Children[quadtree.BL], root.Children[quadtree.BR],
	}
	return grid, leaves
}

func TestBuildOrthogonalNeighborsConnectsAdjacentPathableLeaves(t *testing.T) {
	grid, leaves := twoByTwoGrid(t, 8, -1)
	BuildOrthogonalNeighbors(grid, leaves)

	tl, tr, bl, br := leaves[0], leaves[1], leaves[2], leaves[3]
	assert.Contains(t, tl.Neighbors, tr.ID)
	assert.Contains(t, tl.Neighbors, bl.ID)
	assert.Contains(t, tr.Neighbors, tl.ID, "neighbour edges must be symmetric")
	assert.NotContains(t, tl.Neighbors, br.ID, "diagonal leaves are not orthogonal neighbours")
}

func TestBuildOrthogonalNeighborsSkipsImpassableLeaf(t *testing.T) {
	grid, leaves := twoByTwoGrid(t, 8, quadtree.TR)
	BuildOrthogonalNeighbors(grid, leaves)

	tl, tr := leaves[0], leaves[1]
	assert.NotContains(t, tl.Neighbors, tr.ID)
	assert.Empty(t, tr.Neighbors)
}

func TestBuildCornerNeighborsConnectsDiagonalWhenBothOrthogonalSidesPathable(t *testing.T) {
	grid, leaves := twoByTwoGrid(t, 8, -1)
	BuildOrthogonalNeighbors(grid, leaves)
	BuildCornerNeighbors(grid, leaves)

	tl, br := leaves[0], leaves[3]
	assert.Contains(t, tl.Neighbors, br.ID, "opposite corners should connect when both adjacent sides are pathable")
}

func TestBuildCornerNeighborsSkipsWhenOneOrthogonalSideBlocked(t *testing.T) {
	grid, leaves := twoByTwoGrid(t, 8, quadtree.TR)
	BuildOrthogonalNeighbors(grid, leaves)
	BuildCornerNeighbors(grid, leaves)

	tl, br := leaves[0], leaves[3]
	assert.NotContains(t, tl.Neighbors, br.ID, "corner cut requires both orthogonal neighbours to be pathable")
}
