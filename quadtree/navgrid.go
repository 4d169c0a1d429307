package quadtree

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/navmesh/terrain"
)

// NavGrid is the top-level index for one layer: a fixed-size 2-D array of
// quadtree roots, one per block. Every slot is populated once construction
// completes (spec §3).
type NavGrid struct {
	Layer    terrain.Layer
	TreeSize int32 // == BlockSize

	// Trees[z][x] is the quadtree root for block (x, z).
	Trees [][]*CompressedLabelTree
}

// NewNavGrid allocates an empty NavGrid with blocksPerAxis x blocksPerAxis
// slots, all nil until the compressor fills them in.
func NewNavGrid(layer terrain.Layer, treeSize int32, blocksPerAxis int32) *NavGrid {
	trees := make([][]*CompressedLabelTree, blocksPerAxis)
	for z := range trees {
		trees[z] = make([]*CompressedLabelTree, blocksPerAxis)
	}
	return &NavGrid{Layer: layer, TreeSize: treeSize, Trees: trees}
}

// FindLeafXZ returns the leaf containing world position (x, z), or false if
// x <= 0, z <= 0, or (x, z) lies beyond the last block (spec §4.3).
func (g *NavGrid) FindLeafXZ(x, z float32) (*CompressedLabelTree, bool) {
	if x <= 0 || z <= 0 {
		return nil, false
	}

	bx := int32(x / float32(g.TreeSize))
	bz := int32(z / float32(g.TreeSize))
	if bz < 0 || bz >= int32(len(g.Trees)) {
		return nil, false
	}
	row := g.Trees[bz]
	if bx < 0 || bx >= int32(len(row)) {
		return nil, false
	}

	node := row[bx]
	if node == nil {
		return nil, false
	}
	return descend(node, x, z), true
}

// FindLeaf is FindLeafXZ(position.X(), position.Z()).
func (g *NavGrid) FindLeaf(position d3.Vec3) (*CompressedLabelTree, bool) {
	return g.FindLeafXZ(position.X(), position.Z())
}

// descend walks from node down to the leaf containing world position (x, z),
// choosing a child at each internal node by comparing (x, z) to the node's
// own midpoint, in TL/TR/BL/BR order.
func descend(node *CompressedLabelTree, x, z float32) *CompressedLabelTree {
	for !node.IsLeaf() {
		h := node.C / 2
		midX := float32(node.X1() + h)
		midZ := float32(node.Z1() + h)

		var idx int
		switch {
		case x < midX && z < midZ:
			idx = TL
		case x >= midX && z < midZ:
			idx = TR
		case x < midX && z >= midZ:
			idx = BL
		default:
			idx = BR
		}
		node = node.Children[idx]
	}
	return node
}
