package quadtree

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/navmesh/terrain"
)

// Child indices, in the fixed order every internal node's children follow.
const (
	TL = iota
	TR
	BL
	BR
)

// Leaf label sentinels. Any value > 0 is a connected-component id.
const (
	Impassable int32 = -1
	Unassigned int32 = 0
)

// CompressedLabelTree is a node of one block's quadtree, for one layer.
// Internal nodes have all four Children populated (in TL, TR, BL, BR
// order); leaves have none. Only pathable leaves carry Neighbors,
// NeighborDistances, NeighborDirections, PX and PZ.
type CompressedLabelTree struct {
	ID    uint64
	Layer terrain.Layer

	BX, BZ int32 // top-left corner of the enclosing block, in world units
	OX, OZ int32 // offset of this node's top-left within the block, in cells
	C      int32 // side length of this node, in cells (== world units)

	Children [4]*CompressedLabelTree

	// Leaf-only fields.
	Label int32

	Neighbors          map[uint64]*CompressedLabelTree
	NeighborDistances  map[uint64]float32
	NeighborDirections map[uint64]d3.Vec3
	PX, PZ             float32
}

// IsLeaf reports whether n has no children.
func (n *CompressedLabelTree) IsLeaf() bool {
	return n.Children[TL] == nil
}

// IsPathable reports whether n is a leaf with a non-impassable label. It is
// true both before labelling (Label == Unassigned) and after (Label > 0).
func (n *CompressedLabelTree) IsPathable() bool {
	return n.IsLeaf() && n.Label != Impassable
}

// IsLabelled reports whether n is a pathable leaf that has been assigned a
// connected-component id.
func (n *CompressedLabelTree) IsLabelled() bool {
	return n.IsLeaf() && n.Label > 0
}

// X1, Z1 return this node's top-left world corner; X2, Z2 its bottom-right.
func (n *CompressedLabelTree) X1() int32 { return n.BX + n.OX }
func (n *CompressedLabelTree) Z1() int32 { return n.BZ + n.OZ }
func (n *CompressedLabelTree) X2() int32 { return n.X1() + n.C }
func (n *CompressedLabelTree) Z2() int32 { return n.Z1() + n.C }

// Center returns this leaf's precomputed centre as a Vec3 (y == 0; the
// builder works in the xz plane). Only valid for pathable leaves after the
// precompute phase.
func (n *CompressedLabelTree) Center() d3.Vec3 {
	return d3.NewVec3XYZ(n.PX, 0, n.PZ)
}

// AddNeighbor records a directed edge to other. Callers on both sides of the
// relation call this so the neighbour map stays symmetric (spec §4.4).
func (n *CompressedLabelTree) AddNeighbor(other *CompressedLabelTree) {
	if n.Neighbors == nil {
		n.Neighbors = make(map[uint64]*CompressedLabelTree)
	}
	n.Neighbors[other.ID] = other
}

// LabelMeta is the metadata attached to a connected-component id.
type LabelMeta struct {
	Node  *CompressedLabelTree // one representative leaf
	Layer terrain.Layer
	Area  float32 // sum of (C*AreaScale)^2 over the component's leaves

	NumExtractors   int32
	NumHydrocarbons int32

	ExtractorMarkers   []*terrain.Marker
	HydrocarbonMarkers []*terrain.Marker
}
