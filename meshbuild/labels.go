package meshbuild

import (
	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

// LabelAllocator hands out component ids, monotonic across every layer of
// one Generate call (spec §4.5).
type LabelAllocator struct {
	next int32
}

// Next returns a fresh, globally unique component id (always > 0).
func (a *LabelAllocator) Next() int32 {
	a.next++
	return a.next
}

// LabelWarning is emitted when the DFS below encounters a neighbour that
// already carries a different positive label than the one being flooded
// (spec §7's InternalInconsistency): a symptom of a neighbour-symmetry bug
// elsewhere. The algorithm does not overwrite the existing label.
type LabelWarning struct {
	Layer             terrain.Layer
	NodeID, NeighborID uint64
	Label, OtherLabel int32
}

// BuildLabels assigns connected-component ids to every pathable, unassigned
// leaf of leaves using an iterative DFS with an explicit stack (spec §4.5,
// §9: recursion risks stack overflow on large maps). It returns the
// metadata keyed by label id and any internal-inconsistency warnings
// observed along the way.
func BuildLabels(layer terrain.Layer, leaves []*quadtree.CompressedLabelTree, ids *LabelAllocator) (map[int32]*quadtree.LabelMeta, []LabelWarning) {
	labels := make(map[int32]*quadtree.LabelMeta)
	var warnings []LabelWarning

	var stack []*quadtree.CompressedLabelTree

	for _, leaf := range leaves {
		if !leaf.IsPathable() || leaf.Label != quadtree.Unassigned {
			continue
		}

		id := ids.Next()
		meta := &quadtree.LabelMeta{Node: leaf, Layer: layer}
		labels[id] = meta

		leaf.Label = id
		meta.Area += leafArea(leaf)

		stack = stack[:0]
		stack = pushUnassignedNeighbors(stack, leaf)

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.Label == id {
				continue // already queued twice via two different parents
			}
			if n.Label > 0 {
				warnings = append(warnings, LabelWarning{
					Layer: layer, NodeID: leaf.ID, NeighborID: n.ID,
					Label: id, OtherLabel: n.Label,
				})
				continue
			}

			n.Label = id
			meta.Area += leafArea(n)
			stack = pushUnassignedNeighbors(stack, n)
		}
	}

	return labels, warnings
}

// pushUnassignedNeighbors pushes leaf's unassigned neighbours, plus any
// neighbour already carrying a different positive label, so that the drain
// loop in BuildLabels reports the latter as a LabelWarning.
func pushUnassignedNeighbors(stack []*quadtree.CompressedLabelTree, leaf *quadtree.CompressedLabelTree) []*quadtree.CompressedLabelTree {
	for _, n := range leaf.Neighbors {
		if n.Label == quadtree.Unassigned || (n.Label > 0 && n.Label != leaf.Label) {
			stack = append(stack, n)
		}
	}
	return stack
}

func leafArea(leaf *quadtree.CompressedLabelTree) float32 {
	side := float32(leaf.C) * terrain.AreaScale
	return side * side
}
