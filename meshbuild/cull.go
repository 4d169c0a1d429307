package meshbuild

import (
	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

// CullStats reports how many components were removed by Cull.
type CullStats struct {
	Culled int32
}

// Cull removes every component whose area is below
// terrain.CullingAreaThreshold and that contains no extractor or
// hydrocarbon markers (spec §4.8). Removal flood-fills Label = Impassable
// over the representative leaf and every transitively reachable pathable
// neighbour, using an explicit stack (spec §9: recursion risks stack
// overflow). Neighbour lists themselves are left untouched; downstream
// consumers filter on Label >= 0 at query time.
func Cull(labels map[int32]*quadtree.LabelMeta) CullStats {
	var stats CullStats
	var stack []*quadtree.CompressedLabelTree

	for id, meta := range labels {
		if meta.Area >= terrain.CullingAreaThreshold {
			continue
		}
		if meta.NumExtractors > 0 || meta.NumHydrocarbons > 0 {
			continue
		}

		stats.Culled++
		stack = stack[:0]
		stack = append(stack, meta.Node)

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.Label != id {
				continue
			}
			n.Label = quadtree.Impassable
			for _, nb := range n.Neighbors {
				if nb.Label == id {
					stack = append(stack, nb)
				}
			}
		}
	}

	return stats
}
