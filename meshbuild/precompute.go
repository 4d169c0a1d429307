package meshbuild

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/arl/navmesh/quadtree"
)

// Precompute runs the two sweeps of spec §4.6 over leaves: first every
// pathable leaf gets its world-space centre, then every neighbour edge gets
// its (non-normalised) direction vector and Euclidean distance.
func Precompute(leaves []*quadtree.CompressedLabelTree) {
	for _, leaf := range leaves {
		if !leaf.IsPathable() {
			continue
		}
		leaf.PX = float32(leaf.X1()) + 0.5*float32(leaf.C)
		leaf.PZ = float32(leaf.Z1()) + 0.5*float32(leaf.C)
	}

	for _, leaf := range leaves {
		if !leaf.IsPathable() || len(leaf.Neighbors) == 0 {
			continue
		}
		leaf.NeighborDistances = make(map[uint64]float32, len(leaf.Neighbors))
		leaf.NeighborDirections = make(map[uint64]d3.Vec3, len(leaf.Neighbors))

		for id, n := range leaf.Neighbors {
			dx := n.PX - leaf.PX
			dz := n.PZ - leaf.PZ
			leaf.NeighborDirections[id] = d3.NewVec3XYZ(dx, 0, dz)
			leaf.NeighborDistances[id] = math32.Sqrt(dx*dx + dz*dz)
		}
	}
}
