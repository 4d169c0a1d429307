package meshbuild

import "github.com/arl/navmesh/quadtree"

// edge identifies one of the four sides of a leaf's rectangle.
type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// BuildOrthogonalNeighbors runs phase 1 of neighbour discovery (spec §4.4)
// on every pathable leaf of grid. For each edge it probes just outside the
// leaf at a 0.5-cell offset, skipping forward by the found neighbour's side
// so the scan is O(perimeter / min(c)).
func BuildOrthogonalNeighbors(grid *quadtree.NavGrid, leaves []*quadtree.CompressedLabelTree) {
	for _, leaf := range leaves {
		if !leaf.IsPathable() {
			continue
		}
		scanEdge(grid, leaf, edgeTop)
		scanEdge(grid, leaf, edgeBottom)
		scanEdge(grid, leaf, edgeLeft)
		scanEdge(grid, leaf, edgeRight)
	}
}

func scanEdge(grid *quadtree.NavGrid, leaf *quadtree.CompressedLabelTree, e edge) {
	x1, z1, x2, z2 := float32(leaf.X1()), float32(leaf.Z1()), float32(leaf.X2()), float32(leaf.Z2())

	var probeFixed, scanStart, scanEnd float32
	horizontal := e == edgeTop || e == edgeBottom // scan varies x, probe z is fixed
	switch e {
	case edgeTop:
		probeFixed = z1 - 0.5
		scanStart, scanEnd = x1, x2
	case edgeBottom:
		probeFixed = z2 + 0.5
		scanStart, scanEnd = x1, x2
	case edgeLeft:
		probeFixed = x1 - 0.5
		scanStart, scanEnd = z1, z2
	case edgeRight:
		probeFixed = x2 + 0.5
		scanStart, scanEnd = z1, z2
	}

	for s := scanStart + 0.5; s < scanEnd; {
		var x, z float32
		if horizontal {
			x, z = s, probeFixed
		} else {
			x, z = probeFixed, s
		}

		other, ok := grid.FindLeafXZ(x, z)
		if !ok {
			break
		}
		if other.IsPathable() {
			leaf.AddNeighbor(other)
			other.AddNeighbor(leaf)
		}
		s += float32(other.C)
	}
}

// cornerProbe describes one of the four diagonal probes and the two
// orthogonal cells that share its corner.
type cornerProbe struct {
	px, pz             float32 // diagonal probe position
	adjAx, adjAz       float32 // first orthogonal adjacent probe
	adjBx, adjBz       float32 // second orthogonal adjacent probe
}

// BuildCornerNeighbors runs phase 2 of neighbour discovery (spec §4.4) on
// every pathable leaf of grid. It must run after BuildOrthogonalNeighbors
// has completed for every leaf of the layer, because the corner-cut rule
// inspects pathability only (labels do not exist yet at this point - spec
// §4.4, §9 "Corner-rule timing": this implementation keeps that source
// semantics deliberately, see DESIGN.md).
func BuildCornerNeighbors(grid *quadtree.NavGrid, leaves []*quadtree.CompressedLabelTree) {
	for _, leaf := range leaves {
		if !leaf.IsPathable() {
			continue
		}
		for _, cp := range cornerProbes(leaf) {
			adjA, okA := grid.FindLeafXZ(cp.adjAx, cp.adjAz)
			adjB, okB := grid.FindLeafXZ(cp.adjBx, cp.adjBz)
			if !okA || !okB || !adjA.IsPathable() || !adjB.IsPathable() {
				continue
			}

			diag, ok := grid.FindLeafXZ(cp.px, cp.pz)
			if !ok || !diag.IsPathable() {
				continue
			}
			leaf.AddNeighbor(diag)
			diag.AddNeighbor(leaf)
		}
	}
}

func cornerProbes(leaf *quadtree.CompressedLabelTree) [4]cornerProbe {
	x1, z1, x2, z2 := float32(leaf.X1()), float32(leaf.Z1()), float32(leaf.X2()), float32(leaf.Z2())
	return [4]cornerProbe{
		// top-left corner
		{px: x1 - 0.5, pz: z1 - 0.5, adjAx: x1 - 0.5, adjAz: z1 + 0.5, adjBx: x1 + 0.5, adjBz: z1 - 0.5},
		// top-right corner
		{px: x2 + 0.5, pz: z1 - 0.5, adjAx: x2 + 0.5, adjAz: z1 + 0.5, adjBx: x2 - 0.5, adjBz: z1 - 0.5},
		// bottom-left corner
		{px: x1 - 0.5, pz: z2 + 0.5, adjAx: x1 - 0.5, adjAz: z2 - 0.5, adjBx: x1 + 0.5, adjBz: z2 + 0.5},
		// bottom-right corner
		{px: x2 + 0.5, pz: z2 + 0.5, adjAx: x2 + 0.5, adjAz: z2 - 0.5, adjBx: x2 - 0.5, adjBz: z2 + 0.5},
	}
}
