// Package demo provides a synthetic heightmap and marker catalogue so
// cmd/navmeshgen and internal/dbg have something to build a mesh from
// without a real scenario loader. It is not part of this module's public
// API: spec.md treats the heightmap oracle and marker catalogue as external
// collaborators supplied by the host game.
package demo

import (
	"math"

	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/navmesh/terrain"
)

// Oracle is a flat island with a circular lake and a diagonal impassable
// ridge, large enough to exercise every movement layer's predicate.
type Oracle struct {
	size int32

	lakeCenter [2]float32
	lakeRadius float32
}

// NewOracle returns an Oracle for a mapSize x mapSize map. mapSize must be a
// positive multiple of terrain.BlocksPerAxis.
func NewOracle(mapSize int32) *Oracle {
	return &Oracle{
		size:       mapSize,
		lakeCenter: [2]float32{float32(mapSize) * 0.5, float32(mapSize) * 0.5},
		lakeRadius: float32(mapSize) * 0.2,
	}
}

func (o *Oracle) MapSize() int32 { return o.size }

func (o *Oracle) distToLakeCenter(x, z int32) float32 {
	dx := float32(x) - o.lakeCenter[0]
	dz := float32(z) - o.lakeCenter[1]
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// TerrainHeight is flat ground everywhere; the lake is carved out via
// SurfaceHeight instead, so depth (surface - terrain) is what varies.
func (o *Oracle) TerrainHeight(x, z int32) float32 {
	return 0
}

// SurfaceHeight returns a bowl-shaped water depth inside the lake radius,
// and 0 (no standing water) outside it.
func (o *Oracle) SurfaceHeight(x, z int32) float32 {
	d := o.distToLakeCenter(x, z)
	if d >= o.lakeRadius {
		return 0
	}
	depth := (o.lakeRadius - d) / o.lakeRadius * 8 // up to 8 units deep at the center
	return depth
}

// TerrainType blocks a one-cell-wide diagonal ridge across the north-west
// quadrant, purely to exercise the corner-cut rule.
func (o *Oracle) TerrainType(x, z int32) terrain.TerrainType {
	if x >= 0 && x < o.size/2 && z >= 0 && z < o.size/2 && x == z {
		return terrain.TerrainType{Blocking: true}
	}
	return terrain.TerrainType{}
}

// Markers is a tiny mass/hydrocarbon catalogue placed on dry land near the
// lake shore.
type Markers struct {
	mass        []*terrain.Marker
	hydrocarbon []*terrain.Marker
}

// NewMarkers returns markers positioned relative to a mapSize x mapSize map
// built from the matching Oracle.
func NewMarkers(mapSize int32) *Markers {
	half := float32(mapSize) * 0.5
	return &Markers{
		mass: []*terrain.Marker{
			{Kind: terrain.Mass, Position: d3.NewVec3XYZ(half+float32(mapSize)*0.3, 0, half)},
			{Kind: terrain.Mass, Position: d3.NewVec3XYZ(half, 0, half+float32(mapSize)*0.3)},
		},
		hydrocarbon: []*terrain.Marker{
			{Kind: terrain.Hydrocarbon, Position: d3.NewVec3XYZ(half-float32(mapSize)*0.3, 0, half)},
		},
	}
}

func (m *Markers) MarkersOfType(kind terrain.MarkerKind) []*terrain.Marker {
	switch kind {
	case terrain.Mass:
		return m.mass
	case terrain.Hydrocarbon:
		return m.hydrocarbon
	default:
		return nil
	}
}
