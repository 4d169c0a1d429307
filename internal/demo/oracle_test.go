package demo

import (
	"testing"

	"github.com/arl/navmesh/terrain"
	"github.com/stretchr/testify/assert"
)

func TestOracleLakeCenterIsDeepWater(t *testing.T) {
	o := NewOracle(256)
	center := o.MapSize() / 2
	depth := o.SurfaceHeight(center, center) - o.TerrainHeight(center, center)
	assert.True(t, depth > 7, "lake center should be close to its 8-unit maximum depth, got %v", depth)
}

func TestOracleOutsideLakeRadiusIsDry(t *testing.T) {
	o := NewOracle(256)
	depth := o.SurfaceHeight(1, 1) - o.TerrainHeight(1, 1)
	assert.Zero(t, depth)
}

func TestOracleRidgeBlocksDiagonalCells(t *testing.T) {
	o := NewOracle(256)
	assert.True(t, o.TerrainType(10, 10).Blocking)
	assert.False(t, o.TerrainType(10, 11).Blocking)
}

func TestMarkersReturnsByKind(t *testing.T) {
	m := NewMarkers(256)
	assert.Len(t, m.MarkersOfType(terrain.Mass), 2)
	assert.Len(t, m.MarkersOfType(terrain.Hydrocarbon), 1)
}
