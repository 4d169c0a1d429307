package meshbuild

import (
	"testing"

	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
	"github.com/stretchr/testify/assert"
)

func uniformRaster(side int32, v int8) [][]int8 {
	g := make([][]int8, side+1)
	for i := range g {
		row := make([]int8, side+1)
		for j := range row {
			row[j] = v
		}
		g[i] = row
	}
	return g
}

func TestCompressUniformRasterStaysOneLeaf(t *testing.T) {
	raster := uniformRaster(8, 0)
	ids := &IDAllocator{}
	stats := &CompressStats{}

	node := Compress(ids, terrain.Land, 0, 0, raster, 0, 0, 8, 2, stats)

	assert.True(t, node.IsLeaf())
	assert.EqualValues(t, 0, node.Label)
	assert.EqualValues(t, 0, stats.Subdivisions)
	assert.EqualValues(t, 1, stats.PathableLeafs)
}

func TestCompressSubdividesOnMixedRaster(t *testing.T) {
	raster := uniformRaster(8, 0)
	// make one quadrant impassable so the root cannot collapse.
	for z := int32(1); z <= 4; z++ {
		for x := int32(1); x <= 4; x++ {
			raster[z][x] = -1
		}
	}
	ids := &IDAllocator{}
	stats := &CompressStats{}

	node := Compress(ids, terrain.Land, 0, 0, raster, 0, 0, 8, 2, stats)

	assert.False(t, node.IsLeaf())
	assert.True(t, stats.Subdivisions >= 1)
	assert.EqualValues(t, quadtree.Impassable, node.Children[quadtree.TL].Label)
	assert.EqualValues(t, 0, node.Children[quadtree.BR].Label)
}

func TestCompressStopsAtThresholdEvenIfNotUniform(t *testing.T) {
	raster := uniformRaster(4, 0)
	raster[1][1] = -1 // single impassable cell inside the smallest allowed leaf

	ids := &IDAllocator{}
	stats := &CompressStats{}

	node := Compress(ids, terrain.Land, 0, 0, raster, 0, 0, 2, 2, stats)

	assert.True(t, node.IsLeaf())
	assert.EqualValues(t, quadtree.Impassable, node.Label, "non-uniform leaf at the threshold becomes impassable")
}

func TestIDAllocatorIsMonotonicAndUnique(t *testing.T) {
	ids := &IDAllocator{}
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		id := ids.Next()
		assert.False(t, seen[id], "id %d reused", id)
		seen[id] = true
	}
}
