package meshbuild

import (
	"github.com/arl/math32"
	"github.com/arl/navmesh/terrain"
)

// Scratch holds the per-block caches the rasteriser reuses across every
// block and every layer of one Generate call (spec §4.1, §5, §9). Allocate
// once per call; never retain after it returns.
type Scratch struct {
	s int32 // block side length, in cells

	terrain [][]float32 // [1..s+1][1..s+1]
	depth   [][]float32 // [1..s+1][1..s+1]

	pxWalk [][]bool // [1..s+1][1..s]
	pzWalk [][]bool // [1..s][1..s+1]

	cellWalk  [][]bool    // [1..s][1..s]
	avgDepth  [][]float32 // [1..s][1..s]
	terrainOK [][]bool    // [1..s][1..s]

	raster [terrain.NumLayers][][]int8 // [1..s][1..s], one per layer
}

// grid2 allocates a (rows+1) x (cols+1) grid so that 1-based indices up to
// rows/cols are valid without ever touching index 0.
func grid2Bool(rows, cols int32) [][]bool {
	g := make([][]bool, rows+1)
	for i := range g {
		g[i] = make([]bool, cols+1)
	}
	return g
}

func grid2Float(rows, cols int32) [][]float32 {
	g := make([][]float32, rows+1)
	for i := range g {
		g[i] = make([]float32, cols+1)
	}
	return g
}

func grid2Int8(rows, cols int32) [][]int8 {
	g := make([][]int8, rows+1)
	for i := range g {
		g[i] = make([]int8, cols+1)
	}
	return g
}

// NewScratch allocates the eight scratch caches for blocks of side
// blockSize. The returned Scratch is reused across every block of a
// Generate call.
func NewScratch(blockSize int32) *Scratch {
	s := &Scratch{s: blockSize}
	s.terrain = grid2Float(blockSize+1, blockSize+1)
	s.depth = grid2Float(blockSize+1, blockSize+1)
	s.pxWalk = grid2Bool(blockSize+1, blockSize)
	s.pzWalk = grid2Bool(blockSize, blockSize+1)
	s.cellWalk = grid2Bool(blockSize, blockSize)
	s.avgDepth = grid2Float(blockSize, blockSize)
	s.terrainOK = grid2Bool(blockSize, blockSize)
	for i := range s.raster {
		s.raster[i] = grid2Int8(blockSize, blockSize)
	}
	return s
}

// BuildBlockRasters fills s's caches for the block whose top-left world
// corner is (bx, bz), then derives the five per-layer pathability matrices
// (spec §4.1). The returned slice is s.raster itself: callers must consume
// it before the next call overwrites it.
func BuildBlockRasters(oracle terrain.Heightmap, bx, bz int32, s *Scratch) *[terrain.NumLayers][][]int8 {
	S := s.s

	for z := int32(1); z <= S+1; z++ {
		for x := int32(1); x <= S+1; x++ {
			th := oracle.TerrainHeight(bx+x-1, bz+z-1)
			sh := oracle.SurfaceHeight(bx+x-1, bz+z-1)
			s.terrain[z][x] = th
			s.depth[z][x] = sh - th
		}
	}

	for z := int32(1); z <= S+1; z++ {
		for x := int32(1); x <= S; x++ {
			s.pxWalk[z][x] = math32.Abs(s.terrain[z][x]-s.terrain[z][x+1]) < terrain.MaxHeightDiff
		}
	}
	for z := int32(1); z <= S; z++ {
		for x := int32(1); x <= S+1; x++ {
			s.pzWalk[z][x] = math32.Abs(s.terrain[z][x]-s.terrain[z+1][x]) < terrain.MaxHeightDiff
		}
	}

	for z := int32(1); z <= S; z++ {
		for x := int32(1); x <= S; x++ {
			s.cellWalk[z][x] = s.pxWalk[z][x] && s.pzWalk[z][x] && s.pxWalk[z+1][x] && s.pzWalk[z][x+1]
			s.avgDepth[z][x] = (s.depth[z][x] + s.depth[z][x+1] + s.depth[z+1][x] + s.depth[z+1][x+1]) / 4
			s.terrainOK[z][x] = !oracle.TerrainType(bx+x, bz+z).Blocking
		}
	}

	for z := int32(1); z <= S; z++ {
		for x := int32(1); x <= S; x++ {
			walk := s.cellWalk[z][x]
			depth := s.avgDepth[z][x]
			// A NaN height or surface sample (an oracle fault) leaves depth
			// NaN; such a cell is impassable on every layer but Air.
			ok := s.terrainOK[z][x] && depth == depth

			s.raster[terrain.Land][z][x] = pathable(depth <= 0 && ok && walk)
			s.raster[terrain.Hover][z][x] = pathable(ok && (depth >= terrain.HoverMinDepth || walk))
			s.raster[terrain.Water][z][x] = pathable(depth >= terrain.MinWaterDepthNaval && ok)
			s.raster[terrain.Amphibious][z][x] = pathable(depth <= terrain.MaxWaterDepthAmphibious && ok && walk)
			s.raster[terrain.Air][z][x] = 0
		}
	}

	return &s.raster
}

func pathable(ok bool) int8 {
	if ok {
		return 0
	}
	return -1
}
