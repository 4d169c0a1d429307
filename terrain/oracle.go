package terrain

// TerrainType carries the blocking flag a cell's terrain type contributes to
// pathability, independent of height/water.
type TerrainType struct {
	Blocking bool
}

// Heightmap is the external collaborator supplying per-cell terrain and
// water data. Implementations are provided by the scenario/map loader; this
// module never constructs one itself. Coordinates are integer world cells.
type Heightmap interface {
	// TerrainHeight returns the terrain (ground) height at (x, z). Called at
	// integer corners, including one cell of padding outside a block.
	TerrainHeight(x, z int32) float32

	// SurfaceHeight returns the water surface height at (x, z). Surface is
	// always >= terrain height; the difference is water depth.
	SurfaceHeight(x, z int32) float32

	// TerrainType returns the terrain type at (x, z).
	TerrainType(x, z int32) TerrainType

	// MapSize returns the side length of the map, in cells.
	MapSize() int32
}
