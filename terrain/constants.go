package terrain

// Tunable constants baked into the pathability contract (spec §6). Changing
// any of these changes the mesh that Generate produces.
const (
	// BlocksPerAxis is the number of quadtree roots per map axis. The map is
	// partitioned into BlocksPerAxis*BlocksPerAxis disjoint blocks.
	BlocksPerAxis = 16

	// MaxHeightDiff is the maximum corner-height delta that still counts as
	// horizontally/vertically walkable.
	MaxHeightDiff float32 = 0.75

	// MinWaterDepthNaval is the minimum average water depth a Water-layer
	// cell must have to be pathable.
	MinWaterDepthNaval float32 = 1.5

	// MaxWaterDepthAmphibious is the maximum average water depth an
	// Amphibious-layer cell may have and still be pathable.
	MaxWaterDepthAmphibious float32 = 25

	// HoverMinDepth is the average depth at or above which Hover pathability no
	// longer requires cell_walk (spec §4.1).
	HoverMinDepth float32 = 1

	// CullingAreaThreshold is the component area (world-scale, see AreaScale)
	// below which a resource-free component is culled.
	CullingAreaThreshold float32 = 0.2

	// AreaScale converts a leaf side length in cells to the world-scale unit
	// used for component area accounting: area contribution = (C*AreaScale)^2.
	AreaScale float32 = 0.01

	// SmallMapThreshold is the map side length (in cells) at or below which
	// CompressionThreshold uses the smaller value.
	SmallMapThreshold = 1024
)

// CompressionThreshold returns the minimum quadtree leaf side, in cells, for
// a map of the given size. Water uses twice this value (spec §4.2).
func CompressionThreshold(mapSize int32) int32 {
	if mapSize <= SmallMapThreshold {
		return 2
	}
	return 4
}
