package meshbuild

import (
	"fmt"

	"github.com/arl/navmesh/terrain"
)

// ValidateMapSize checks the two structural preconditions of spec §7's
// InvalidInput: the map size must be a positive multiple of BlocksPerAxis,
// and the compression threshold must divide the resulting block size.
func ValidateMapSize(mapSize int32) (blockSize, threshold int32, err error) {
	if mapSize <= 0 || mapSize%terrain.BlocksPerAxis != 0 {
		return 0, 0, fmt.Errorf("map size %d is not a positive multiple of BlocksPerAxis (%d): %w",
			mapSize, terrain.BlocksPerAxis, terrain.ErrInvalidInput)
	}

	blockSize = mapSize / terrain.BlocksPerAxis
	threshold = terrain.CompressionThreshold(mapSize)
	if blockSize%threshold != 0 {
		return 0, 0, fmt.Errorf("compression threshold %d does not divide block size %d: %w",
			threshold, blockSize, terrain.ErrInvalidInput)
	}

	return blockSize, threshold, nil
}
