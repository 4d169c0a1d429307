package meshbuild

import (
	"github.com/arl/assertgo"
	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

// IDAllocator hands out identifiers unique across every tree of every layer
// of one Generate call (spec §3, §4.5: "Label ids are globally monotonic
// across layers" applies the same way to node identifiers).
type IDAllocator struct {
	next uint64
}

// Next returns a fresh, globally unique identifier.
func (a *IDAllocator) Next() uint64 {
	a.next++
	return a.next
}

// CompressStats accumulates the counters Mesh.Generate publishes in
// NavLayerData (spec §4.9).
type CompressStats struct {
	PathableLeafs   int64
	UnpathableLeafs int64
	Subdivisions    int64
}

// Compress recursively subdivides a block's raster into uniform leaves,
// honouring threshold as the minimum leaf side (spec §4.2). raster indices
// are 1-based as produced by BuildBlockRasters; ox, oz, c are in the same
// cell coordinate space.
func Compress(ids *IDAllocator, layer terrain.Layer, bx, bz int32, raster [][]int8, ox, oz, c, threshold int32, stats *CompressStats) *quadtree.CompressedLabelTree {
	assert.True(c > 0 && c&(c-1) == 0, "leaf side %d must be a power of two", c)

	node := &quadtree.CompressedLabelTree{
		ID:    ids.Next(),
		Layer: layer,
		BX:    bx,
		BZ:    bz,
		OX:    ox,
		OZ:    oz,
		C:     c,
	}

	v := raster[oz+1][ox+1]
	uniform := isUniform(raster, ox, oz, c, v)

	if c <= threshold {
		if uniform {
			node.Label = int32(v)
		} else {
			node.Label = quadtree.Impassable
		}
		if node.Label == quadtree.Impassable {
			stats.UnpathableLeafs++
		} else {
			stats.PathableLeafs++
		}
		return node
	}

	if uniform {
		node.Label = int32(v)
		if node.Label == quadtree.Impassable {
			stats.UnpathableLeafs++
		} else {
			stats.PathableLeafs++
		}
		return node
	}

	stats.Subdivisions++
	h := c / 2
	node.Children[quadtree.TL] = Compress(ids, layer, bx, bz, raster, ox, oz, h, threshold, stats)
	node.Children[quadtree.TR] = Compress(ids, layer, bx, bz, raster, ox+h, oz, h, threshold, stats)
	node.Children[quadtree.BL] = Compress(ids, layer, bx, bz, raster, ox, oz+h, h, threshold, stats)
	node.Children[quadtree.BR] = Compress(ids, layer, bx, bz, raster, ox+h, oz+h, h, threshold, stats)
	return node
}

// isUniform reports whether every cell in [oz+1, oz+c] x [ox+1, ox+c] of
// raster equals v.
func isUniform(raster [][]int8, ox, oz, c int32, v int8) bool {
	for z := oz + 1; z <= oz+c; z++ {
		row := raster[z]
		for x := ox + 1; x <= ox+c; x++ {
			if row[x] != v {
				return false
			}
		}
	}
	return true
}
