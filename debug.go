package navmesh

import (
	"hash/fnv"

	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

// Color is a plain RGB triple; this module never touches a concrete
// rendering API, it only hands colours to whatever debug draw sink the host
// provides (spec §6).
type Color struct {
	R, G, B uint8
}

// LayerPalette gives every movement layer a fixed, distinct debug colour.
var LayerPalette = map[terrain.Layer]Color{
	terrain.Land:       {R: 80, G: 170, B: 80},
	terrain.Water:      {R: 60, G: 110, B: 220},
	terrain.Hover:      {R: 220, G: 170, B: 60},
	terrain.Amphibious: {R: 170, G: 100, B: 200},
	terrain.Air:        {R: 220, G: 220, B: 220},
}

// LabelColor hashes a component id to a stable, arbitrary debug colour so
// that the same label always draws the same way across frames.
func LabelColor(label int32) Color {
	if label <= 0 {
		return Color{R: 40, G: 40, B: 40}
	}
	h := fnv.New32a()
	h.Write([]byte{byte(label), byte(label >> 8), byte(label >> 16), byte(label >> 24)})
	sum := h.Sum32()
	return Color{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16)}
}

// DebugSink is the external diagnostic draw collaborator (spec §6). Host
// implementations batch these calls into whatever immediate/retained mode
// renderer the game uses; this module has no opinion on how.
type DebugSink interface {
	DrawLeaf(leaf *quadtree.CompressedLabelTree, c Color)
	DrawLabel(meta *quadtree.LabelMeta, c Color)
}

// DrawLayer feeds every leaf in leaves to sink, coloured by grid's layer, and
// every entry of labels once, coloured by its component id.
func DrawLayer(sink DebugSink, grid *quadtree.NavGrid, leaves []*quadtree.CompressedLabelTree, labels map[int32]*quadtree.LabelMeta) {
	layerColor := LayerPalette[grid.Layer]
	for _, leaf := range leaves {
		sink.DrawLeaf(leaf, layerColor)
	}
	for id, meta := range labels {
		sink.DrawLabel(meta, LabelColor(id))
	}
}
