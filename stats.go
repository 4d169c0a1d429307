package navmesh

import (
	"github.com/arl/navmesh/terrain"
	"github.com/fatih/structs"
)

// NavLayerData is the per-layer snapshot Generate publishes for UI/debug
// consumers (spec §4.9, §6).
type NavLayerData struct {
	Layer           terrain.Layer
	PathableLeafs   int64
	UnpathableLeafs int64
	Subdivisions    int64
	Neighbors       int64
	Labels          int64
	Culled          int64
}

// Fields exposes NavLayerData as a string-keyed map, for UI and CLI
// consumers that want to render or log the stats without reflecting on the
// struct themselves.
func (d *NavLayerData) Fields() map[string]interface{} {
	return structs.Map(d)
}
