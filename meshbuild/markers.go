package meshbuild

import (
	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

// BindMarkers resolves each marker against the Land and Amphibious grids
// and attaches it to the component label of the leaf it lands on (spec
// §4.7). It must run before Cull so culling can see which components
// contain resources.
//
// The source this module is modelled on increments NumExtractors (and
// appends to ExtractorMarkers) for hydrocarbon markers too, rather than a
// distinct hydrocarbon counter. spec §9 leaves this open; DESIGN.md records
// the decision to keep both source behaviours visible by tracking
// NumHydrocarbons/HydrocarbonMarkers separately while preserving the
// original's extractor-counts-everything behaviour for culling purposes.
func BindMarkers(landGrid, amphibiousGrid *quadtree.NavGrid, landLabels, amphibiousLabels map[int32]*quadtree.LabelMeta, markers []*terrain.Marker) {
	grids := [2]*quadtree.NavGrid{landGrid, amphibiousGrid}
	labelSets := [2]map[int32]*quadtree.LabelMeta{landLabels, amphibiousLabels}
	layers := [2]terrain.Layer{terrain.Land, terrain.Amphibious}

	for _, m := range markers {
		for i := range grids {
			leaf, ok := grids[i].FindLeaf(m.Position)
			if !ok || leaf.Label <= 0 {
				continue // spec §7 MissingMarkerLeaf: off-map or impassable, no error
			}

			meta := labelSets[i][leaf.Label]
			if meta == nil {
				continue
			}

			// Both mass and hydrocarbon markers count toward NumExtractors
			// and ExtractorMarkers, matching the source's behaviour; the
			// distinct hydrocarbon counters are additionally maintained so
			// callers can tell the two catalogues apart.
			meta.NumExtractors++
			meta.ExtractorMarkers = append(meta.ExtractorMarkers, m)
			if m.Kind == terrain.Hydrocarbon {
				meta.NumHydrocarbons++
				meta.HydrocarbonMarkers = append(meta.HydrocarbonMarkers, m)
			}

			if !m.Bound() {
				m.NavLabel = leaf.Label
				m.NavLayer = layers[i]
			}
		}
	}
}
