package terrain

import "github.com/arl/gogeo/f32/d3"

// MarkerKind distinguishes the two resource marker catalogues the binder
// cares about (spec §4.7).
type MarkerKind int8

const (
	Mass MarkerKind = iota
	Hydrocarbon
)

// Marker is a resource marker placed on the map by the scenario. NavLabel and
// NavLayer are written by the marker binder (meshbuild.BindMarkers); they
// start unset (NavLabel == 0, since component labels are always > 0) and are
// filled in the first time the marker resolves to a labelled leaf.
type Marker struct {
	Kind     MarkerKind
	Position d3.Vec3

	NavLabel int32
	NavLayer Layer
}

// Bound reports whether the binder has already attached this marker to a
// component label.
func (m *Marker) Bound() bool {
	return m.NavLabel > 0
}

// MarkerSource is the external marker catalogue (mass/hydrocarbon
// positions), supplied by the scenario loader.
type MarkerSource interface {
	MarkersOfType(kind MarkerKind) []*Marker
}
