// Package navmesh builds a multi-layer navigation mesh for a heightmap-based
// map: a compressed quadtree spatial index per movement layer, plus a
// connectivity graph whose nodes carry a connected-component label.
//
// Mesh is the facade consumers use. Everything else (package quadtree, the
// runtime index; package meshbuild, the construction pipeline; package
// terrain, the external contract) is orchestrated from here.
package navmesh

import (
	"fmt"

	"github.com/arl/navmesh/meshbuild"
	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

// Mesh is the top-level navigation mesh for one map. It is built once per
// map load by Generate and is immutable afterwards, except that Label
// fields may be set to quadtree.Impassable by culling and marker reference
// counts are mutated by the binder (spec §3 Lifecycle).
type Mesh struct {
	oracle  terrain.Heightmap
	markers terrain.MarkerSource
	ctx     *BuildContext

	mapSize int32

	generated bool

	navGrids     map[terrain.Layer]*quadtree.NavGrid
	navLabels    map[terrain.Layer]map[int32]*quadtree.LabelMeta
	navLayerData map[terrain.Layer]*NavLayerData
}

// New returns a Mesh ready to Generate from oracle and markers. mapSize is
// read once at construction time; spec.md treats the scenario loader that
// supplies it as an external collaborator.
func New(oracle terrain.Heightmap, markers terrain.MarkerSource) *Mesh {
	return &Mesh{
		oracle:  oracle,
		markers: markers,
		ctx:     NewBuildContext(true),
		mapSize: oracle.MapSize(),
	}
}

// BuildContext returns the mesh's logging/timing context, populated after
// the most recent Generate call.
func (m *Mesh) BuildContext() *BuildContext { return m.ctx }

// IsGenerated reports whether Generate has ever published a mesh.
func (m *Mesh) IsGenerated() bool { return m.generated }

// NavGrid returns the NavGrid for layer, if a mesh has been generated.
func (m *Mesh) NavGrid(layer terrain.Layer) (*quadtree.NavGrid, bool) {
	g, ok := m.navGrids[layer]
	return g, ok
}

// NavLabel returns the label metadata for id on layer.
func (m *Mesh) NavLabel(layer terrain.Layer, id int32) (*quadtree.LabelMeta, bool) {
	meta, ok := m.navLabels[layer][id]
	return meta, ok
}

// NavLayerData returns the published stats snapshot for layer.
func (m *Mesh) NavLayerData(layer terrain.Layer) (*NavLayerData, bool) {
	d, ok := m.navLayerData[layer]
	return d, ok
}

// Generate (re)builds the navigation mesh from the current oracle and
// marker state, in the strict phase order of spec §4.9/§5: rasterise and
// compress, orthogonal neighbours (every layer), corner neighbours (every
// layer), labels, precompute, bind markers, cull.
//
// Generate is idempotent over its inputs: calling it again replaces the
// previous mesh with a freshly built one (spec §6). If validation fails the
// previous mesh, if any, is left untouched and a wrapped
// terrain.ErrInvalidInput is returned (spec §7).
func (m *Mesh) Generate() error {
	blockSize, threshold, err := meshbuild.ValidateMapSize(m.mapSize)
	if err != nil {
		return err
	}

	ctx := m.ctx
	ctx.ResetLog()
	ctx.ResetTimers()
	ctx.Progressf("generating navmesh: map=%d block=%d threshold=%d", m.mapSize, blockSize, threshold)

	grids := make(map[terrain.Layer]*quadtree.NavGrid, terrain.NumLayers)
	for _, layer := range terrain.Layers {
		grids[layer] = quadtree.NewNavGrid(layer, blockSize, terrain.BlocksPerAxis)
	}

	ids := &meshbuild.IDAllocator{}
	compressStats := make(map[terrain.Layer]*meshbuild.CompressStats, terrain.NumLayers)
	for _, layer := range terrain.Layers {
		compressStats[layer] = &meshbuild.CompressStats{}
	}

	scratch := meshbuild.NewScratch(blockSize)

	ctx.StartTimer(PhaseRasterize)
	ctx.StartTimer(PhaseCompress)
	for bz := int32(0); bz < terrain.BlocksPerAxis; bz++ {
		for bx := int32(0); bx < terrain.BlocksPerAxis; bx++ {
			blockX := bx * blockSize
			blockZ := bz * blockSize

			rasters := meshbuild.BuildBlockRasters(m.oracle, blockX, blockZ, scratch)
			for _, layer := range terrain.Layers {
				th := threshold
				if layer == terrain.Water {
					th = threshold * 2
				}
				root := meshbuild.Compress(ids, layer, blockX, blockZ, rasters[layer], 0, 0, blockSize, th, compressStats[layer])
				grids[layer].Trees[bz][bx] = root
			}
		}
	}
	ctx.StopTimer(PhaseCompress)
	ctx.StopTimer(PhaseRasterize)

	leaves := make(map[terrain.Layer][]*quadtree.CompressedLabelTree, terrain.NumLayers)

	ctx.StartTimer(PhaseOrthogonal)
	for _, layer := range terrain.Layers {
		leaves[layer] = meshbuild.LayerLeaves(grids[layer])
		meshbuild.BuildOrthogonalNeighbors(grids[layer], leaves[layer])
	}
	ctx.StopTimer(PhaseOrthogonal)

	ctx.StartTimer(PhaseCorner)
	for _, layer := range terrain.Layers {
		meshbuild.BuildCornerNeighbors(grids[layer], leaves[layer])
	}
	ctx.StopTimer(PhaseCorner)

	labelIDs := &meshbuild.LabelAllocator{}
	labels := make(map[terrain.Layer]map[int32]*quadtree.LabelMeta, terrain.NumLayers)

	ctx.StartTimer(PhaseLabel)
	for _, layer := range terrain.Layers {
		ls, warnings := meshbuild.BuildLabels(layer, leaves[layer], labelIDs)
		labels[layer] = ls
		for _, w := range warnings {
			ctx.Warningf("label %s: leaf %d tried to flood neighbor %d already labelled %d (expected %d)",
				layer, w.NodeID, w.NeighborID, w.OtherLabel, w.Label)
		}
	}
	ctx.StopTimer(PhaseLabel)

	ctx.StartTimer(PhasePrecompute)
	for _, layer := range terrain.Layers {
		meshbuild.Precompute(leaves[layer])
	}
	ctx.StopTimer(PhasePrecompute)

	ctx.StartTimer(PhaseBind)
	if m.markers != nil {
		var all []*terrain.Marker
		all = append(all, m.markers.MarkersOfType(terrain.Mass)...)
		all = append(all, m.markers.MarkersOfType(terrain.Hydrocarbon)...)
		meshbuild.BindMarkers(grids[terrain.Land], grids[terrain.Amphibious], labels[terrain.Land], labels[terrain.Amphibious], all)
	}
	ctx.StopTimer(PhaseBind)

	cullStats := make(map[terrain.Layer]meshbuild.CullStats, terrain.NumLayers)
	ctx.StartTimer(PhaseCull)
	for _, layer := range terrain.Layers {
		cullStats[layer] = meshbuild.Cull(labels[layer])
	}
	ctx.StopTimer(PhaseCull)

	navLayerData := make(map[terrain.Layer]*NavLayerData, terrain.NumLayers)
	for _, layer := range terrain.Layers {
		var neighbors int64
		for _, leaf := range leaves[layer] {
			neighbors += int64(len(leaf.Neighbors))
		}
		navLayerData[layer] = &NavLayerData{
			Layer:           layer,
			PathableLeafs:   compressStats[layer].PathableLeafs,
			UnpathableLeafs: compressStats[layer].UnpathableLeafs,
			Subdivisions:    compressStats[layer].Subdivisions,
			Neighbors:       neighbors,
			Labels:          int64(len(labels[layer])),
			Culled:          int64(cullStats[layer].Culled),
		}
		ctx.Progressf("%s", statLine(navLayerData[layer]))
	}

	m.navGrids = grids
	m.navLabels = labels
	m.navLayerData = navLayerData
	m.generated = true
	return nil
}

func statLine(d *NavLayerData) string {
	return fmt.Sprintf("%-10s leafs=%d/%d subdivisions=%d neighbors=%d labels=%d culled=%d",
		d.Layer, d.PathableLeafs, d.UnpathableLeafs, d.Subdivisions, d.Neighbors, d.Labels, d.Culled)
}
