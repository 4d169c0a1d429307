// Command dbg is a small scratch program exercising Mesh.Generate, leaf
// lookups and the debug draw sink against the synthetic demo map, for use
// while developing this module.
package main

import (
	"fmt"
	"log"

	"github.com/arl/assertgo"
	"github.com/arl/navmesh"
	"github.com/arl/navmesh/internal/demo"
	"github.com/arl/navmesh/meshbuild"
	"github.com/arl/navmesh/quadtree"
	"github.com/arl/navmesh/terrain"
)

type consoleSink struct {
	leafs, labels int
}

func (s *consoleSink) DrawLeaf(leaf *quadtree.CompressedLabelTree, c navmesh.Color) {
	s.leafs++
}

func (s *consoleSink) DrawLabel(meta *quadtree.LabelMeta, c navmesh.Color) {
	s.labels++
}

func main() {
	const mapSize = 256

	oracle := demo.NewOracle(mapSize)
	markers := demo.NewMarkers(mapSize)

	mesh := navmesh.New(oracle, markers)
	if err := mesh.Generate(); err != nil {
		log.Fatalln("generate failed:", err)
	}
	assert.True(mesh.IsGenerated(), "mesh should report generated after a successful Generate")

	land, ok := mesh.NavGrid(terrain.Land)
	if !ok {
		log.Fatalln("no Land grid published")
	}

	leaf, ok := land.FindLeafXZ(mapSize/2+1, mapSize/2+1)
	if !ok {
		log.Fatalln("lookup at map center failed")
	}
	fmt.Printf("leaf at center: id=%d label=%d side=%d centre=(%.1f,%.1f)\n",
		leaf.ID, leaf.Label, leaf.C, leaf.PX, leaf.PZ)

	for _, layer := range terrain.Layers {
		data, _ := mesh.NavLayerData(layer)
		fmt.Println(layer, data.Fields())
	}

	grid, _ := mesh.NavGrid(terrain.Land)
	sink := &consoleSink{}
	leaves := meshbuild.LayerLeaves(grid)
	labels := map[int32]*quadtree.LabelMeta{}
	for _, leaf := range leaves {
		if leaf.Label > 0 {
			if meta, ok := mesh.NavLabel(terrain.Land, leaf.Label); ok {
				labels[leaf.Label] = meta
			}
		}
	}
	navmesh.DrawLayer(sink, grid, leaves, labels)
	fmt.Printf("drew %d leafs, %d labels\n", sink.leafs, sink.labels)
}
