package navmesh

import (
	"testing"

	"github.com/arl/navmesh/terrain"
	"github.com/stretchr/testify/assert"
)

func TestNavLayerDataFieldsExposesAllCounters(t *testing.T) {
	d := &NavLayerData{
		Layer: terrain.Land, PathableLeafs: 10, UnpathableLeafs: 2,
		Subdivisions: 3, Neighbors: 20, Labels: 4, Culled: 1,
	}

	fields := d.Fields()

	assert.EqualValues(t, 10, fields["PathableLeafs"])
	assert.EqualValues(t, 4, fields["Labels"])
	assert.EqualValues(t, 1, fields["Culled"])
}
