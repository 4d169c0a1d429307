package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerString(t *testing.T) {
	tests := []struct {
		layer Layer
		want  string
	}{
		{Land, "Land"},
		{Water, "Water"},
		{Hover, "Hover"},
		{Amphibious, "Amphibious"},
		{Air, "Air"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.layer.String())
	}
}

func TestLayersCoversAllLayers(t *testing.T) {
	assert.Len(t, Layers, NumLayers)
	seen := map[Layer]bool{}
	for _, l := range Layers {
		seen[l] = true
	}
	for _, l := range []Layer{Land, Water, Hover, Amphibious, Air} {
		assert.True(t, seen[l], "Layers should contain %s", l)
	}
}

func TestCompressionThreshold(t *testing.T) {
	tests := []struct {
		mapSize int32
		want    int32
	}{
		{1, 2},
		{1024, 2},
		{1025, 4},
		{4096, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompressionThreshold(tt.mapSize))
	}
}

func TestMarkerBound(t *testing.T) {
	m := &Marker{Kind: Mass}
	assert.False(t, m.Bound())

	m.NavLabel = 3
	assert.True(t, m.Bound())
}
