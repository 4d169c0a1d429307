package cmd

// Settings holds the tunables a scenario author can override before
// generating a mesh. Unlike the contract constants in package terrain
// (which change the mesh format itself), these only pick which demo map to
// build.
type Settings struct {
	MapSize int32 `yaml:"map_size"`
}

// NewSettings returns a Settings struct prefilled with a reasonable default
// map size: large enough to exercise several quadtree levels, small enough
// to build instantly.
func NewSettings() Settings {
	return Settings{
		MapSize: 256,
	}
}
