package cmd

import (
	"fmt"
	"sort"

	"github.com/arl/navmesh/terrain"
	"github.com/spf13/cobra"
)

// inspectCmd builds the same demo mesh as generateCmd, then dumps the
// structured field map of each layer's NavLayerData (exercising
// NavLayerData.Fields / github.com/fatih/structs).
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "dump per-layer navmesh stats as structured fields",
	RunE:  runInspect,
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&settingsPath, "config", "", "build settings file (optional)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	settings := NewSettings()
	if settingsPath != "" {
		if err := unmarshalYAMLFile(settingsPath, &settings); err != nil {
			return fmt.Errorf("reading settings: %w", err)
		}
	}

	mesh, err := buildDemoMesh(settings)
	if err != nil {
		return err
	}

	for _, layer := range terrain.Layers {
		data, _ := mesh.NavLayerData(layer)
		fmt.Println(layer)

		fields := data.Fields()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-16s %v\n", k, fields[k])
		}
	}
	return nil
}
