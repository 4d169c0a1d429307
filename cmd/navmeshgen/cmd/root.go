package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "navmeshgen",
	Short: "build and inspect multi-layer navigation meshes",
	Long: `navmeshgen drives this module's mesh builder from the command line:
	- generate a navigation mesh for a demo map and print its stats,
	- write a build settings template (YAML),
	- inspect per-layer leaf/label counts of a freshly built mesh.`,
}

// Execute adds every child command to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
