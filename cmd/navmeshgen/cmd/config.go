package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd writes a build settings template in YAML format.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default
values.

If FILE is not provided, 'navmeshgen.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "navmeshgen.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted:", err)
			}
			return
		}

		if err := marshalYAMLFile(path, NewSettings()); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
