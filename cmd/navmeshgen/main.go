// Command navmeshgen builds and inspects multi-layer navigation meshes for
// demo maps from the command line.
package main

import "github.com/arl/navmesh/cmd/navmeshgen/cmd"

func main() {
	cmd.Execute()
}
