// Package meshbuild implements the mesh construction pipeline: pathability
// rasterisation, quadtree compression, neighbour discovery, connected
// components labelling, centre/edge precomputation, marker binding and
// label culling.
//
// Every function here is a single phase of the pipeline described in spec
// §4; package navmesh's Mesh.Generate calls them in the strict order spec §5
// requires. Nothing in this package is safe for concurrent use on the same
// scratch buffers or the same forest.
package meshbuild
