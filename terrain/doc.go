// Package terrain defines the data this module's mesh builder consumes from
// its host: per-cell height and terrain-type sampling, resource markers, and
// the tunable constants baked into the pathability contract.
//
// Nothing in this package performs any mesh construction; it only describes
// the boundary between the navigation mesh builder and its environment (the
// scenario loader, the heightmap oracle, the marker catalogue).
package terrain
