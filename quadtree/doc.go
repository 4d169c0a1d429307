// Package quadtree holds the runtime spatial index produced by the mesh
// builder: the compressed quadtree leaves/nodes, the per-layer NavGrid that
// indexes their block roots, and the connected-component label metadata.
//
// Nothing in this package mutates the forest on its own; construction is
// package meshbuild's job. quadtree only defines the shape and the
// point-to-leaf query.
package quadtree
