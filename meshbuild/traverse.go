package meshbuild

import "github.com/arl/navmesh/quadtree"

// CollectLeaves appends every leaf of the subtree rooted at node to dst, in
// TL, TR, BL, BR order, and returns the extended slice.
func CollectLeaves(dst []*quadtree.CompressedLabelTree, node *quadtree.CompressedLabelTree) []*quadtree.CompressedLabelTree {
	if node == nil {
		return dst
	}
	if node.IsLeaf() {
		return append(dst, node)
	}
	for _, c := range node.Children {
		dst = CollectLeaves(dst, c)
	}
	return dst
}

// LayerLeaves returns every leaf across every block root of grid.
func LayerLeaves(grid *quadtree.NavGrid) []*quadtree.CompressedLabelTree {
	var leaves []*quadtree.CompressedLabelTree
	for _, row := range grid.Trees {
		for _, root := range row {
			leaves = CollectLeaves(leaves, root)
		}
	}
	return leaves
}
