package focus

import (
	"github.com/yourusername/swaynav/internal/tree"
	"github.com/yourusername/swaynav/internal/types"
)

// Resolve computes which window should receive focus when moving in the
// given direction from the currently focused window.
//
// sway's own directional focus treats the children of tabbed and stacked
// containers as adjacent, so "focus left" from a tab selects the previous
// tab instead of the window physically to the left. Resolve restores spatial
// semantics: grouping containers are skipped, and only splits along the
// direction's axis contribute neighbors.
//
// The walk starts at the focused node and climbs toward the root. A level
// contributes a neighbor only when its container is a split matching the
// direction's axis and the current child has a sibling on the requested
// side. Grouping containers, orthogonal splits, and exhausted splits pass
// the search to the next level up. Reaching the root without a neighbor
// yields a passthrough: moving across outputs stays sway's job.
func Resolve(root *tree.Node, dir types.Direction) (types.Resolution, error) {
	path := root.FocusedPath()
	if path == nil {
		return types.Resolution{}, tree.ErrNoFocusedWindow
	}

	splitLayout := dir.SplitLayout()

	// path[i] is the child under consideration, path[i-1] its container
	for i := len(path) - 1; i > 0; i-- {
		parent := path[i-1]
		child := path[i]

		// The root arranges outputs in a splith of its own; crossing an
		// output boundary is left to sway's native focus.
		if parent.Type == types.NodeRoot || parent.Type == types.NodeOutput {
			break
		}

		if parent.Layout != splitLayout {
			continue
		}

		if sibling := spatialSibling(parent, child.ID, dir); sibling != nil {
			target := enterSubtree(sibling, dir)
			return types.Override(target.ID), nil
		}
	}

	return types.PassthroughResolution(), nil
}

// spatialSibling returns the tiling sibling adjacent to the child with the
// given id in the requested direction, or nil at the edge of the split.
// Floating children are ignored: they have no slot in the split's order.
func spatialSibling(parent *tree.Node, childID int64, dir types.Direction) *tree.Node {
	idx := -1
	for i, node := range parent.Nodes {
		if node.ID == childID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	if dir.Backward() {
		if idx == 0 {
			return nil
		}
		return parent.Nodes[idx-1]
	}
	if idx+1 >= len(parent.Nodes) {
		return nil
	}
	return parent.Nodes[idx+1]
}

// enterSubtree descends from a target container to the concrete window that
// should receive focus.
//
// Grouping containers and splits orthogonal to the movement reveal whichever
// child was focused last, so re-entering a region restores what the user saw
// there. A freshly created container has no usable focus history; the first
// child stands in for it. Splits along the movement axis are entered at the
// near edge: the last child when moving left or up, the first child when
// moving right or down.
func enterSubtree(node *tree.Node, dir types.Direction) *tree.Node {
	for !node.IsLeaf() {
		var next *tree.Node

		if node.Layout == dir.SplitLayout() && len(node.Nodes) > 0 {
			if dir.Backward() {
				next = node.Nodes[len(node.Nodes)-1]
			} else {
				next = node.Nodes[0]
			}
		} else {
			next = node.LastFocusedChild()
		}

		if next == nil {
			children := node.Children()
			next = children[0]
		}
		node = next
	}
	return node
}
