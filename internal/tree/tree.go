package tree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yourusername/swaynav/internal/types"
)

// ErrNoFocusedWindow is returned when a tree snapshot contains no focused
// node. A valid snapshot has exactly one focused leaf; without it there is no
// starting point for navigation.
var ErrNoFocusedWindow = errors.New("no focused window in tree")

// Node is one element of the layout tree returned by the GET_TREE message.
// Field names follow `man sway-ipc`; fields the resolver does not consume are
// still decoded so `swaynav tree` can re-emit a faithful snapshot.
type Node struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Type               types.NodeType    `json:"type"`
	Layout             types.Layout      `json:"layout"`
	Orientation        types.Orientation `json:"orientation"`
	Percent            *float64          `json:"percent"`
	Rect               types.Rect        `json:"rect"`
	WindowRect         types.Rect        `json:"window_rect"`
	DecoRect           types.Rect        `json:"deco_rect"`
	Geometry           types.Rect        `json:"geometry"`
	Urgent             bool              `json:"urgent"`
	Sticky             bool              `json:"sticky"`
	Marks              []string          `json:"marks"`
	Focused            bool              `json:"focused"`
	Focus              []int64           `json:"focus"`
	Nodes              []*Node           `json:"nodes"`
	FloatingNodes      []*Node           `json:"floating_nodes"`
	Representation     *string           `json:"representation"`
	FullscreenMode     int               `json:"fullscreen_mode"`
	AppID              *string           `json:"app_id"`
	PID                *int              `json:"pid"`
	Visible            *bool             `json:"visible"`
	Shell              *string           `json:"shell"`
	InhibitIdle        *bool             `json:"inhibit_idle"`
	WindowID           *int64            `json:"window"`
	WindowProperties   *WindowProperties `json:"window_properties"`
	CurrentBorderWidth int               `json:"current_border_width"`
}

// WindowProperties carries X11 metadata for xwayland views
type WindowProperties struct {
	Class    string `json:"class"`
	Instance string `json:"instance"`
	Title    string `json:"title"`
}

// Decode parses one GET_TREE payload into a Node tree.
func Decode(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	return &root, nil
}

// Children returns the tiling children followed by the floating children, in
// the order sway reports them. Floating children participate in focus
// tracking even though they have no spatial slot in the parent's layout.
func (n *Node) Children() []*Node {
	if len(n.FloatingNodes) == 0 {
		return n.Nodes
	}
	all := make([]*Node, 0, len(n.Nodes)+len(n.FloatingNodes))
	all = append(all, n.Nodes...)
	all = append(all, n.FloatingNodes...)
	return all
}

// IsLeaf reports whether the node is a concrete window rather than a
// container grouping other nodes.
func (n *Node) IsLeaf() bool {
	return len(n.Nodes) == 0 && len(n.FloatingNodes) == 0
}

// AppName returns the best available application identifier for a leaf:
// the wayland app_id, or the X11 class for xwayland views.
func (n *Node) AppName() string {
	if n.AppID != nil && *n.AppID != "" {
		return *n.AppID
	}
	if n.WindowProperties != nil {
		return n.WindowProperties.Class
	}
	return ""
}

// FocusedPath returns the nodes from the root down to the focused node,
// inclusive. It returns nil when no node in the tree is focused.
func (n *Node) FocusedPath() []*Node {
	if n.Focused {
		return []*Node{n}
	}
	for _, child := range n.Children() {
		if path := child.FocusedPath(); path != nil {
			return append([]*Node{n}, path...)
		}
	}
	return nil
}

// FindNode returns the node with the given id, or nil if absent.
func (n *Node) FindNode(id int64) *Node {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children() {
		if found := child.FindNode(id); found != nil {
			return found
		}
	}
	return nil
}

// ParentOf returns the immediate parent of the node with the given id.
// The root and unknown ids have no parent.
func (n *Node) ParentOf(id int64) *Node {
	for _, child := range n.Children() {
		if child.ID == id {
			return n
		}
		if found := child.ParentOf(id); found != nil {
			return found
		}
	}
	return nil
}

// LastFocusedChild returns the child that was most recently focused according
// to the node's focus order, or nil when no recorded entry matches a child.
// Freshly created containers can have an empty focus list.
func (n *Node) LastFocusedChild() *Node {
	children := n.Children()
	for _, id := range n.Focus {
		for _, child := range children {
			if child.ID == id {
				return child
			}
		}
	}
	return nil
}

// Walk visits every node depth first, parents before children. The walk
// stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children() {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Leaves collects all window leaves in tree order
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node) bool {
		if node.IsLeaf() && (node.Type == types.NodeCon || node.Type == types.NodeFloatingCon) {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// FocusedWorkspace returns the workspace node on the focused path, or nil
// when the snapshot has no focused node.
func (n *Node) FocusedWorkspace() *Node {
	for _, node := range n.FocusedPath() {
		if node.Type == types.NodeWorkspace {
			return node
		}
	}
	return nil
}
