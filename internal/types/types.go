package types

// Layout is a container's layout kind as reported by sway.
// Leaf windows report "none"; output nodes report "output".
type Layout string

const (
	LayoutNone    Layout = "none"
	LayoutSplitH  Layout = "splith"
	LayoutSplitV  Layout = "splitv"
	LayoutTabbed  Layout = "tabbed"
	LayoutStacked Layout = "stacked"
	LayoutOutput  Layout = "output"
)

// IsGrouping reports whether only one child of the container is visible at a
// time, which makes its children non-spatial siblings.
func (l Layout) IsGrouping() bool {
	return l == LayoutTabbed || l == LayoutStacked
}

// NodeType categorizes tree nodes
type NodeType string

const (
	NodeRoot        NodeType = "root"
	NodeOutput      NodeType = "output"
	NodeWorkspace   NodeType = "workspace"
	NodeCon         NodeType = "con"
	NodeFloatingCon NodeType = "floating_con"
)

// Orientation is the split orientation sway reports alongside the layout
type Orientation string

const (
	OrientationNone       Orientation = "none"
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// Rect represents absolute pixel bounds on screen
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Direction represents navigation direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Horizontal reports whether the direction moves along the horizontal axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Backward reports whether the direction moves toward lower coordinates,
// i.e. toward earlier siblings in a split's child order.
func (d Direction) Backward() bool {
	return d == DirLeft || d == DirUp
}

// SplitLayout returns the split layout whose children are spatial neighbors
// along this direction's axis.
func (d Direction) SplitLayout() Layout {
	if d.Horizontal() {
		return LayoutSplitH
	}
	return LayoutSplitV
}

// Resolution is the outcome of resolving a directional focus request.
// Either a specific window should be focused (Override) or the request is
// deferred to sway's native directional focus (Passthrough).
type Resolution struct {
	TargetID    int64
	Passthrough bool
}

// Override builds a resolution targeting a specific container id
func Override(id int64) Resolution {
	return Resolution{TargetID: id}
}

// PassthroughResolution defers to the compositor's own focus handling
func PassthroughResolution() Resolution {
	return Resolution{Passthrough: true}
}
