package tree

import (
	"errors"
	"testing"

	"github.com/yourusername/swaynav/internal/types"
)

func leaf(id int64, focused bool) *Node {
	return &Node{
		ID:      id,
		Type:    types.NodeCon,
		Layout:  types.LayoutNone,
		Focused: focused,
	}
}

func container(id int64, layout types.Layout, children ...*Node) *Node {
	return &Node{
		ID:     id,
		Type:   types.NodeCon,
		Layout: layout,
		Nodes:  children,
	}
}

// Test tree:
//
//	workspace 1 (splith)
//	├── con 10 (splitv)
//	│   ├── leaf 11
//	│   └── leaf 12 (focused)
//	└── leaf 20
func buildTestTree() *Node {
	ws := container(1, types.LayoutSplitH,
		container(10, types.LayoutSplitV,
			leaf(11, false),
			leaf(12, true),
		),
		leaf(20, false),
	)
	ws.Type = types.NodeWorkspace
	ws.Name = "1"
	return ws
}

func TestFocusedPath(t *testing.T) {
	root := buildTestTree()

	path := root.FocusedPath()
	if path == nil {
		t.Fatal("expected a focused path")
	}

	want := []int64{1, 10, 12}
	if len(path) != len(want) {
		t.Fatalf("path length = %d, want %d", len(path), len(want))
	}
	for i, node := range path {
		if node.ID != want[i] {
			t.Errorf("path[%d].ID = %d, want %d", i, node.ID, want[i])
		}
	}
}

func TestFocusedPath_NoFocus(t *testing.T) {
	root := container(1, types.LayoutSplitH, leaf(2, false), leaf(3, false))

	if path := root.FocusedPath(); path != nil {
		t.Errorf("expected nil path for unfocused tree, got %d nodes", len(path))
	}
}

func TestFocusedPath_FloatingChild(t *testing.T) {
	root := container(1, types.LayoutSplitH, leaf(2, false))
	floating := leaf(30, true)
	floating.Type = types.NodeFloatingCon
	root.FloatingNodes = []*Node{floating}

	path := root.FocusedPath()
	if path == nil {
		t.Fatal("expected focused path through floating child")
	}
	if last := path[len(path)-1]; last.ID != 30 {
		t.Errorf("focused node = %d, want 30", last.ID)
	}
}

func TestParentOf(t *testing.T) {
	root := buildTestTree()

	tests := []struct {
		name   string
		id     int64
		parent int64 // 0 means nil expected
	}{
		{"nested leaf", 12, 10},
		{"direct child", 20, 1},
		{"container", 10, 1},
		{"root", 1, 0},
		{"unknown id", 99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := root.ParentOf(tt.id)
			if tt.parent == 0 {
				if parent != nil {
					t.Errorf("ParentOf(%d) = %d, want nil", tt.id, parent.ID)
				}
				return
			}
			if parent == nil {
				t.Fatalf("ParentOf(%d) = nil, want %d", tt.id, tt.parent)
			}
			if parent.ID != tt.parent {
				t.Errorf("ParentOf(%d) = %d, want %d", tt.id, parent.ID, tt.parent)
			}
		})
	}
}

func TestFindNode(t *testing.T) {
	root := buildTestTree()

	if node := root.FindNode(12); node == nil || node.ID != 12 {
		t.Errorf("FindNode(12) failed, got %v", node)
	}
	if node := root.FindNode(99); node != nil {
		t.Errorf("FindNode(99) = %d, want nil", node.ID)
	}
}

func TestLastFocusedChild(t *testing.T) {
	tabbed := container(1, types.LayoutTabbed, leaf(2, false), leaf(3, false), leaf(4, false))
	tabbed.Focus = []int64{3, 2, 4}

	child := tabbed.LastFocusedChild()
	if child == nil || child.ID != 3 {
		t.Errorf("LastFocusedChild = %v, want id 3", child)
	}
}

func TestLastFocusedChild_NoHistory(t *testing.T) {
	tabbed := container(1, types.LayoutTabbed, leaf(2, false), leaf(3, false))

	if child := tabbed.LastFocusedChild(); child != nil {
		t.Errorf("LastFocusedChild = %d, want nil for empty focus list", child.ID)
	}
}

func TestLastFocusedChild_StaleHistory(t *testing.T) {
	// Focus entries can reference closed windows; they must be skipped.
	tabbed := container(1, types.LayoutTabbed, leaf(2, false), leaf(3, false))
	tabbed.Focus = []int64{99, 3}

	child := tabbed.LastFocusedChild()
	if child == nil || child.ID != 3 {
		t.Errorf("LastFocusedChild = %v, want id 3", child)
	}
}

func TestLeaves(t *testing.T) {
	root := buildTestTree()

	leaves := root.Leaves()
	want := []int64{11, 12, 20}
	if len(leaves) != len(want) {
		t.Fatalf("got %d leaves, want %d", len(leaves), len(want))
	}
	for i, l := range leaves {
		if l.ID != want[i] {
			t.Errorf("leaves[%d].ID = %d, want %d", i, l.ID, want[i])
		}
	}
}

// sampleTree is a trimmed but structurally faithful GET_TREE reply:
// root > output > workspace (splith) > [ con, tabbed [ con, con ] ]
const sampleTree = `{
  "id": 1,
  "name": "root",
  "type": "root",
  "layout": "splith",
  "orientation": "horizontal",
  "rect": {"x": 0, "y": 0, "width": 1920, "height": 1080},
  "focused": false,
  "focus": [3],
  "nodes": [
    {
      "id": 3,
      "name": "eDP-1",
      "type": "output",
      "layout": "output",
      "rect": {"x": 0, "y": 0, "width": 1920, "height": 1080},
      "focused": false,
      "focus": [4],
      "nodes": [
        {
          "id": 4,
          "name": "1",
          "type": "workspace",
          "layout": "splith",
          "orientation": "horizontal",
          "rect": {"x": 0, "y": 0, "width": 1920, "height": 1057},
          "representation": "H[termite T[firefox emacs]]",
          "focused": false,
          "focus": [7, 5],
          "nodes": [
            {
              "id": 5,
              "name": "termite",
              "type": "con",
              "layout": "none",
              "percent": 0.5,
              "rect": {"x": 0, "y": 23, "width": 960, "height": 1057},
              "focused": false,
              "focus": [],
              "nodes": [],
              "app_id": "termite",
              "pid": 1701,
              "visible": true
            },
            {
              "id": 7,
              "name": "tabs",
              "type": "con",
              "layout": "tabbed",
              "percent": 0.5,
              "rect": {"x": 960, "y": 23, "width": 960, "height": 1057},
              "focused": false,
              "focus": [9, 8],
              "nodes": [
                {
                  "id": 8,
                  "name": "Firefox",
                  "type": "con",
                  "layout": "none",
                  "rect": {"x": 960, "y": 46, "width": 960, "height": 1034},
                  "focused": false,
                  "focus": [],
                  "nodes": [],
                  "window": 12345,
                  "window_properties": {"class": "Firefox", "instance": "Navigator", "title": "Firefox"},
                  "visible": false
                },
                {
                  "id": 9,
                  "name": "emacs",
                  "type": "con",
                  "layout": "none",
                  "rect": {"x": 960, "y": 46, "width": 960, "height": 1034},
                  "focused": true,
                  "focus": [],
                  "nodes": [],
                  "app_id": "emacs",
                  "pid": 1750,
                  "visible": true
                }
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	root, err := Decode([]byte(sampleTree))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if root.Type != types.NodeRoot {
		t.Errorf("root.Type = %q, want root", root.Type)
	}

	path := root.FocusedPath()
	if path == nil {
		t.Fatal("expected focused path in sample tree")
	}
	if focused := path[len(path)-1]; focused.ID != 9 {
		t.Errorf("focused node = %d, want 9", focused.ID)
	}

	tabbed := root.FindNode(7)
	if tabbed == nil {
		t.Fatal("node 7 not found")
	}
	if tabbed.Layout != types.LayoutTabbed {
		t.Errorf("node 7 layout = %q, want tabbed", tabbed.Layout)
	}
	if child := tabbed.LastFocusedChild(); child == nil || child.ID != 9 {
		t.Errorf("node 7 last focused child = %v, want id 9", child)
	}

	firefox := root.FindNode(8)
	if firefox == nil {
		t.Fatal("node 8 not found")
	}
	if firefox.AppName() != "Firefox" {
		t.Errorf("node 8 app name = %q, want Firefox (from window_properties)", firefox.AppName())
	}
	if firefox.Visible == nil || *firefox.Visible {
		t.Error("node 8 should be hidden behind its tab sibling")
	}

	ws := root.FocusedWorkspace()
	if ws == nil || ws.ID != 4 {
		t.Errorf("focused workspace = %v, want id 4", ws)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode([]byte(`{"id": "not a number"}`)); err == nil {
		t.Error("expected error for malformed tree")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestErrNoFocusedWindowIdentity(t *testing.T) {
	wrapped := errors.Join(ErrNoFocusedWindow)
	if !errors.Is(wrapped, ErrNoFocusedWindow) {
		t.Error("ErrNoFocusedWindow should survive wrapping")
	}
}
