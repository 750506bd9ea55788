package output

import (
	"strings"
	"testing"

	"github.com/yourusername/swaynav/internal/tree"
	"github.com/yourusername/swaynav/internal/types"
)

func TestScaleRect(t *testing.T) {
	bounds := types.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

	tests := []struct {
		name       string
		rect       types.Rect
		x, y, w, h int
	}{
		{"full workspace", types.Rect{X: 0, Y: 0, Width: 1000, Height: 800}, 0, 0, 100, 20},
		{"left half", types.Rect{X: 0, Y: 0, Width: 500, Height: 800}, 0, 0, 50, 20},
		{"bottom right quarter", types.Rect{X: 500, Y: 400, Width: 500, Height: 400}, 50, 10, 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := scaleRect(tt.rect, bounds, 100, 20)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("scaleRect = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestCanvasDrawBox(t *testing.T) {
	canvas := NewCanvas(6, 4, false)
	canvas.DrawBox(0, 0, 6, 4)

	want := strings.Join([]string{
		"+----+",
		"|    |",
		"|    |",
		"+----+",
		"",
	}, "\n")

	if got := canvas.String(); got != want {
		t.Errorf("canvas:\n%s\nwant:\n%s", got, want)
	}
}

func TestCanvasDrawText(t *testing.T) {
	canvas := NewCanvas(10, 2, false)
	canvas.DrawText(1, 0, "hi")
	canvas.DrawText(8, 1, "clipped")

	lines := strings.Split(canvas.String(), "\n")
	if lines[0] != " hi" {
		t.Errorf("line 0 = %q, want %q", lines[0], " hi")
	}
	// text past the right edge is dropped, not wrapped
	if lines[1] != "        cl" {
		t.Errorf("line 1 = %q, want %q", lines[1], "        cl")
	}
}

func TestVisualizeWorkspace(t *testing.T) {
	visible := true
	hidden := false
	app := "foot"

	ws := &tree.Node{
		ID:     4,
		Name:   "3",
		Type:   types.NodeWorkspace,
		Layout: types.LayoutSplitH,
		Rect:   types.Rect{X: 0, Y: 0, Width: 1000, Height: 800},
		Nodes: []*tree.Node{
			{
				ID: 10, Type: types.NodeCon, Layout: types.LayoutNone,
				Rect:    types.Rect{X: 0, Y: 0, Width: 500, Height: 800},
				AppID:   &app,
				Focused: true,
				Visible: &visible,
			},
			{
				ID: 11, Type: types.NodeCon, Layout: types.LayoutNone,
				Rect:    types.Rect{X: 500, Y: 0, Width: 500, Height: 800},
				Visible: &hidden,
			},
		},
	}
	out := &tree.Node{ID: 3, Type: types.NodeOutput, Layout: types.LayoutOutput, Nodes: []*tree.Node{ws}}
	root := &tree.Node{ID: 1, Type: types.NodeRoot, Layout: types.LayoutSplitH, Nodes: []*tree.Node{out}}

	opts := VisualizationOptions{UseUnicode: false, ShowIDs: true, MaxWidth: 60, MaxHeight: 12}
	result, err := VisualizeWorkspace(root, opts)
	if err != nil {
		t.Fatalf("VisualizeWorkspace failed: %v", err)
	}

	if !strings.Contains(result, "Workspace 3") {
		t.Error("missing workspace header")
	}
	if !strings.Contains(result, "* [10] foot") {
		t.Error("missing focused window label")
	}
	if !strings.Contains(result, "1 behind tabs/stacks") {
		t.Error("hidden window should be counted, not drawn")
	}
	if strings.Contains(result, "[11]") {
		t.Error("hidden window must not be drawn")
	}
}

func TestVisualizeWorkspace_NoFocus(t *testing.T) {
	root := &tree.Node{ID: 1, Type: types.NodeRoot, Layout: types.LayoutSplitH}

	if _, err := VisualizeWorkspace(root, DefaultVisualizationOptions()); err == nil {
		t.Error("expected error when no workspace is focused")
	}
}
