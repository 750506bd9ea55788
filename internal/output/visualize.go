package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/swaynav/internal/tree"
	"github.com/yourusername/swaynav/internal/types"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	ShowIDs    bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		ShowIDs:    true,
		MaxWidth:   width,
		MaxHeight:  height - 3, // leave room for header and footer
	}
}

// VisualizeWorkspace renders the focused workspace's windows spatially.
// Each visible window is drawn as a box at its scaled tree geometry; windows
// hidden behind tab or stack siblings are summarized, not drawn.
func VisualizeWorkspace(root *tree.Node, opts VisualizationOptions) (string, error) {
	ws := root.FocusedWorkspace()
	if ws == nil {
		return "", tree.ErrNoFocusedWindow
	}

	leaves := ws.Leaves()
	if len(leaves) == 0 {
		return fmt.Sprintf("Workspace %s (no windows)\n", ws.Name), nil
	}

	hidden := 0
	canvas := NewCanvas(opts.MaxWidth, opts.MaxHeight, opts.UseUnicode)
	canvas.DrawBox(0, 0, opts.MaxWidth, opts.MaxHeight)

	for _, leaf := range leaves {
		if leaf.Visible != nil && !*leaf.Visible {
			hidden++
			continue
		}

		x, y, w, h := scaleRect(leaf.Rect, ws.Rect, opts.MaxWidth, opts.MaxHeight)
		if w < 3 || h < 2 {
			continue
		}
		canvas.DrawBox(x, y, w, h)

		label := windowLabel(leaf, opts.ShowIDs)
		if len(label) <= w-2 && h >= 2 {
			canvas.DrawText(x+1, y+1, label)
		}
	}

	header := fmt.Sprintf("Workspace %s [%dx%d]\n", ws.Name, ws.Rect.Width, ws.Rect.Height)
	footer := fmt.Sprintf("\nTotal: %d windows", len(leaves))
	if hidden > 0 {
		footer += fmt.Sprintf(" (%d behind tabs/stacks)", hidden)
	}
	footer += "\n"

	return header + canvas.String() + footer, nil
}

// scaleRect maps a pixel rect inside the workspace onto canvas coordinates
func scaleRect(r, bounds types.Rect, termWidth, termHeight int) (x, y, w, h int) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return 0, 0, 0, 0
	}

	scaleX := float64(termWidth) / float64(bounds.Width)
	scaleY := float64(termHeight) / float64(bounds.Height)

	x = int(float64(r.X-bounds.X) * scaleX)
	y = int(float64(r.Y-bounds.Y) * scaleY)
	w = int(float64(r.Width) * scaleX)
	h = int(float64(r.Height) * scaleY)

	if x+w > termWidth {
		w = termWidth - x
	}
	if y+h > termHeight {
		h = termHeight - y
	}
	return x, y, w, h
}

// windowLabel builds the in-box label for a window leaf
func windowLabel(leaf *tree.Node, showID bool) string {
	app := leaf.AppName()
	if app == "" {
		app = "unknown"
	}

	marker := ""
	if leaf.Focused {
		marker = "* "
	}

	if showID {
		return fmt.Sprintf("%s[%d] %s", marker, leaf.ID, app)
	}
	return marker + app
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")
	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintVisualization prints a colored visualization to stdout
func PrintVisualization(root *tree.Node, opts VisualizationOptions) error {
	result, err := VisualizeWorkspace(root, opts)
	if err != nil {
		return err
	}

	if color.NoColor {
		fmt.Print(result)
	} else {
		cyan := color.New(color.FgCyan)
		cyan.Print(result)
	}
	return nil
}
