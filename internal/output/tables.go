package output

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/swaynav/internal/ipc"
	"github.com/yourusername/swaynav/internal/tree"
)

// PrintWindowsTable prints the tree's window leaves in a table format
func PrintWindowsTable(windows []*tree.Node) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "App", "Title", "Geometry", "Focused", "Visible")

	// Sort by ID
	sorted := make([]*tree.Node, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for _, win := range sorted {
		focused := ""
		if win.Focused {
			focused = "*"
		}

		visible := ""
		if win.Visible != nil && !*win.Visible {
			visible = "hidden"
		}

		app := truncate(win.AppName(), 20)
		title := truncate(win.Name, 40)
		geometry := fmt.Sprintf("%dx%d+%d+%d", win.Rect.Width, win.Rect.Height, win.Rect.X, win.Rect.Y)

		table.Append(
			fmt.Sprintf("%d", win.ID),
			app,
			title,
			geometry,
			focused,
			visible,
		)
	}

	table.Render()
}

// PrintWorkspacesTable prints workspaces in a table format
func PrintWorkspacesTable(workspaces []ipc.Workspace) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Num", "Name", "Output", "Visible", "Focused", "Urgent")

	for _, ws := range workspaces {
		table.Append(
			fmt.Sprintf("%d", ws.Num),
			truncate(ws.Name, 25),
			ws.Output,
			mark(ws.Visible),
			mark(ws.Focused),
			mark(ws.Urgent),
		)
	}

	table.Render()
}

// PrintOutputsTable prints outputs in a table format
func PrintOutputsTable(outputs []ipc.Output) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Model", "Resolution", "Scale", "Workspace", "Active")

	for _, out := range outputs {
		workspace := "-"
		if out.CurrentWorkspace != nil {
			workspace = *out.CurrentWorkspace
		}

		model := truncate(out.Model, 20)
		resolution := fmt.Sprintf("%dx%d", out.Rect.Width, out.Rect.Height)

		table.Append(
			out.Name,
			model,
			resolution,
			fmt.Sprintf("%.1f", out.Scale),
			workspace,
			mark(out.Active),
		)
	}

	table.Render()
}

// Helper functions

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
