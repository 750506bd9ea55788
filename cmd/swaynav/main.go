package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/swaynav/internal/command"
	swayConfig "github.com/yourusername/swaynav/internal/config"
	swayFocus "github.com/yourusername/swaynav/internal/focus"
	"github.com/yourusername/swaynav/internal/ipc"
	"github.com/yourusername/swaynav/internal/logging"
	"github.com/yourusername/swaynav/internal/output"
	"github.com/yourusername/swaynav/internal/types"
)

var (
	socketPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	debugMode  bool
	dryRun     bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "swaynav",
	Short: "Directional focus for sway that skips tabbed and stacked siblings",
	Long: `Swaynav resolves directional focus against sway's window tree.

Unlike sway's built-in "focus left/right/up/down", which treats the children
of tabbed and stacked containers as adjacent, swaynav moves focus to the
window that is physically next in the requested direction, skipping past tab
and stack siblings. Bind it in your sway config:

    bindsym $mod+h exec swaynav focus left`,
	Version: "0.1.0",
}

// focusCmd is the parent command for directional focus
var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Move focus in a direction, skipping tab/stack siblings",
	Long:  `Commands for moving focus to the spatially adjacent window in a direction.`,
}

// focusDirectionHelper resolves and dispatches one directional focus request
func focusDirectionHelper(dir types.Direction) error {
	cfg, err := swayConfig.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !debugMode {
		logging.SetLevel(cfg.LogLevel)
	}

	c, err := newClient(cfg)
	if err != nil {
		printError(err.Error())
		return err
	}
	defer c.Close()

	ctx := context.Background()

	// 1. Fetch the tree snapshot ONCE
	root, err := c.GetTree(ctx)
	if err != nil {
		printError(fmt.Sprintf("Failed to fetch tree: %v", err))
		return err
	}

	// 2. Resolve the spatial target
	res, err := swayFocus.Resolve(root, dir)
	if err != nil {
		printError(fmt.Sprintf("Failed to resolve focus %s: %v", dir, err))
		return err
	}

	// 3. Emit exactly one command
	cmd := command.Format(res, dir)
	logging.Debug().
		Str("direction", dir.String()).
		Bool("passthrough", res.Passthrough).
		Int64("target", res.TargetID).
		Str("command", cmd).
		Msg("resolved focus")

	if dryRun {
		fmt.Println(cmd)
		return nil
	}

	if err := command.Dispatch(ctx, c, cmd); err != nil {
		printError(fmt.Sprintf("Failed to dispatch command: %v", err))
		return err
	}

	successColor.Printf("✓ %s\n", cmd)
	return nil
}

// focusLeftCmd moves focus to the window on the left
var focusLeftCmd = &cobra.Command{
	Use:   "left",
	Short: "Focus the window to the left",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusDirectionHelper(types.DirLeft)
	},
}

// focusRightCmd moves focus to the window on the right
var focusRightCmd = &cobra.Command{
	Use:   "right",
	Short: "Focus the window to the right",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusDirectionHelper(types.DirRight)
	},
}

// focusUpCmd moves focus to the window above
var focusUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Focus the window above",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusDirectionHelper(types.DirUp)
	},
}

// focusDownCmd moves focus to the window below
var focusDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Focus the window below",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusDirectionHelper(types.DirDown)
	},
}

// treeCmd dumps the raw layout tree
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Dump the layout tree as JSON",
	Long:  `Fetches the compositor's layout tree and prints it as indented JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := defaultClient()
		if err != nil {
			return err
		}
		defer c.Close()

		raw, err := c.GetTreeRaw(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to fetch tree: %v", err))
			return err
		}

		var indented interface{}
		if err := json.Unmarshal(raw, &indented); err != nil {
			printError(fmt.Sprintf("Failed to decode tree: %v", err))
			return err
		}
		return printJSON(indented)
	},
}

// listCmd is the parent command for list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows, workspaces, or outputs",
	Long:  `Lists components of the compositor state in a table format.`,
}

// listWindowsCmd lists all window leaves in the tree
var listWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List all windows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := defaultClient()
		if err != nil {
			return err
		}
		defer c.Close()

		root, err := c.GetTree(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to fetch tree: %v", err))
			return err
		}

		windows := root.Leaves()
		if len(windows) == 0 {
			fmt.Println("No windows found")
			return nil
		}

		if jsonOutput {
			return printJSON(windows)
		}

		output.PrintWindowsTable(windows)
		fmt.Printf("\nTotal: %d windows\n", len(windows))
		return nil
	},
}

// listWorkspacesCmd lists all workspaces
var listWorkspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List all workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := defaultClient()
		if err != nil {
			return err
		}
		defer c.Close()

		workspaces, err := c.GetWorkspaces(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to fetch workspaces: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(workspaces)
		}

		output.PrintWorkspacesTable(workspaces)
		fmt.Printf("\nTotal: %d workspaces\n", len(workspaces))
		return nil
	},
}

// listOutputsCmd lists all outputs
var listOutputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List all outputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := defaultClient()
		if err != nil {
			return err
		}
		defer c.Close()

		outputs, err := c.GetOutputs(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to fetch outputs: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(outputs)
		}

		output.PrintOutputsTable(outputs)
		fmt.Printf("\nTotal: %d outputs\n", len(outputs))
		return nil
	},
}

// showCmd is the parent command for visualization subcommands
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Visualize the window layout",
	Long:  `Displays ASCII/Unicode visualizations of the current window layout.`,
}

// Visualization flags
var (
	showASCII   bool
	showUnicode bool
	showNoIDs   bool
	showWidth   int
	showHeight  int
)

// showTreeCmd visualizes the focused workspace
var showTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the focused workspace's windows spatially",
	Long: `Displays a spatial ASCII/Unicode representation of the focused workspace.
Windows are shown as boxes at their on-screen positions; the focused window
is marked with *. Windows hidden behind tab or stack siblings are counted
but not drawn.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := defaultClient()
		if err != nil {
			return err
		}
		defer c.Close()

		root, err := c.GetTree(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to fetch tree: %v", err))
			return err
		}

		return output.PrintVisualization(root, getVisualizationOptions())
	},
}

// versionCmd shows compositor version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show compositor version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := defaultClient()
		if err != nil {
			return err
		}
		defer c.Close()

		version, err := c.GetVersion(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to fetch version: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(version)
		}

		keyColor.Print("Compositor: ")
		fmt.Println(version.HumanReadable)
		keyColor.Print("Config: ")
		fmt.Println(version.LoadedConfigFileName)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "Compositor socket path (default: $SWAYSOCK)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "IPC round-trip timeout (default 5s)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Add top-level commands
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)

	// Add focus subcommands
	focusCmd.AddCommand(focusLeftCmd)
	focusCmd.AddCommand(focusRightCmd)
	focusCmd.AddCommand(focusUpCmd)
	focusCmd.AddCommand(focusDownCmd)

	focusCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the resolved command without sending it")

	// Add list subcommands
	listCmd.AddCommand(listWindowsCmd)
	listCmd.AddCommand(listWorkspacesCmd)
	listCmd.AddCommand(listOutputsCmd)

	// Add show subcommands
	showCmd.AddCommand(showTreeCmd)

	// Add show flags
	showCmd.PersistentFlags().BoolVar(&showASCII, "ascii", false, "Force ASCII mode (no Unicode)")
	showCmd.PersistentFlags().BoolVar(&showUnicode, "unicode", false, "Force Unicode mode")
	showCmd.PersistentFlags().BoolVar(&showNoIDs, "no-ids", false, "Hide window IDs")
	showCmd.PersistentFlags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showCmd.PersistentFlags().IntVar(&showHeight, "height", 0, "Override terminal height")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	logging.Init()
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

// newClient builds a client from flags, config, and environment
func newClient(cfg *swayConfig.Config) (*ipc.Client, error) {
	socket := socketPath
	if socket == "" {
		socket = cfg.Socket
	}
	resolved, err := ipc.SocketPath(socket)
	if err != nil {
		return nil, err
	}

	t := timeout
	if t == 0 {
		t = cfg.Timeout.Std()
	}

	return ipc.NewClient(resolved, t), nil
}

// defaultClient builds a client with the default config lookup
func defaultClient() (*ipc.Client, error) {
	cfg, err := swayConfig.Load("")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !debugMode {
		logging.SetLevel(cfg.LogLevel)
	}

	c, err := newClient(cfg)
	if err != nil {
		printError(err.Error())
		return nil, err
	}
	return c, nil
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()

	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showNoIDs {
		opts.ShowIDs = false
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}

	return opts
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
