// Package cmd provides Cobra CLI commands for whiteboard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/whiteboard/internal/cli"
	"github.com/bnema/whiteboard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "whiteboard",
		Short: "A touch-driven canvas of floating panels",
		Long: `Whiteboard - a canvas of draggable, pinch-resizable panels with a
freehand annotation layer on top.

Features:
  - Up to eight panels: text, image, 3D model, read-only and more
  - Drag with one finger, resize with two
  - Annotate with pen, line, rectangle, circle and arrow tools
  - Boards saved to SQLite and restored on the next run

Use 'whiteboard play' to open a board in the terminal, or 'whiteboard
replay' to run a scripted touch session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigDir: configDir,
				Quiet:     cmd.Name() == playCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "use this directory instead of the XDG config dir")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
