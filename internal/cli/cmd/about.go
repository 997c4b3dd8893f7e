package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/whiteboard/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, where boards and config live, and autosave settings.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	setup := styles.NewAboutSetup(app.Config, app.ConfigManager.GetConfigFile(), app.DatabasePath())
	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, setup))
	return nil
}
