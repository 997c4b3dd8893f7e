package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/cli/styles"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
)

var (
	configSchemaJSON    bool
	configSchemaSection string
	configSchemaWrite   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the config file lives, print the effective settings, or list every key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, file values and WHITEBOARD_* environment overrides are merged.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every configuration key",
	Long: `List configuration keys with their type, default and allowed values.

Examples:
  whiteboard config schema                    # styled listing
  whiteboard config schema --section gesture  # one section
  whiteboard config schema --json             # key list as JSON
  whiteboard config schema --write            # write a JSON Schema next to config.toml`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&configSchemaJSON, "json", false, "output the key list as JSON")
	configSchemaCmd.Flags().StringVar(&configSchemaSection, "section", "", "only show keys of this section")
	configSchemaCmd.Flags().BoolVar(&configSchemaWrite, "write", false, "write a JSON Schema file into the config directory")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Println(app.ConfigManager.GetConfigFile())
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if configSchemaWrite {
		dir := filepath.Dir(app.ConfigManager.GetConfigFile())
		path, werr := config.GenerateSchemaFile(dir)
		if werr != nil {
			return werr
		}
		fmt.Println(path)
		return nil
	}

	ctx, cancel := app.Timeout()
	defer cancel()
	out, err := app.ConfigSchema.Execute(ctx, usecase.GetConfigSchemaInput{Section: configSchemaSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configSchemaJSON {
		s, jerr := renderer.RenderJSON(out.Keys)
		if jerr != nil {
			return jerr
		}
		fmt.Println(s)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}
