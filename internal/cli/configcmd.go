package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nbforge/nbforge/internal/config"
	"github.com/nbforge/nbforge/internal/configgen"
	"github.com/nbforge/nbforge/internal/deps"
)

var configFramework string

// setupConfigCmd represents the setup-config command
var setupConfigCmd = &cobra.Command{
	Use:   "setup-config PROJECT_PATH",
	Short: "Generate configuration files for an ML project",
	Long: `Setup-config writes the YAML configuration set (project, environment,
training, data) for an existing project, reusing a previously saved
dependency analysis when one is found under src/.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetupConfig,
}

func init() {
	rootCmd.AddCommand(setupConfigCmd)
	setupConfigCmd.Flags().StringVar(&configFramework, "framework", "", "ML framework for configuration (generic, tensorflow, pytorch, sklearn)")
}

func runSetupConfig(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	if _, err := os.Stat(projectPath); err != nil {
		return fmt.Errorf("project path not found: %s", projectPath)
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	framework := configFramework
	if framework == "" {
		framework = cfg.Convert.Framework
	}

	// Reuse the conversion's dependency analysis when available.
	categorized := map[string][]string{}
	reportPath := filepath.Join(projectPath, "src", "dependencies_analysis.json")
	if data, err := os.ReadFile(reportPath); err == nil {
		var report deps.Report
		if err := json.Unmarshal(data, &report); err == nil && report.Categorized != nil {
			categorized = report.Categorized
		}
	}

	generator, err := configgen.NewGenerator(filepath.Join(projectPath, cfg.Output.ConfigDir))
	if err != nil {
		return err
	}

	files, err := generator.CreateMLConfig(filepath.Base(projectPath), categorized, framework)
	if err != nil {
		return fmt.Errorf("failed to generate configuration: %w", err)
	}

	fmt.Println("Configuration files created:")
	for name, path := range files {
		fmt.Printf("  %s: %s\n", name, path)
	}

	return nil
}
