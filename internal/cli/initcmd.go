package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nbforge/nbforge/internal/config"
	"github.com/nbforge/nbforge/internal/configgen"
	"github.com/nbforge/nbforge/internal/project"
	"github.com/nbforge/nbforge/internal/vcs"
)

var (
	initBasePath  string
	initFramework string
	initWithVCS   bool
	initWithDVC   bool
	initWithCI    bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init PROJECT",
	Short: "Initialize a new ML project structure",
	Long: `Init creates the standard ML project directory tree with starter files
and YAML configuration, optionally wiring up git, DVC, and CI templates.

Examples:
  # Create a project in the current directory
  nbforge init churn-model

  # Create a sklearn project with version control
  nbforge init churn-model -f sklearn --with-vcs
`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initBasePath, "base-path", "b", ".", "base path for project creation")
	initCmd.Flags().StringVarP(&initFramework, "framework", "f", "", "ML framework for configuration (generic, tensorflow, pytorch, sklearn)")
	initCmd.Flags().BoolVar(&initWithVCS, "with-vcs", false, "initialize version control")
	initCmd.Flags().BoolVar(&initWithDVC, "with-dvc", false, "initialize DVC")
	initCmd.Flags().BoolVar(&initWithCI, "with-ci", false, "add CI/CD templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	projectName := args[0]

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	framework := initFramework
	if framework == "" {
		framework = cfg.Convert.Framework
	}

	fmt.Printf("Creating ML project: %s\n", projectName)

	paths, err := project.CreateStructure(initBasePath, projectName)
	if err != nil {
		return fmt.Errorf("failed to create project structure: %w", err)
	}
	projectRoot := filepath.Dir(paths["src"])

	generator, err := configgen.NewGenerator(filepath.Join(projectRoot, cfg.Output.ConfigDir))
	if err != nil {
		return err
	}
	if _, err := generator.CreateMLConfig(projectName, map[string][]string{}, framework); err != nil {
		return fmt.Errorf("failed to generate configuration: %w", err)
	}

	fmt.Println("Project structure:")
	for name, path := range paths {
		fmt.Printf("  %s: %s\n", name, path)
	}

	if initWithVCS || initWithDVC || initWithCI {
		manager := vcs.NewManager(projectRoot)

		if initWithVCS {
			if err := manager.InitRepo(cfg.VCS.CommitMessage); err != nil {
				return err
			}
			if _, err := manager.SetupHooks(); err != nil {
				return err
			}
			fmt.Println("Git repository initialized")
		}

		if initWithDVC {
			ok, err := manager.InitDVC(cfg.VCS.DVCRemote)
			if err != nil {
				return err
			}
			if ok {
				fmt.Println("DVC initialized")
			} else {
				fmt.Println("DVC initialization skipped")
			}
		}

		if initWithCI {
			if path, err := manager.SetupCITemplate(cfg.VCS.CIPlatform); err != nil {
				return err
			} else if path != "" {
				fmt.Printf("CI/CD template created: %s\n", path)
			}
		}
	}

	fmt.Printf("\nProject ready: %s\n", projectRoot)
	return nil
}
