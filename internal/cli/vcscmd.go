package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbforge/nbforge/internal/config"
	"github.com/nbforge/nbforge/internal/vcs"
)

var (
	vcsWithDVC        bool
	vcsDVCRemote      string
	vcsWithCI         bool
	vcsCreateBranches bool
)

// setupVCSCmd represents the setup-vcs command
var setupVCSCmd = &cobra.Command{
	Use:   "setup-vcs PROJECT_PATH",
	Short: "Set up version control for an existing ML project",
	Long: `Setup-vcs initializes a git repository with ML-oriented hooks in an
existing project, optionally adding DVC data versioning, a CI pipeline
template, and a standard branch structure.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetupVCS,
}

func init() {
	rootCmd.AddCommand(setupVCSCmd)
	setupVCSCmd.Flags().BoolVar(&vcsWithDVC, "with-dvc", false, "initialize DVC for data versioning")
	setupVCSCmd.Flags().StringVar(&vcsDVCRemote, "dvc-remote", "", "DVC remote storage path")
	setupVCSCmd.Flags().BoolVar(&vcsWithCI, "with-ci", false, "add CI/CD templates")
	setupVCSCmd.Flags().BoolVar(&vcsCreateBranches, "create-branches", false, "create standard branch structure")
}

func runSetupVCS(cmd *cobra.Command, args []string) error {
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

	manager := vcs.NewManager(projectPath)

	if err := manager.InitRepo(cfg.VCS.CommitMessage); err != nil {
		return err
	}
	hooks, err := manager.SetupHooks()
	if err != nil {
		return err
	}
	fmt.Printf("Git repository initialized with %d hooks\n", len(hooks))

	if vcsWithDVC {
		remote := vcsDVCRemote
		if remote == "" {
			remote = cfg.VCS.DVCRemote
		}
		ok, err := manager.InitDVC(remote)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("DVC initialized")
		} else {
			fmt.Println("DVC initialization skipped")
		}
	}

	if vcsWithCI {
		if path, err := manager.SetupCITemplate(cfg.VCS.CIPlatform); err != nil {
			return err
		} else if path != "" {
			fmt.Printf("CI/CD template created: %s\n", path)
		}
	}

	if vcsCreateBranches {
		results := manager.CreateBranchStructure(nil)
		created := 0
		for _, ok := range results {
			if ok {
				created++
			}
		}
		fmt.Printf("Branch structure created: %d/%d branches\n", created, len(results))
	}

	status := manager.RepoStatus()
	if status.IsRepository {
		fmt.Printf("Repository status: %s branch, %d commits\n", status.CurrentBranch, status.CommitCount)
	}

	return nil
}
