package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nbforge/nbforge/internal/codegen"
	"github.com/nbforge/nbforge/internal/config"
	"github.com/nbforge/nbforge/internal/configgen"
	"github.com/nbforge/nbforge/internal/deps"
	"github.com/nbforge/nbforge/internal/notebook"
	"github.com/nbforge/nbforge/internal/project"
	"github.com/nbforge/nbforge/internal/vcs"
)

var (
	outputDirFlag       string
	createStructureFlag bool
	analyzeDepsFlag     bool
	frameworkFlag       string
	setupVCSFlag        bool
	setupDVCFlag        bool
	dvcRemoteFlag       string
	setupCIFlag         bool
	generateConfigFlag  bool
	quietFlag           bool
	watchFlag           bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert NOTEBOOK",
	Short: "Convert a Jupyter notebook to an organized Python project",
	Long: `Convert parses a notebook document, classifies its cells, and regenerates
them as categorized Python modules (main entry script, function library,
training module, static configuration).

Optional steps extend the converted code into a full project:
  - standard ML directory structure
  - dependency analysis and requirements.txt
  - YAML project/environment/training configuration
  - git repository, hooks, DVC data versioning, CI pipeline template

Examples:
  # Convert a notebook into ./converted_project
  nbforge convert analysis.ipynb

  # Full project conversion with dependency analysis and git setup
  nbforge convert analysis.ipynb -s -d --setup-vcs --generate-config

  # Re-convert automatically whenever the notebook changes
  nbforge convert analysis.ipynb --watch
`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "output directory for the converted project")
	convertCmd.Flags().BoolVarP(&createStructureFlag, "create-structure", "s", false, "create the standard ML project structure")
	convertCmd.Flags().BoolVarP(&analyzeDepsFlag, "analyze-deps", "d", false, "analyze dependencies and generate requirements.txt")
	convertCmd.Flags().StringVarP(&frameworkFlag, "framework", "f", "", "ML framework for configuration (generic, tensorflow, pytorch, sklearn)")
	convertCmd.Flags().BoolVar(&setupVCSFlag, "setup-vcs", false, "initialize a git repository with hooks")
	convertCmd.Flags().BoolVar(&setupDVCFlag, "setup-dvc", false, "initialize DVC for data versioning")
	convertCmd.Flags().StringVar(&dvcRemoteFlag, "dvc-remote", "", "DVC remote storage path")
	convertCmd.Flags().BoolVar(&setupCIFlag, "setup-ci", false, "add CI/CD pipeline templates")
	convertCmd.Flags().BoolVarP(&generateConfigFlag, "generate-config", "c", false, "generate YAML configuration files")
	convertCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress bars and non-error output")
	convertCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "watch the notebook and re-convert on change")
}

// convertOptions collects the resolved settings of one conversion run.
type convertOptions struct {
	outputDir       string
	configDir       string
	createStructure bool
	analyzeDeps     bool
	framework       string
	setupVCS        bool
	setupDVC        bool
	dvcRemote       string
	setupCI         bool
	ciPlatform      string
	generateConfig  bool
	commitMessage   string
	quiet           bool
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling conversion...")
		cancel()
	}()

	notebookPath := args[0]
	if _, err := os.Stat(notebookPath); err != nil {
		return fmt.Errorf("notebook file not found: %s", notebookPath)
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := resolveConvertOptions(cmd, cfg)

	if err := convertNotebook(notebookPath, opts); err != nil {
		return err
	}

	if watchFlag {
		return watchNotebook(ctx, notebookPath, func() {
			if err := convertNotebook(notebookPath, opts); err != nil {
				log.Printf("Re-conversion failed: %v", err)
			}
		})
	}

	return nil
}

// resolveConvertOptions merges command flags over tool configuration
// defaults: an unset flag falls back to .nbforge/config.yml.
func resolveConvertOptions(cmd *cobra.Command, cfg *config.Config) convertOptions {
	opts := convertOptions{
		outputDir:       outputDirFlag,
		configDir:       cfg.Output.ConfigDir,
		createStructure: createStructureFlag,
		analyzeDeps:     analyzeDepsFlag,
		framework:       frameworkFlag,
		setupVCS:        setupVCSFlag,
		setupDVC:        setupDVCFlag,
		dvcRemote:       dvcRemoteFlag,
		setupCI:         setupCIFlag,
		ciPlatform:      cfg.VCS.CIPlatform,
		generateConfig:  generateConfigFlag,
		commitMessage:   cfg.VCS.CommitMessage,
		quiet:           quietFlag,
	}

	if opts.outputDir == "" {
		opts.outputDir = cfg.Output.Dir
	}
	if opts.framework == "" {
		opts.framework = cfg.Convert.Framework
	}
	if !cmd.Flags().Changed("analyze-deps") {
		opts.analyzeDeps = cfg.Convert.AnalyzeDeps
	}
	if opts.dvcRemote == "" {
		opts.dvcRemote = cfg.VCS.DVCRemote
	}

	return opts
}

// convertNotebook runs the full conversion pipeline for one notebook.
func convertNotebook(notebookPath string, opts convertOptions) error {
	data, err := os.ReadFile(notebookPath)
	if err != nil {
		return fmt.Errorf("failed to read notebook file: %w", err)
	}

	doc, err := notebook.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", notebookPath, err)
	}

	if !opts.quiet {
		fmt.Printf("Processing notebook: %s (%d cells)\n", notebookPath, len(doc.Cells))
	}

	projectName := notebookStem(notebookPath)

	// Without --create-structure the generated files land directly in the
	// output directory; with it they land in the project's src/ directory.
	projectRoot := opts.outputDir
	srcDir := opts.outputDir
	if opts.createStructure {
		paths, err := project.CreateStructure(opts.outputDir, projectName)
		if err != nil {
			return fmt.Errorf("failed to create project structure: %w", err)
		}
		srcDir = paths["src"]
		projectRoot = filepath.Dir(srcDir)
		if !opts.quiet {
			fmt.Println("Project structure created")
		}
	}

	writer, err := project.NewWriter(srcDir)
	if err != nil {
		return err
	}
	defer writer.Close()

	modules := codegen.Generate(doc.Cells)
	written, err := writer.WriteModules(modules)
	if err != nil {
		return fmt.Errorf("failed to write generated modules: %w", err)
	}
	if !opts.quiet {
		fmt.Printf("Generated %d Python files\n", len(written))
	}

	var report *deps.Report
	if opts.analyzeDeps {
		analyzer := deps.NewAnalyzer()
		report = analyzer.AnalyzeWithProgress(doc.Cells, newCellProgressReporter(opts.quiet))

		if _, err := writer.WriteDependencyReport(report); err != nil {
			return err
		}

		reqWriter, err := project.NewWriter(projectRoot)
		if err != nil {
			return err
		}
		if _, err := reqWriter.WriteRequirements(report.Requirements); err != nil {
			reqWriter.Close()
			return err
		}
		reqWriter.Close()

		if !opts.quiet {
			fmt.Printf("Dependencies detected: %d packages\n", len(report.AllDependencies))
		}
	}

	if opts.generateConfig {
		categorized := map[string][]string{}
		if report != nil {
			categorized = report.Categorized
		}

		generator, err := configgen.NewGenerator(filepath.Join(projectRoot, opts.configDir))
		if err != nil {
			return err
		}
		if _, err := generator.CreateMLConfig(projectName, categorized, opts.framework); err != nil {
			return fmt.Errorf("failed to generate configuration: %w", err)
		}
		if !opts.quiet {
			fmt.Println("Configuration files generated")
		}
	}

	if opts.setupVCS || opts.setupDVC || opts.setupCI {
		if err := setupVersionControl(projectRoot, opts); err != nil {
			return err
		}
	}

	if !opts.quiet {
		fmt.Printf("\nSuccessfully converted %s\n", notebookPath)
		fmt.Printf("Project location: %s\n", projectRoot)
	}

	return nil
}

// setupVersionControl runs the requested git/DVC/CI setup steps against the
// converted project.
func setupVersionControl(projectRoot string, opts convertOptions) error {
	manager := vcs.NewManager(projectRoot)

	if opts.setupVCS {
		if err := manager.InitRepo(opts.commitMessage); err != nil {
			return err
		}
		hooks, err := manager.SetupHooks()
		if err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Printf("Git repository initialized with %d hooks\n", len(hooks))
		}
	}

	if opts.setupDVC {
		ok, err := manager.InitDVC(opts.dvcRemote)
		if err != nil {
			return err
		}
		if !opts.quiet {
			if ok {
				fmt.Println("DVC initialized")
			} else {
				fmt.Println("DVC initialization skipped")
			}
		}
	}

	if opts.setupCI {
		path, err := manager.SetupCITemplate(opts.ciPlatform)
		if err != nil {
			return err
		}
		if !opts.quiet && path != "" {
			fmt.Printf("CI/CD template created: %s\n", path)
		}
	}

	if !opts.quiet {
		if status := manager.RepoStatus(); status.IsRepository {
			fmt.Printf("Repository status: %s branch, %d commits\n", status.CurrentBranch, status.CommitCount)
		}
	}

	return nil
}

// notebookStem returns the notebook file name without its extension.
func notebookStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
