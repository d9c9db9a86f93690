package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbforge/nbforge/internal/vcs"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status PROJECT_PATH",
	Short: "Check project structure, version control, and configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	if _, err := os.Stat(projectPath); err != nil {
		return fmt.Errorf("project path not found: %s", projectPath)
	}

	fmt.Printf("Project status: %s\n", filepath.Base(projectPath))
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("\nProject structure:")
	for _, dir := range []string{"data", "models", "src", "notebooks", "tests", "config"} {
		fmt.Printf("  %s %s/\n", checkmark(dirExists(filepath.Join(projectPath, dir))), dir)
	}

	fmt.Println("\nVersion control:")
	status := vcs.NewManager(projectPath).RepoStatus()
	if status.IsRepository {
		fmt.Printf("  ✓ Git: %s (%d commits)\n", status.CurrentBranch, status.CommitCount)
		if len(status.Changes) > 0 {
			fmt.Printf("  ! Uncommitted changes: %d\n", len(status.Changes))
		}
	} else {
		fmt.Println("  ✗ Git: not initialized")
	}

	fmt.Println("\nConfiguration:")
	for _, name := range []string{"project_config.yaml", "environment.yaml", "training_config.yaml", "data_config.yaml"} {
		path := filepath.Join(projectPath, "config", name)
		fmt.Printf("  %s %s\n", checkmark(fileExists(path)), name)
	}

	reqPath := filepath.Join(projectPath, "requirements.txt")
	if count, ok := countRequirements(reqPath); ok {
		fmt.Printf("  ✓ requirements.txt: %d dependencies\n", count)
	} else {
		fmt.Println("  ✗ requirements.txt: not found")
	}

	return nil
}

func checkmark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// countRequirements counts non-empty, non-comment lines of a requirements
// manifest.
func countRequirements(path string) (int, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			count++
		}
	}
	return count, true
}
