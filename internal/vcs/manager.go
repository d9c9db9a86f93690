package vcs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Manager drives version-control setup for a project directory.
type Manager struct {
	projectPath string
	runner      Runner
}

// NewManager creates a manager for the given project path using the real
// command runner.
func NewManager(projectPath string) *Manager {
	return NewManagerWithRunner(projectPath, NewRunner())
}

// NewManagerWithRunner creates a manager with an explicit runner. Tests use
// this to substitute a MockRunner.
func NewManagerWithRunner(projectPath string, runner Runner) *Manager {
	return &Manager{
		projectPath: projectPath,
		runner:      runner,
	}
}

// InitRepo initializes a git repository with a .gitignore and an initial
// commit. Idempotent: an existing repository is left untouched.
func (m *Manager) InitRepo(commitMessage string) error {
	if commitMessage == "" {
		commitMessage = "Initial ML project commit"
	}

	if _, err := os.Stat(filepath.Join(m.projectPath, ".git")); err == nil {
		log.Println("Git repository already exists")
		return nil
	}

	if _, err := m.runner.Git(m.projectPath, "init"); err != nil {
		return fmt.Errorf("git init failed: %w", err)
	}

	if err := m.ensureGitignore(); err != nil {
		return err
	}

	if _, err := m.runner.Git(m.projectPath, "add", "."); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}
	if _, err := m.runner.Git(m.projectPath, "commit", "-m", commitMessage); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}

	return nil
}

// ensureGitignore writes the ML project .gitignore when none exists.
func (m *Manager) ensureGitignore() error {
	path := filepath.Join(m.projectPath, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(gitignoreTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}

// SetupHooks installs pre-commit and post-commit hooks. Returns the hook
// names that were installed.
func (m *Manager) SetupHooks() (map[string]bool, error) {
	hooksDir := filepath.Join(m.projectPath, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create hooks directory: %w", err)
	}

	hooks := map[string]string{
		"pre-commit":  preCommitHook,
		"post-commit": postCommitHook,
	}

	installed := make(map[string]bool, len(hooks))
	for name, content := range hooks {
		path := filepath.Join(hooksDir, name)
		if err := os.WriteFile(path, []byte(content), 0755); err != nil {
			return installed, fmt.Errorf("failed to install %s hook: %w", name, err)
		}
		installed[name] = true
	}

	return installed, nil
}

// InitDVC initializes DVC for data versioning, optionally configuring a
// default remote (s3://, gs://, azure://, or a local directory). Returns
// false without error when the dvc binary is not installed.
func (m *Manager) InitDVC(remoteStorage string) (bool, error) {
	if !m.runner.LookPath("dvc") {
		log.Println("DVC not installed, skipping data versioning setup")
		return false, nil
	}

	if _, err := m.runner.Run(m.projectPath, "dvc", "init"); err != nil {
		return false, fmt.Errorf("dvc init failed: %w", err)
	}

	if remoteStorage != "" {
		remote := remoteStorage
		if !isRemoteURL(remoteStorage) {
			// Local directory remotes get created up front.
			if err := os.MkdirAll(remoteStorage, 0755); err != nil {
				return false, fmt.Errorf("failed to create local DVC remote: %w", err)
			}
		}
		if _, err := m.runner.Run(m.projectPath, "dvc", "remote", "add", "-d", "storage", remote); err != nil {
			return false, fmt.Errorf("dvc remote add failed: %w", err)
		}
	}

	// Track data directories that already hold files.
	for _, dir := range []string{"data/raw", "data/processed", "models/trained"} {
		full := filepath.Join(m.projectPath, dir)
		if !dirHasEntries(full) {
			continue
		}
		if _, err := m.runner.Run(m.projectPath, "dvc", "add", dir); err != nil {
			log.Printf("dvc add %s failed: %v", dir, err)
		}
	}

	if _, err := m.runner.Git(m.projectPath, "add", ".dvc", "*.dvc"); err == nil {
		m.runner.Git(m.projectPath, "commit", "-m", "Initialize DVC")
	}

	return true, nil
}

func isRemoteURL(storage string) bool {
	for _, scheme := range []string{"s3://", "gs://", "azure://"} {
		if strings.HasPrefix(storage, scheme) {
			return true
		}
	}
	return false
}

func dirHasEntries(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}

// defaultBranches is the standard branch structure for an ML project.
var defaultBranches = []string{
	"develop",
	"staging",
	"experiment/data-preprocessing",
	"experiment/model-tuning",
}

// CreateBranchStructure creates the given branches (or the default set when
// branches is nil), returning per-branch success. The checkout returns to
// the original branch after each creation.
func (m *Manager) CreateBranchStructure(branches []string) map[string]bool {
	if branches == nil {
		branches = defaultBranches
	}

	current, err := m.runner.Git(m.projectPath, "branch", "--show-current")
	if err != nil || current == "" {
		current = "main"
	}

	results := make(map[string]bool, len(branches))
	for _, branch := range branches {
		if _, err := m.runner.Git(m.projectPath, "checkout", "-b", branch); err != nil {
			log.Printf("Failed to create branch %s: %v", branch, err)
			results[branch] = false
			continue
		}
		m.runner.Git(m.projectPath, "checkout", current)
		results[branch] = true
	}

	return results
}

// Status describes the repository state of a project.
type Status struct {
	IsRepository  bool     `json:"is_repository"`
	CurrentBranch string   `json:"current_branch,omitempty"`
	Changes       []string `json:"changes"`
	CommitCount   int      `json:"commit_count"`
}

// RepoStatus reports the current branch, uncommitted changes, and commit
// count. A directory that is not a repository yields a zero Status with
// IsRepository false rather than an error.
func (m *Manager) RepoStatus() Status {
	branch, err := m.runner.Git(m.projectPath, "branch", "--show-current")
	if err != nil {
		return Status{Changes: []string{}}
	}

	status := Status{
		IsRepository:  true,
		CurrentBranch: branch,
		Changes:       []string{},
	}

	if out, err := m.runner.Git(m.projectPath, "status", "--porcelain"); err == nil && out != "" {
		for _, line := range strings.Split(out, "\n") {
			if line != "" {
				status.Changes = append(status.Changes, line)
			}
		}
	}

	if out, err := m.runner.Git(m.projectPath, "rev-list", "--count", "HEAD"); err == nil {
		if count, err := strconv.Atoi(out); err == nil {
			status.CommitCount = count
		}
	}

	return status
}
