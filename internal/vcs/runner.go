// Package vcs wires a converted project into version control: git
// initialization and hooks, DVC data versioning, branch structure, and CI
// pipeline templates.
package vcs

import (
	"os/exec"
	"strings"
)

// Runner executes external version-control commands in a project directory.
// The interface exists so git and dvc invocations can be mocked in tests.
type Runner interface {
	// Git runs a git subcommand in dir and returns its trimmed stdout.
	Git(dir string, args ...string) (string, error)

	// Run runs an arbitrary command in dir and returns its trimmed stdout.
	Run(dir, name string, args ...string) (string, error)

	// LookPath reports whether a binary is installed.
	LookPath(name string) bool
}

// execRunner is the real implementation using exec.Command.
type execRunner struct{}

// NewRunner returns the default command runner.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Git(dir string, args ...string) (string, error) {
	return r.Run(dir, "git", args...)
}

func (r *execRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func (r *execRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
