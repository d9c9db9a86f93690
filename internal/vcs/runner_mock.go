package vcs

import (
	"fmt"
	"strings"
)

// MockRunner is a scriptable Runner implementation for tests. It records
// every invocation and serves canned responses keyed by the joined command
// line.
type MockRunner struct {
	// Responses maps "git rev-list --count HEAD" style keys to stdout.
	Responses map[string]string

	// Errors maps command keys to forced errors.
	Errors map[string]error

	// Installed lists binaries LookPath reports as present.
	Installed map[string]bool

	// Calls records every command in invocation order.
	Calls []string
}

// NewMockRunner creates a mock with git and dvc installed and no canned
// responses.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses: map[string]string{},
		Errors:    map[string]error{},
		Installed: map[string]bool{"git": true, "dvc": true},
	}
}

func (m *MockRunner) Git(dir string, args ...string) (string, error) {
	return m.Run(dir, "git", args...)
}

func (m *MockRunner) Run(dir, name string, args ...string) (string, error) {
	key := name + " " + strings.Join(args, " ")
	m.Calls = append(m.Calls, key)

	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	return m.Responses[key], nil
}

func (m *MockRunner) LookPath(name string) bool {
	return m.Installed[name]
}

// Called reports whether any recorded call starts with prefix.
func (m *MockRunner) Called(prefix string) bool {
	for _, call := range m.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// String returns a human-readable representation of the recorded calls.
func (m *MockRunner) String() string {
	return fmt.Sprintf("MockRunner{calls=%v}", m.Calls)
}
