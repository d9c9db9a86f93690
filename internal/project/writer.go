package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nbforge/nbforge/internal/codegen"
	"github.com/nbforge/nbforge/internal/deps"
)

// Writer persists generated artifacts atomically using a temp → rename
// pattern, so a partially written conversion never clobbers a previous one.
type Writer struct {
	outputDir string
	tempDir   string
}

// NewWriter creates a writer rooted at outputDir.
func NewWriter(outputDir string) (*Writer, error) {
	tempDir := filepath.Join(outputDir, ".tmp")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean up stale temp files from interrupted runs.
	if err := os.RemoveAll(tempDir); err != nil {
		return nil, fmt.Errorf("failed to clean temp directory: %w", err)
	}
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &Writer{
		outputDir: outputDir,
		tempDir:   tempDir,
	}, nil
}

// Close removes the writer's temp directory.
func (w *Writer) Close() error {
	return os.RemoveAll(w.tempDir)
}

// moduleFilenames maps logical module names to output file names.
var moduleFilenames = map[string]string{
	codegen.ModuleMain:      "main.py",
	codegen.ModuleFunctions: "functions.py",
	codegen.ModuleTraining:  "training.py",
	codegen.ModuleConfig:    "config.py",
}

// WriteModules persists generated module texts as Python files. Returns the
// written file names keyed by logical module name.
func (w *Writer) WriteModules(modules map[string]string) (map[string]string, error) {
	written := make(map[string]string, len(modules))

	for name, content := range modules {
		filename, ok := moduleFilenames[name]
		if !ok {
			filename = name + ".py"
		}
		if err := w.writeFile(filename, []byte(content)); err != nil {
			return nil, err
		}
		written[name] = filepath.Join(w.outputDir, filename)
	}

	return written, nil
}

// WriteDependencyReport persists the dependency report as indented JSON.
func (w *Writer) WriteDependencyReport(report *deps.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal dependency report: %w", err)
	}

	const filename = "dependencies_analysis.json"
	if err := w.writeFile(filename, data); err != nil {
		return "", err
	}
	return filepath.Join(w.outputDir, filename), nil
}

// WriteRequirements persists the requirements list as a flat manifest, one
// package per line.
func (w *Writer) WriteRequirements(requirements []string) (string, error) {
	content := strings.Join(requirements, "\n")
	if content != "" {
		content += "\n"
	}

	const filename = "requirements.txt"
	if err := w.writeFile(filename, []byte(content)); err != nil {
		return "", err
	}
	return filepath.Join(w.outputDir, filename), nil
}

// writeFile writes content to a temp file and renames it into place.
func (w *Writer) writeFile(filename string, content []byte) error {
	tempPath := filepath.Join(w.tempDir, filename)
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	finalPath := filepath.Join(w.outputDir, filename)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
