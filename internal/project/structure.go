// Package project scaffolds the on-disk layout of a converted ML project and
// persists generated artifacts.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbforge/nbforge/internal/codegen"
)

// standardStructure is the directory tree of a standard ML project, mapping
// each top-level directory to its subdirectories.
var standardStructure = map[string][]string{
	"data":      {"raw", "processed", "external"},
	"models":    {"trained", "pretrained"},
	"src":       {"data", "models", "utils", "config"},
	"notebooks": {"exploratory", "experimental"},
	"tests":     {"unit", "integration"},
	"docs":      {},
	"reports":   {"figures"},
}

// CreateStructure creates the standard ML project tree under
// basePath/projectName and seeds it with starter files (requirements.txt,
// .gitignore, config.py). Returns the created top-level paths keyed by
// directory name.
func CreateStructure(basePath, projectName string) (map[string]string, error) {
	projectPath := filepath.Join(basePath, projectName)
	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	created := make(map[string]string, len(standardStructure))

	for dir, subdirs := range standardStructure {
		dirPath := filepath.Join(projectPath, dir)
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
		created[dir] = dirPath

		for _, sub := range subdirs {
			if err := os.MkdirAll(filepath.Join(dirPath, sub), 0755); err != nil {
				return nil, fmt.Errorf("failed to create %s/%s: %w", dir, sub, err)
			}
		}
	}

	if err := createStandardFiles(projectPath); err != nil {
		return nil, err
	}

	return created, nil
}

func createStandardFiles(projectPath string) error {
	files := map[string]string{
		"requirements.txt": starterRequirements,
		".gitignore":       starterGitignore,
		"config.py":        codegen.ConfigModuleSource,
	}

	for name, content := range files {
		path := filepath.Join(projectPath, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return nil
}

const starterRequirements = `# Core dependencies
numpy>=1.21.0
pandas>=1.3.0
matplotlib>=3.4.0
seaborn>=0.11.0
scikit-learn>=1.0.0

# ML/DL frameworks (uncomment as needed)
# tensorflow>=2.8.0
# torch>=1.9.0
# xgboost>=1.5.0
# lightgbm>=3.3.0

# Utilities
jupyter>=1.0.0
ipykernel>=6.0.0
`

const starterGitignore = `# Data
data/raw/
data/processed/
data/external/

# Models
models/trained/
models/pretrained/

# Environment
.env
.venv
env/
venv/
ENV/

# IDE
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db

# Jupyter
.ipynb_checkpoints
`
