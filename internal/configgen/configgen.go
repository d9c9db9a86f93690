// Package configgen emits the YAML configuration files of a converted ML
// project from its dependency report and chosen framework.
package configgen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Supported framework identifiers for framework-specific training templates.
const (
	FrameworkGeneric    = "generic"
	FrameworkTensorFlow = "tensorflow"
	FrameworkPyTorch    = "pytorch"
	FrameworkSklearn    = "sklearn"
)

// Frameworks lists the accepted --framework values.
var Frameworks = []string{FrameworkGeneric, FrameworkTensorFlow, FrameworkPyTorch, FrameworkSklearn}

// Generator writes project configuration files into a config directory.
type Generator struct {
	configDir string
}

// NewGenerator creates a generator writing into configDir, creating the
// directory if needed.
func NewGenerator(configDir string) (*Generator, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &Generator{configDir: configDir}, nil
}

// projectConfig is the shape of project_config.yaml.
type projectConfig struct {
	Project struct {
		Name        string `yaml:"name"`
		Version     string `yaml:"version"`
		Description string `yaml:"description"`
	} `yaml:"project"`
	Paths struct {
		Data struct {
			Raw       string `yaml:"raw"`
			Processed string `yaml:"processed"`
			External  string `yaml:"external"`
		} `yaml:"data"`
		Models    string `yaml:"models"`
		Notebooks string `yaml:"notebooks"`
		Reports   string `yaml:"reports"`
	} `yaml:"paths"`
	Framework    string `yaml:"framework"`
	Dependencies struct {
		Core          []string `yaml:"core"`
		DataScience   []string `yaml:"data_science"`
		MLFrameworks  []string `yaml:"ml_frameworks"`
		Visualization []string `yaml:"visualization"`
	} `yaml:"dependencies"`
	Training struct {
		DefaultParameters map[string]any `yaml:"default_parameters"`
	} `yaml:"training"`
}

// environmentConfig is the shape of environment.yaml (conda environment).
type environmentConfig struct {
	Name         string   `yaml:"name"`
	Channels     []string `yaml:"channels"`
	Dependencies []any    `yaml:"dependencies"`
}

// CreateMLConfig writes the full configuration set for a project: the main
// project config, a conda environment spec, a framework-specific training
// template, and the data pipeline defaults. Returns written paths keyed by
// config name.
func (g *Generator) CreateMLConfig(projectName string, categorized map[string][]string, framework string) (map[string]string, error) {
	files := map[string]any{
		"project_config.yaml":  g.projectConfig(projectName, categorized, framework),
		"environment.yaml":     g.environmentConfig(categorized),
		"training_config.yaml": g.trainingConfig(framework),
		"data_config.yaml":     g.dataConfig(),
	}

	keys := map[string]string{
		"project_config.yaml":  "main",
		"environment.yaml":     "environment",
		"training_config.yaml": "training",
		"data_config.yaml":     "data",
	}

	written := make(map[string]string, len(files))
	for filename, cfg := range files {
		path := filepath.Join(g.configDir, filename)
		if err := writeYAML(path, cfg); err != nil {
			return nil, err
		}
		written[keys[filename]] = path
	}

	return written, nil
}

func (g *Generator) projectConfig(projectName string, categorized map[string][]string, framework string) projectConfig {
	var cfg projectConfig

	cfg.Project.Name = projectName
	cfg.Project.Version = "1.0.0"
	cfg.Project.Description = "ML project generated from a Jupyter notebook"

	cfg.Paths.Data.Raw = "data/raw"
	cfg.Paths.Data.Processed = "data/processed"
	cfg.Paths.Data.External = "data/external"
	cfg.Paths.Models = "models/trained"
	cfg.Paths.Notebooks = "notebooks"
	cfg.Paths.Reports = "reports"

	cfg.Framework = framework

	cfg.Dependencies.Core = orEmpty(categorized["standard_lib"])
	cfg.Dependencies.DataScience = orEmpty(categorized["data_science"])
	cfg.Dependencies.MLFrameworks = orEmpty(categorized["ml_frameworks"])
	cfg.Dependencies.Visualization = orEmpty(categorized["visualization"])

	cfg.Training.DefaultParameters = map[string]any{
		"random_state":    42,
		"test_size":       0.2,
		"validation_size": 0.1,
	}

	return cfg
}

// environmentConfig builds a conda environment spec, routing the few
// packages that install better through conda to the conda list and the rest
// to pip.
func (g *Generator) environmentConfig(categorized map[string][]string) environmentConfig {
	condaPreferred := map[string]bool{
		"tensorflow":  true,
		"pytorch":     true,
		"torch":       true,
		"cudatoolkit": true,
	}

	var conda []string
	var pip []string
	for _, libs := range categorized {
		for _, lib := range libs {
			if condaPreferred[lib] {
				conda = append(conda, lib)
			} else {
				pip = append(pip, lib)
			}
		}
	}
	if pip == nil {
		pip = []string{}
	}

	dependencies := make([]any, 0, len(conda)+1)
	for _, lib := range conda {
		dependencies = append(dependencies, lib)
	}
	dependencies = append(dependencies, map[string][]string{"pip": pip})

	return environmentConfig{
		Name:         "ml-project-env",
		Channels:     []string{"conda-forge", "defaults"},
		Dependencies: dependencies,
	}
}

// trainingConfig builds the training template, extended with
// framework-specific parameters.
func (g *Generator) trainingConfig(framework string) map[string]any {
	training := map[string]any{
		"random_state":    42,
		"test_size":       0.2,
		"validation_size": 0.1,
	}

	switch framework {
	case FrameworkTensorFlow:
		training["batch_size"] = 32
		training["epochs"] = 10
		training["learning_rate"] = 0.001
		training["early_stopping_patience"] = 5
	case FrameworkPyTorch:
		training["batch_size"] = 32
		training["epochs"] = 10
		training["learning_rate"] = 0.001
		training["optimizer"] = "Adam"
		training["scheduler"] = "StepLR"
	case FrameworkSklearn:
		training["cv_folds"] = 5
		training["scoring"] = "accuracy"
		training["n_jobs"] = -1
	}

	return map[string]any{
		"experiment": map[string]any{
			"name":         "default_experiment",
			"tracking_uri": "./mlruns",
			"run_name":     "run_001",
		},
		"data": map[string]any{
			"train_path":    "data/processed/train.csv",
			"test_path":     "data/processed/test.csv",
			"target_column": "target",
		},
		"training": training,
	}
}

func (g *Generator) dataConfig() map[string]any {
	return map[string]any{
		"data_sources": map[string]any{
			"raw": map[string]any{
				"path":          "data/raw",
				"file_patterns": []string{"*.csv", "*.parquet", "*.json"},
			},
			"processed": map[string]any{
				"path":    "data/processed",
				"formats": []string{"csv", "parquet", "h5"},
			},
		},
		"preprocessing": map[string]any{
			"missing_values": map[string]any{
				"strategy":   "mean",
				"fill_value": nil,
			},
			"scaling": map[string]any{
				"method":        "standard",
				"feature_range": []float64{0, 1},
			},
			"categorical_encoding": map[string]any{
				"method": "onehot",
			},
		},
		"validation": map[string]any{
			"split_strategy": "train_test_split",
			"test_size":      0.2,
			"random_state":   42,
		},
	}
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
