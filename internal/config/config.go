// Package config loads nbforge tool configuration from .nbforge/config.yml
// with environment variable overrides.
package config

import "github.com/nbforge/nbforge/internal/configgen"

// Config represents the complete nbforge configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Convert ConvertConfig `yaml:"convert" mapstructure:"convert"`
	VCS     VCSConfig     `yaml:"vcs" mapstructure:"vcs"`
}

// OutputConfig controls where conversion artifacts land.
type OutputConfig struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`               // default output directory for converted projects
	ConfigDir string `yaml:"config_dir" mapstructure:"config_dir"` // config directory name inside the project
}

// ConvertConfig holds conversion defaults.
type ConvertConfig struct {
	Framework   string `yaml:"framework" mapstructure:"framework"`       // default ML framework for config templates
	AnalyzeDeps bool   `yaml:"analyze_deps" mapstructure:"analyze_deps"` // analyze dependencies by default
}

// VCSConfig holds version-control defaults.
type VCSConfig struct {
	CIPlatform    string `yaml:"ci_platform" mapstructure:"ci_platform"`       // CI template platform
	CommitMessage string `yaml:"commit_message" mapstructure:"commit_message"` // initial commit message
	DVCRemote     string `yaml:"dvc_remote" mapstructure:"dvc_remote"`         // default DVC remote storage
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:       "./converted_project",
			ConfigDir: "config",
		},
		Convert: ConvertConfig{
			Framework:   configgen.FrameworkGeneric,
			AnalyzeDeps: true,
		},
		VCS: VCSConfig{
			CIPlatform:    "github",
			CommitMessage: "Initial ML project commit",
		},
	}
}
