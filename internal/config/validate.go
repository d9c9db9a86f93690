package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nbforge/nbforge/internal/configgen"
)

var (
	// ErrInvalidFramework indicates an unsupported ML framework
	ErrInvalidFramework = errors.New("invalid framework")

	// ErrInvalidCIPlatform indicates an unsupported CI platform
	ErrInvalidCIPlatform = errors.New("invalid CI platform")

	// ErrEmptyOutputDir indicates a missing output directory
	ErrEmptyOutputDir = errors.New("empty output directory")

	// ErrEmptyConfigDir indicates a missing config directory name
	ErrEmptyConfigDir = errors.New("empty config directory")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		errs = append(errs, fmt.Errorf("%w: output.dir is required", ErrEmptyOutputDir))
	}
	if strings.TrimSpace(cfg.Output.ConfigDir) == "" {
		errs = append(errs, fmt.Errorf("%w: output.config_dir is required", ErrEmptyConfigDir))
	}

	if !validFramework(cfg.Convert.Framework) {
		errs = append(errs, fmt.Errorf("%w: must be one of %s, got '%s'",
			ErrInvalidFramework, strings.Join(configgen.Frameworks, ", "), cfg.Convert.Framework))
	}

	if cfg.VCS.CIPlatform != "github" {
		errs = append(errs, fmt.Errorf("%w: must be 'github', got '%s'", ErrInvalidCIPlatform, cfg.VCS.CIPlatform))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validFramework(framework string) bool {
	for _, f := range configgen.Frameworks {
		if strings.ToLower(framework) == f {
			return true
		}
	}
	return false
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
