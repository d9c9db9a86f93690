package configgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) (*Generator, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "config")
	g, err := NewGenerator(dir)
	require.NoError(t, err)
	return g, dir
}

func TestCreateMLConfig_WritesAllFiles(t *testing.T) {
	t.Parallel()
	g, dir := newTestGenerator(t)

	written, err := g.CreateMLConfig("my-project", nil, FrameworkGeneric)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "project_config.yaml"), written["main"])
	assert.Equal(t, filepath.Join(dir, "environment.yaml"), written["environment"])
	assert.Equal(t, filepath.Join(dir, "training_config.yaml"), written["training"])
	assert.Equal(t, filepath.Join(dir, "data_config.yaml"), written["data"])
	for _, path := range written {
		assert.FileExists(t, path)
	}
}

func TestCreateMLConfig_ProjectConfigContents(t *testing.T) {
	t.Parallel()
	g, _ := newTestGenerator(t)

	categorized := map[string][]string{
		"data_science":  {"numpy", "pandas"},
		"ml_frameworks": {"sklearn"},
	}
	written, err := g.CreateMLConfig("iris-analysis", categorized, FrameworkSklearn)
	require.NoError(t, err)

	cfg, err := LoadFile(written["main"])
	require.NoError(t, err)

	project := cfg["project"].(map[string]any)
	assert.Equal(t, "iris-analysis", project["name"])
	assert.Equal(t, "1.0.0", project["version"])
	assert.Equal(t, "sklearn", cfg["framework"])

	dependencies := cfg["dependencies"].(map[string]any)
	assert.Equal(t, []any{"numpy", "pandas"}, dependencies["data_science"])
	assert.Equal(t, []any{"sklearn"}, dependencies["ml_frameworks"])
	// Absent categories serialize as empty lists, not null.
	assert.Equal(t, []any{}, dependencies["visualization"])

	training := cfg["training"].(map[string]any)
	params := training["default_parameters"].(map[string]any)
	assert.Equal(t, 42, params["random_state"])
	assert.Equal(t, 0.2, params["test_size"])
}

func TestCreateMLConfig_EnvironmentSplitsCondaAndPip(t *testing.T) {
	t.Parallel()
	g, _ := newTestGenerator(t)

	categorized := map[string][]string{
		"ml_frameworks": {"tensorflow", "sklearn"},
		"data_science":  {"numpy"},
	}
	written, err := g.CreateMLConfig("proj", categorized, FrameworkTensorFlow)
	require.NoError(t, err)

	cfg, err := LoadFile(written["environment"])
	require.NoError(t, err)

	assert.Equal(t, "ml-project-env", cfg["name"])
	assert.Equal(t, []any{"conda-forge", "defaults"}, cfg["channels"])

	deps := cfg["dependencies"].([]any)
	require.NotEmpty(t, deps)

	var conda []string
	var pip []any
	for _, d := range deps {
		switch v := d.(type) {
		case string:
			conda = append(conda, v)
		case map[string]any:
			pip = v["pip"].([]any)
		}
	}
	assert.Equal(t, []string{"tensorflow"}, conda)
	assert.ElementsMatch(t, []any{"sklearn", "numpy"}, pip)
}

func TestCreateMLConfig_TrainingTemplatePerFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		framework string
		wantKey   string
		absentKey string
	}{
		{FrameworkTensorFlow, "early_stopping_patience", "optimizer"},
		{FrameworkPyTorch, "optimizer", "cv_folds"},
		{FrameworkSklearn, "cv_folds", "batch_size"},
		{FrameworkGeneric, "random_state", "batch_size"},
	}

	for _, tt := range tests {
		t.Run(tt.framework, func(t *testing.T) {
			t.Parallel()
			g, _ := newTestGenerator(t)

			written, err := g.CreateMLConfig("proj", nil, tt.framework)
			require.NoError(t, err)

			cfg, err := LoadFile(written["training"])
			require.NoError(t, err)

			training := cfg["training"].(map[string]any)
			assert.Contains(t, training, tt.wantKey)
			assert.NotContains(t, training, tt.absentKey)

			experiment := cfg["experiment"].(map[string]any)
			assert.Equal(t, "default_experiment", experiment["name"])
		})
	}
}

func TestCreateMLConfig_DataConfigDefaults(t *testing.T) {
	t.Parallel()
	g, _ := newTestGenerator(t)

	written, err := g.CreateMLConfig("proj", nil, FrameworkGeneric)
	require.NoError(t, err)

	cfg, err := LoadFile(written["data"])
	require.NoError(t, err)

	validation := cfg["validation"].(map[string]any)
	assert.Equal(t, "train_test_split", validation["split_strategy"])
	assert.Equal(t, 0.2, validation["test_size"])
	assert.Equal(t, 42, validation["random_state"])

	preprocessing := cfg["preprocessing"].(map[string]any)
	missing := preprocessing["missing_values"].(map[string]any)
	assert.Equal(t, "mean", missing["strategy"])
}
