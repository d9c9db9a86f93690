package configgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "config.yaml", "project:\n  name: demo\n  version: 1.0.0\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	project := cfg["project"].(map[string]any)
	assert.Equal(t, "demo", project["name"])
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "config.json", `{"training": {"epochs": 10}}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	training := cfg["training"].(map[string]any)
	assert.Equal(t, float64(10), training["epochs"])
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "config.toml", "key = 1\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestUpdateFile_DeepMerge(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "config.yaml", `
training:
  epochs: 10
  batch_size: 32
experiment:
  name: baseline
`)

	err := UpdateFile(path, map[string]any{
		"training": map[string]any{"epochs": 50},
		"extra":    "value",
	})
	require.NoError(t, err)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	training := cfg["training"].(map[string]any)
	assert.Equal(t, 50, training["epochs"])
	// Sibling keys of a merged mapping survive.
	assert.Equal(t, 32, training["batch_size"])

	experiment := cfg["experiment"].(map[string]any)
	assert.Equal(t, "baseline", experiment["name"])
	assert.Equal(t, "value", cfg["extra"])
}

func TestUpdateFile_ReplacesNonMappingValues(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "config.yaml", "tags:\n  - a\n  - b\n")

	err := UpdateFile(path, map[string]any{"tags": []string{"c"}})
	require.NoError(t, err)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []any{"c"}, cfg["tags"])
}
