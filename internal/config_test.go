package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ReadsYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `app_name: tabrel-demo
table:
  strict_rename: true
  strict_update: false
demo:
  country: Germany
  row_limit: 3
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tabrel-demo", cfg.AppName)
	assert.True(t, cfg.Table.StrictRename)
	assert.False(t, cfg.Table.StrictUpdate)
	assert.Equal(t, "Germany", cfg.Demo.Country)
	assert.Equal(t, 3, cfg.Demo.RowLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
