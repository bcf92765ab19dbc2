package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(envName, "testing")

	xdg.Reload()

	require.NoError(t, Initialize())

	dataDir := filepath.Join(dataHome, "meditate")

	assert.Equal(t, filepath.Join(configHome, "meditate", "config_testing.yml"), ConfigFilePath())
	assert.Equal(t, dataDir, DataDir())
	assert.Equal(t, filepath.Join(dataDir, "meditate_testing.db"), DBFilePath())
	assert.Equal(t, filepath.Join(dataDir, "status_testing.json"), StatusFilePath())
	assert.Equal(t, filepath.Join(dataDir, "log", "meditate_testing.log"), LogFilePath())
	assert.DirExists(t, dataDir)
}
