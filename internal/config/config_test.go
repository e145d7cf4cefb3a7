package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interfaces.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`interfaces:
  eth0:
    num_vfs: 4
  enp7s0f1:
    num_vfs: 16
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, map[string]Interface{
		"eth0":     {NumVFs: 4},
		"enp7s0f1": {NumVFs: 16},
	}, cfg.Interfaces)
	assert.Equal(t, map[string]int{"eth0": 4, "enp7s0f1": 16}, cfg.NumVFsByInterface())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interfaces.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interfaces: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
