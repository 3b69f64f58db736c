package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_NoFile_ReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	assert.Equal(t, DefaultColorMode, cfg.Color)
	assert.Empty(t, cfg.Tee)
	assert.False(t, cfg.NoGCC)
	assert.Empty(t, cfg.StatusFormat)
}

func TestLoad_LocalFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	yaml := "color: never\nnogcc: true\nstatus_format: \"[%s/%t] \"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ninjafmt.yaml"), []byte(yaml), 0o644))

	cfg := Load()
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.NoGCC)
	assert.Equal(t, "[%s/%t] ", cfg.StatusFormat)
}

func TestLoad_MalformedFile_WarnsAndUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ninjafmt.yaml"), []byte("color: [broken\n"), 0o644))

	cfg := Load()
	assert.Equal(t, DefaultColorMode, cfg.Color)
}

func TestLoad_XDGFile_UsedWhenNoLocalFile(t *testing.T) {
	chdir(t, t.TempDir())
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	appDir := filepath.Join(configHome, "ninjafmt")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, ".ninjafmt.yaml"), []byte("tee: /tmp/build.log\n"), 0o644))

	cfg := Load()
	assert.Equal(t, "/tmp/build.log", cfg.Tee)
}
