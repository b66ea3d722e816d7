package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"--terminal", "--save", "slot1.json", "--env", "dev.env"})
	require.NoError(t, err)
	assert.True(t, f.terminal)
	assert.Equal(t, "slot1.json", f.savePath)
	assert.Equal(t, "dev.env", f.envFile)

	f, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, ".env", f.envFile)
	assert.False(t, f.terminal)
}

func TestSetupWithEnvFileAndSaveOverride(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	logPath := filepath.Join(dir, "logs", "idlecraft.log")
	require.NoError(t, os.WriteFile(envFile, []byte("IDLECRAFT_LOG_PATH="+logPath+"\nIDLECRAFT_AUTOSAVE=0\n"), 0o644))
	t.Setenv("IDLECRAFT_LOG_PATH", logPath)
	t.Setenv("IDLECRAFT_AUTOSAVE", "0")

	savePath := filepath.Join(dir, "slot.json")
	rt, err := setup(flags{envFile: envFile, savePath: savePath})
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, savePath, rt.store.Path)
	assert.Zero(t, rt.cfg.Autosave)
	assert.FileExists(t, logPath)

	require.NoError(t, rt.session.Save(rt.store))
	assert.FileExists(t, savePath)
}

func TestSetupFailsOnBrokenItemDatabase(t *testing.T) {
	dir := t.TempDir()
	items := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(items, []byte("{not json"), 0o644))
	t.Setenv("IDLECRAFT_ITEMS_PATH", items)
	t.Setenv("IDLECRAFT_LOG_PATH", "")

	_, err := setup(flags{savePath: filepath.Join(dir, "slot.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load game data")
}
