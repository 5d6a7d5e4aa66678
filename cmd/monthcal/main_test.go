package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"monthcal/internal/config"
	"monthcal/internal/storage"
)

func writeConfig(t *testing.T, dir, logPath string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	data := "store = \"sqlite\"\nlog_level = \"info\"\nlog_path = \"" + filepath.ToSlash(logPath) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRunFailureReachesLogAndClosesStore(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "monthcal.log")
	cfgPath := writeConfig(t, dir, logPath)

	var used storage.Store
	err := run(cfgPath, func(s storage.Store, _ config.Config, _ *zap.Logger) error {
		used = s
		return errors.New("terminal gone")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error running program: terminal gone")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "program failed")
	assert.Contains(t, string(data), "terminal gone")

	require.NotNil(t, used)
	_, err = used.List(storage.NewDateKey(2026, 10, 17))
	assert.Error(t, err, "store is closed once run returns")
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`store = "bolt"`), 0o644))

	called := false
	err := run(path, func(storage.Store, config.Config, *zap.Logger) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
	assert.False(t, called)
}
