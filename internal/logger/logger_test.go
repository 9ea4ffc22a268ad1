package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notational-fzf/shorten-path/internal/config"
)

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().AddDate(0, 0, -10)

	for _, name := range []string{"old.log", "fresh.log", "old.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.log"), old, old))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.txt"), old, old))

	cleanOldLogs(dir, 7)

	assert.NoFileExists(t, filepath.Join(dir, "old.log"))
	assert.FileExists(t, filepath.Join(dir, "fresh.log"))
	assert.FileExists(t, filepath.Join(dir, "old.txt"))
}

func TestInitWritesDatedLogFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(func() {
		Log = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	require.NoError(t, Init(false, "warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Warn("something %s", "odd")

	name := "shorten-path-" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(config.GetLogsDir(), name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "something odd")
	assert.Contains(t, string(data), `"app":"shorten-path"`)
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(func() {
		Log = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	require.NoError(t, Init(false, "chatty"))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
