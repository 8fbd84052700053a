package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  move_speed: 10\n"), 0644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	// Several quick writes arrive as one change
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("camera:\n  move_speed: 20\n"), 0644))
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-w.Changes():
		t.Fatal("burst should coalesce into a single change")
	case <-time.After(3 * WatchDebounce):
	}

	cfg, err := LoadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, float32(20), cfg.Camera.MoveSpeed)
	assert.Equal(t, w.Path(), cfg.Source())
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0644))

	select {
	case <-w.Changes():
		t.Fatal("change reported for a different file")
	case <-time.After(3 * WatchDebounce):
	}
}

func TestWatchCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	w, err := Watch(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

func TestLoadFileWithoutPath(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Source())
	assert.Equal(t, Default().Camera, cfg.Camera)
}
