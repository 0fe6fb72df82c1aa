package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

func TestWatcherSeesNestedTranscripts(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "audio_01")
	require.NoError(t, os.MkdirAll(nested, 0755))

	processed := make(chan string, 1)
	handler := func(ctx context.Context, path string) error {
		processed <- path
		return nil
	}

	w, err := New(root, "timestamps.txt", handler, logger.New("error"), 1)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	path := filepath.Join(nested, "talk_timestamps.txt")
	require.NoError(t, os.WriteFile(path, []byte("[00:01] Speaker A: текст"), 0644))

	select {
	case got := <-processed:
		assert.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("transcript created in a nested directory was not picked up")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()

	processed := make(chan string, 1)
	handler := func(ctx context.Context, path string) error {
		processed <- path
		return nil
	}

	w, err := New(root, "timestamps.txt", handler, logger.New("error"), 1)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("не транскрипт"), 0644))

	select {
	case got := <-processed:
		t.Fatalf("unexpected handler call for %s", got)
	case <-time.After(1 * time.Second):
	}
}

func TestNewMissingRoot(t *testing.T) {
	handler := func(ctx context.Context, path string) error { return nil }

	_, err := New(filepath.Join(t.TempDir(), "nope"), "timestamps.txt", handler, logger.New("error"), 1)
	assert.Error(t, err)
}
