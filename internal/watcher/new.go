package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// New creates a Watcher over rootDir and its subdirectories, matching
// the recursive batch discovery (transcripts land in nested audio_*
// folders). Only files whose names end with matchSuffix are handed to
// the handler, at most maxConcurrent at once.
func New(rootDir, matchSuffix string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := addRecursive(fsWatcher, rootDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		rootDir:     rootDir,
		matchSuffix: matchSuffix,
		handler:     handler,
		logger:      log,
		watcher:     fsWatcher,
		semaphore:   make(chan struct{}, maxConcurrent),
	}, nil
}

// addRecursive registers rootDir and every directory below it. fsnotify
// watches are not recursive on their own.
func addRecursive(w *fsnotify.Watcher, rootDir string) error {
	return filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
