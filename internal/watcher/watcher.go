package watcher

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implWatcher struct {
	rootDir     string
	matchSuffix string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	semaphore   chan struct{}
	wg          sync.WaitGroup
}

// writeSettleDelay gives the producer time to finish writing a transcript
// before it is read.
const writeSettleDelay = 500 * time.Millisecond

// Start processes newly created transcript files until the context is
// cancelled. Outputs land next to their inputs, so only names matching
// the transcript suffix are picked up.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for new *%s files", w.rootDir, w.matchSuffix)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			// New subdirectories join the watch so transcripts landing
			// in them are seen too.
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if err := w.watcher.Add(event.Name); err != nil {
					w.logger.Warn(ctx, "Failed to watch new directory %s: %v", event.Name, err)
				} else {
					w.logger.Debug(ctx, "Watching new directory: %s", event.Name)
				}
				continue
			}

			if !strings.HasSuffix(event.Name, w.matchSuffix) {
				w.logger.Debug(ctx, "Ignoring non-transcript file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)
			time.Sleep(writeSettleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
