package watcher

import "context"

// Watcher monitors a directory for newly created transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one discovered transcript file.
type EventHandler func(ctx context.Context, filePath string) error
