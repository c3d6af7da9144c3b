package watcher

import "context"

// Watcher monitors a drop directory for files to process.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one dropped file.
type Handler func(ctx context.Context, path string) error
