package watcher

import "context"

// Watcher monitors the input root for transcripts created after the batch run.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one newly created transcript file.
type Handler func(ctx context.Context, path string) error
