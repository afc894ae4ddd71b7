package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/minhokang/transcript-flow/internal/logger"
)

// New creates a Watcher on the input directory. Only the top-level directory
// is watched; fsnotify does not recurse.
func New(inputDir string, handler Handler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
	}, nil
}
