package pipeline

import "context"

// Pipeline runs transcript summarization over a folder tree.
type Pipeline interface {
	// Run processes every transcript under the input root once and returns
	// the final tally. Discovery failures abort the run; per-file failures
	// are counted and the batch continues.
	Run(ctx context.Context) (Tally, error)

	// Process handles a single transcript by absolute path. Used by the
	// watcher for files that appear after the initial batch.
	Process(ctx context.Context, path string) error
}

// Tally accumulates the per-run counters reported at the end of a batch.
type Tally struct {
	Attempted    int
	Succeeded    int
	Failed       int
	InputTokens  int
	OutputTokens int
}
