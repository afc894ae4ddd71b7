package summarizer

import "context"

// Summarizer turns decoded transcript text into a structured summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (Result, error)
}

// Result carries the summary text plus per-call token accounting.
type Result struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}
