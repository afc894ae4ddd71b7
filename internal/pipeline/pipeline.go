package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minhokang/transcript-flow/internal/discover"
	"github.com/minhokang/transcript-flow/internal/summarizer"
)

// Run processes all transcripts under the input root sequentially. One file
// is fully processed (decode, summarize, write) before the next begins.
func (p *implPipeline) Run(ctx context.Context) (Tally, error) {
	var tally Tally

	files, err := discover.Transcripts(p.cfg.Paths.Input)
	if err != nil {
		return tally, fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		p.logger.Warn(ctx, "No .txt files found under %s", p.cfg.Paths.Input)
		return tally, nil
	}

	p.logger.Info(ctx, "Found %d transcript files under %s", len(files), p.cfg.Paths.Input)

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), f.RelPath)
		tally.Attempted++

		res, err := p.processOne(ctx, f)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return tally, err
			}
			p.logger.Error(ctx, "Failed: %s: %v", f.RelPath, err)
			tally.Failed++
			continue
		}

		tally.Succeeded++
		tally.InputTokens += res.InputTokens
		tally.OutputTokens += res.OutputTokens
	}

	p.logger.Info(ctx, "Batch complete: %d attempted, %d succeeded, %d failed",
		tally.Attempted, tally.Succeeded, tally.Failed)
	p.logger.Info(ctx, "Token usage - input: %d, output: %d, total: %d",
		tally.InputTokens, tally.OutputTokens, tally.InputTokens+tally.OutputTokens)

	return tally, nil
}

// Process handles one transcript by absolute path, resolving its position
// relative to the input root so the output tree stays mirrored.
func (p *implPipeline) Process(ctx context.Context, path string) error {
	root, err := filepath.Abs(p.cfg.Paths.Input)
	if err != nil {
		return fmt.Errorf("resolve input root: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve transcript path: %w", err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}

	if _, err := p.processOne(ctx, discover.File{Path: abs, RelPath: rel}); err != nil {
		return err
	}
	return nil
}

func (p *implPipeline) processOne(ctx context.Context, f discover.File) (summarizer.Result, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return summarizer.Result{}, fmt.Errorf("read transcript: %w", err)
	}

	text, encName, err := p.resolver.Decode(raw)
	if err != nil {
		return summarizer.Result{}, fmt.Errorf("decode transcript: %w", err)
	}
	p.logger.Debug(ctx, "Decoded %s as %s (%d bytes)", f.RelPath, encName, len(raw))

	res, err := p.summ.Summarize(ctx, text)
	if err != nil {
		return summarizer.Result{}, fmt.Errorf("summarize: %w", err)
	}

	outPath, err := p.writer.Write(f.RelPath, res.Text)
	if err != nil {
		return summarizer.Result{}, fmt.Errorf("write summary: %w", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s (tokens in=%d out=%d)",
		f.RelPath, outPath, res.InputTokens, res.OutputTokens)
	return res, nil
}
