package summarizer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Summarize issues the summarization request with retry. Transient failures
// are retried up to the attempt cap with exponential backoff plus the mode's
// pacing delay; anything else fails immediately.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (Result, error) {
	if len(transcript) > maxTranscriptBytes {
		return Result{}, &Error{
			Kind: KindPermanent,
			Err:  fmt.Errorf("transcript is %d bytes, limit is %d", len(transcript), maxTranscriptBytes),
		}
	}

	prompt := s.prompt + "\n\n" + transcript

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := s.retryDelay(attempt - 1)
			s.logger.Info(ctx, "Retry attempt %d of %d in %s", attempt, s.maxAttempts, delay)
			if err := s.sleep(ctx, delay); err != nil {
				return Result{}, err
			}
		}

		res, err := s.generate(ctx, prompt)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		if !transient(err) {
			return Result{}, &Error{Kind: KindPermanent, Err: err}
		}

		s.logger.Warn(ctx, "API request failed (attempt %d/%d): %v", attempt, s.maxAttempts, err)
		lastErr = err
	}

	return Result{}, &Error{
		Kind: KindExhausted,
		Err:  fmt.Errorf("failed after %d attempts: %w", s.maxAttempts, lastErr),
	}
}

// retryDelay returns the backoff before the attempt that follows the given
// number of failures: base, 2*base, 4*base, ... plus the mode pacing delay.
func (s *implSummarizer) retryDelay(failures int) time.Duration {
	delay := s.baseDelay
	for i := 1; i < failures; i++ {
		delay *= 2
	}
	return delay + s.pacing
}
