package summarizer

import (
	"context"
	"time"

	"github.com/minhokang/transcript-flow/internal/logger"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 1 * time.Second

	// Transcripts past this size would blow the model context window and are
	// rejected without an API call.
	maxTranscriptBytes = 4 << 20

	// The default prompt asks for a detailed MECE writeup of the meeting,
	// with timestamps removed and no tables.
	defaultPrompt = `너는 뛰어난 회의록 정리자라고 하자. 주어진 txt 파일은 회의 '녹취록'이다. 아주 상세하고도 MECE하게 정리해 주길 부탁한다. 단, 타임스탬프는 제거한다. 단, 테이블로 표현하지 않는다.`
)

// Config holds the settings for a Gemini-backed Summarizer.
type Config struct {
	APIKey string
	Mode   Mode
	// Prompt overrides the default summarization prompt when non-empty.
	Prompt string
}

type implSummarizer struct {
	apiKey string
	model  string
	prompt string
	pacing time.Duration
	logger logger.Logger

	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	generate    func(ctx context.Context, prompt string) (Result, error)
}

// Option customizes a Summarizer, mainly for tests.
type Option func(*implSummarizer)

// WithMaxAttempts overrides the total attempt cap (defaults to 3).
func WithMaxAttempts(n int) Option {
	return func(s *implSummarizer) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithSleeper overrides how retry backoff sleeps are performed.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *implSummarizer) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// New creates a Summarizer calling Gemini with the mode's model and pacing.
func New(cfg Config, log logger.Logger, opts ...Option) Summarizer {
	mc := modeConfigs[cfg.Mode]

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	s := &implSummarizer{
		apiKey:      cfg.APIKey,
		model:       mc.model,
		prompt:      prompt,
		pacing:      mc.pacing,
		logger:      log,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		sleep:       sleepContext,
	}
	s.generate = s.generateGemini

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
