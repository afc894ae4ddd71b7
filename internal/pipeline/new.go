package pipeline

import (
	"github.com/minhokang/transcript-flow/internal/config"
	"github.com/minhokang/transcript-flow/internal/logger"
	"github.com/minhokang/transcript-flow/internal/summarizer"
	"github.com/minhokang/transcript-flow/internal/textenc"
	"github.com/minhokang/transcript-flow/internal/writer"
)

type implPipeline struct {
	cfg      *config.Config
	resolver *textenc.Resolver
	summ     summarizer.Summarizer
	writer   *writer.Writer
	logger   logger.Logger
}

// New creates a Pipeline wiring the resolver, summarizer and writer together.
func New(cfg *config.Config, res *textenc.Resolver, s summarizer.Summarizer, w *writer.Writer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:      cfg,
		resolver: res,
		summ:     s,
		writer:   w,
		logger:   log,
	}
}
