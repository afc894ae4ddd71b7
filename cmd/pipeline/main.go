package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minhokang/transcript-flow/internal/config"
	"github.com/minhokang/transcript-flow/internal/logger"
	"github.com/minhokang/transcript-flow/internal/pipeline"
	"github.com/minhokang/transcript-flow/internal/summarizer"
	"github.com/minhokang/transcript-flow/internal/textenc"
	"github.com/minhokang/transcript-flow/internal/watcher"
	"github.com/minhokang/transcript-flow/internal/writer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "transcript-flow: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)

	mode, err := summarizer.ParseMode(cfg.Gemini.Mode)
	if err != nil {
		return err
	}

	apiKey := os.Getenv(mode.EnvKey())
	if apiKey == "" {
		return fmt.Errorf("%s is not set for the %s", mode.EnvKey(), mode.DisplayName())
	}

	resolver, err := textenc.NewResolver(cfg.Encodings)
	if err != nil {
		return err
	}

	summ := summarizer.New(summarizer.Config{
		APIKey: apiKey,
		Mode:   mode,
		Prompt: cfg.Gemini.Prompt,
	}, log)

	out := writer.New(cfg.Paths.Output, writer.Format(cfg.Output.Format))
	pipe := pipeline.New(cfg, resolver, summ, out, log)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Summarization Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "API mode: %s (model %s)", mode.DisplayName(), mode.Model())
	log.Info(ctx, "Input: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	tally, err := pipe.Run(ctx)
	if err != nil {
		return err
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Run complete: %d attempted, %d succeeded, %d failed",
		tally.Attempted, tally.Succeeded, tally.Failed)
	log.Info(ctx, "========================================")

	if !cfg.Watch.Enabled {
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, pipe.Process, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Watch mode enabled, press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
