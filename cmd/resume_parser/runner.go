package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KingSharif1/resume-sub000/internal/config"
	"github.com/KingSharif1/resume-sub000/internal/llm"
	"github.com/KingSharif1/resume-sub000/internal/merge"
	"github.com/KingSharif1/resume-sub000/internal/parsing"
	"github.com/KingSharif1/resume-sub000/internal/pipeline"
)

// newLogger builds the process-wide structured logger.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildRunner assembles the parse pipeline from configuration. A missing
// or unusable API key is not fatal; the pipeline degrades to pattern-only
// extraction. The returned cleanup closes the LLM client if one was made.
func buildRunner(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline.Runner, func()) {
	var client llm.Client
	cleanup := func() {}

	if cfg.APIKey == "" {
		logger.Info("GEMINI_API_KEY not set, AI extraction disabled")
	} else {
		c, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			logger.Warn("LLM client unavailable, continuing with pattern extraction only", "error", err)
		} else {
			client = c
			cleanup = func() { _ = c.Close() }
		}
	}

	ai := parsing.NewAIExtractor(client, cfg.MaxInputChars, logger)
	engine := parsing.NewEngine(parsing.DefaultOptions(), logger)
	merger := merge.NewMerger(nil, logger)
	return pipeline.NewRunner(ai, engine, merger, logger), cleanup
}
