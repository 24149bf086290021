// Package pipeline orchestrates a single parse request: ingestion, the
// two extraction branches, merge, and result assembly.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KingSharif1/resume-sub000/internal/ingestion"
	"github.com/KingSharif1/resume-sub000/internal/merge"
	"github.com/KingSharif1/resume-sub000/internal/parsing"
	"github.com/KingSharif1/resume-sub000/internal/types"
)

const (
	// ParseConfidence is reported on every successful parse. The pipeline
	// does not yet score extraction quality per document.
	ParseConfidence = 0.8

	// MsgUnsupportedType is the client-facing error for a rejected upload.
	MsgUnsupportedType = "Unsupported file type"

	previewChars = 200
)

// Runner wires the extraction branches together. The AI extractor may be
// backed by a nil client; parsing then degrades to pattern-only output.
type Runner struct {
	ai     *parsing.AIExtractor
	engine *parsing.Engine
	merger *merge.Merger
	logger *slog.Logger
}

// NewRunner builds a runner. A nil logger falls back to slog.Default().
func NewRunner(ai *parsing.AIExtractor, engine *parsing.Engine, merger *merge.Merger, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{ai: ai, engine: engine, merger: merger, logger: logger}
}

// Parse runs the full pipeline over one uploaded document and always
// returns a result envelope. Extraction branch failures degrade the
// output; only an unusable upload produces a failure result.
func (r *Runner) Parse(ctx context.Context, filename, mimeType string, data []byte) *types.ParseResult {
	start := time.Now()

	if !types.IsSupportedMime(mimeType) {
		r.logger.Warn("rejected upload", "filename", filename, "mime_type", mimeType)
		return types.FailedParse(MsgUnsupportedType)
	}

	doc, err := ingestion.ExtractDocument(mimeType, data)
	if err != nil {
		r.logger.Error("document extraction failed",
			"filename", filename, "mime_type", mimeType, "error", err)
		return types.FailedParse(err.Error())
	}

	var aiResult, patternResult *types.ExtractionResult

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		aiResult = r.ai.Extract(gCtx, doc.FormattedText)
		return nil
	})
	g.Go(func() error {
		patternResult = r.engine.Extract(doc.Text)
		return nil
	})
	// Both branches are soft-failing and never return an error.
	_ = g.Wait()

	profile := r.merger.Merge(aiResult, patternResult)
	profile.SourceType = types.SourceTypeForMime(mimeType)

	elapsed := time.Since(start)
	r.logger.Info("parse complete",
		"filename", filename,
		"mime_type", mimeType,
		"ai_used", aiResult != nil,
		"duration", elapsed)

	return &types.ParseResult{
		Success:    true,
		Profile:    profile,
		RMSData:    merge.BuildRMS(profile),
		Confidence: ParseConfidence,
		Metadata: &types.ParseMetadata{
			ExtractedTextPreview: textPreview(doc.Text),
			FileType:             profile.SourceType,
			FileSize:             len(data),
			ProcessingTime:       elapsed.Round(time.Millisecond).String(),
		},
	}
}

func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars]) + "..."
}
