package parsing

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KingSharif1/resume-sub000/internal/llm"
	"github.com/KingSharif1/resume-sub000/internal/schemas"
	"github.com/KingSharif1/resume-sub000/internal/types"
)

// DefaultMaxInputChars bounds the document text sent to the model, keeping
// request cost and latency in check.
const DefaultMaxInputChars = 15000

// AIExtractor asks a language model to fill the resume schema. Every
// failure path (no credential, network error, malformed response) is soft:
// Extract returns nil and the pipeline degrades to pattern-only output.
type AIExtractor struct {
	client   llm.Client
	maxChars int
	logger   *slog.Logger
}

// NewAIExtractor wraps an LLM client. A nil client is valid and means no
// credential is configured; Extract then always returns nil.
func NewAIExtractor(client llm.Client, maxChars int, logger *slog.Logger) *AIExtractor {
	if maxChars <= 0 {
		maxChars = DefaultMaxInputChars
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AIExtractor{client: client, maxChars: maxChars, logger: logger}
}

// Extract sends the formatted document text to the model and returns the
// validated structured result, or nil on any failure.
func (a *AIExtractor) Extract(ctx context.Context, formattedText string) *types.ExtractionResult {
	if a == nil || a.client == nil {
		return nil
	}

	input := formattedText
	if len(input) > a.maxChars {
		// Cut on a rune boundary so the model never sees invalid UTF-8.
		if runes := []rune(input); len(runes) > a.maxChars {
			input = string(runes[:a.maxChars])
		}
	}

	prompt := llm.BuildExtractionPrompt(llm.ResumeProfileSchema(), input)
	response, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		a.logger.Warn("AI extraction request failed", "error", err)
		return nil
	}

	cleaned := llm.CleanJSONBlock(response)
	if err := schemas.ValidateExtractionResult(cleaned); err != nil {
		a.logger.Warn("AI extraction response rejected by schema", "error", err)
		return nil
	}

	var result types.ExtractionResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		a.logger.Warn("AI extraction response is not decodable", "error", err)
		return nil
	}

	a.logger.Debug("AI extraction complete",
		"experience_entries", len(result.Experience),
		"education_entries", len(result.Education),
		"skill_categories", len(result.Skills))
	return &result
}
