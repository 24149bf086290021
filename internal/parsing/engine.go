package parsing

import (
	"log/slog"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

// Options tunes the pattern engine.
type Options struct {
	// EducationPlaceholder controls whether an empty education scan still
	// emits the single placeholder entry.
	EducationPlaceholder bool
}

// DefaultOptions matches the historical engine behavior.
func DefaultOptions() Options {
	return Options{EducationPlaceholder: true}
}

// Engine runs every deterministic sub-extractor over a document. It never
// fails: each sub-extractor returns empty or default values when nothing
// is found.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// NewEngine creates a pattern engine. A nil logger falls back to
// slog.Default().
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{opts: opts, logger: logger}
}

// Extract runs all sub-extractors over the raw document text.
func (e *Engine) Extract(text string) *types.ExtractionResult {
	res := &types.ExtractionResult{
		Contact:        ExtractContact(text),
		Summary:        ExtractSummary(text),
		Experience:     ExtractExperience(text),
		Education:      ExtractEducation(text, e.opts.EducationPlaceholder),
		Projects:       ExtractProjects(text),
		Certifications: ExtractCertifications(text),
		Skills:         ExtractSkills(text),
	}

	e.logger.Debug("pattern extraction complete",
		"email_found", res.Contact.Email != "",
		"experience_entries", len(res.Experience),
		"education_entries", len(res.Education),
		"projects", len(res.Projects),
		"certifications", len(res.Certifications),
		"skill_categories", len(res.Skills))
	return res
}
