package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_IncludesSchemaAndInput(t *testing.T) {
	prompt := BuildExtractionPrompt(ResumeProfileSchema(), "JANE DOE resume text")

	assert.Contains(t, prompt, "expert resume parser")
	assert.Contains(t, prompt, `"contact"`)
	assert.Contains(t, prompt, `"experience"`)
	assert.Contains(t, prompt, `"skills"`)
	assert.Contains(t, prompt, "JANE DOE resume text")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestResumeProfileSchema_CoversAllSections(t *testing.T) {
	schema := ResumeProfileSchema()

	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"contact", "summary", "experience", "education",
		"projects", "certifications", "skills",
	}, names)
}

func TestConfig_GetModelFallsBackToStandard(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(ModelTier("unknown")))
}
