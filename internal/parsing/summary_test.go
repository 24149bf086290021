package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary_CapturesUntilNextSection(t *testing.T) {
	text := `SUMMARY
Experienced software engineer with a decade of work
building distributed systems at scale.

EXPERIENCE
Acme Corp`

	summary := ExtractSummary(text)
	assert.Equal(t, "Experienced software engineer with a decade of work building distributed systems at scale.", summary)
}

func TestExtractSummary_AlternateHeadings(t *testing.T) {
	text := "Professional Profile:\nSeasoned operations leader focused on incident response and tooling."
	assert.Contains(t, ExtractSummary(text), "Seasoned operations leader")
}

func TestExtractSummary_TooShortRejected(t *testing.T) {
	assert.Empty(t, ExtractSummary("SUMMARY\nHi there"))
}

func TestExtractSummary_StrayPhoneRejected(t *testing.T) {
	assert.Empty(t, ExtractSummary("SUMMARY\nCall me at (555) 123-4567 anytime"))
}

func TestExtractSummary_NoSection(t *testing.T) {
	assert.Empty(t, ExtractSummary("EXPERIENCE\nNo summary present"))
}
