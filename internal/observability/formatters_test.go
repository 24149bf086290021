package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

func TestPrintProfile_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProfile_RendersSections(t *testing.T) {
	profile := &types.Profile{
		Contact: types.ContactInfo{
			FirstName: "Jane", LastName: "Doe",
			Email: "jane@example.com",
		},
		SourceType: "pdf",
		Experience: []types.Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "Present"},
		},
		Education: []types.Education{
			{Institution: "UW", Degree: "BS", FieldOfStudy: "CS"},
		},
		Skills: map[string][]string{"technical": {"Go", "Python"}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(profile)
	out := buf.String()

	assert.Contains(t, out, "CANDIDATE")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "BS in CS")
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "Go, Python")
	assert.Contains(t, out, "1 experience, 1 education")
}

func TestPrintProfile_TruncatesLongLines(t *testing.T) {
	profile := &types.Profile{
		Summary: "x",
		Experience: []types.Experience{
			{Company: "A Company With An Extremely Long Name That Exceeds The Box Width Easily", Position: "Engineer"},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(profile)

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if !bytes.HasPrefix(line, []byte("│")) {
			continue
		}
		assert.LessOrEqual(t, len(bytes.Runes(line)), boxWidth)
	}
}
