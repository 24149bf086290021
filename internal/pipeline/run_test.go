package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KingSharif1/resume-sub000/internal/llm"
	"github.com/KingSharif1/resume-sub000/internal/merge"
	"github.com/KingSharif1/resume-sub000/internal/parsing"
	"github.com/KingSharif1/resume-sub000/internal/types"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(`<w:document><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	doc.WriteString("</w:body></w:document>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newPatternOnlyRunner() *Runner {
	ai := parsing.NewAIExtractor(nil, 0, nil)
	engine := parsing.NewEngine(parsing.DefaultOptions(), nil)
	merger := merge.NewMerger(nil, nil)
	return NewRunner(ai, engine, merger, nil)
}

func TestRunner_Parse_DocxPatternOnly(t *testing.T) {
	data := buildDocx(t,
		"JANE DOE",
		"Seattle, WA",
		"jane.doe@example.com",
		"EXPERIENCE",
		"Senior Software Engineer",
		"Acme Corp",
		"January 2020 - Present",
		"• Built the event pipeline in Go",
	)

	result := newPatternOnlyRunner().Parse(context.Background(), "resume.docx", types.MimeDOCX, data)

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, ParseConfidence, result.Confidence)

	require.NotNil(t, result.Profile)
	assert.Equal(t, "Jane", result.Profile.Contact.FirstName)
	assert.Equal(t, "Doe", result.Profile.Contact.LastName)
	assert.Equal(t, "docx", result.Profile.SourceType)
	require.Len(t, result.Profile.Experience, 1)
	assert.Equal(t, "Acme Corp", result.Profile.Experience[0].Company)
	assert.Equal(t, "2020-01", result.Profile.Experience[0].StartDate)
	assert.Equal(t, "Present", result.Profile.Experience[0].EndDate)
	assert.NotEmpty(t, result.Profile.Experience[0].ID)

	require.NotNil(t, result.RMSData)
	assert.Equal(t, "Jane", result.RMSData.Personal.Name.First)

	require.NotNil(t, result.Metadata)
	assert.Equal(t, "docx", result.Metadata.FileType)
	assert.Equal(t, len(data), result.Metadata.FileSize)
	assert.Contains(t, result.Metadata.ExtractedTextPreview, "JANE DOE")
	assert.NotEmpty(t, result.Metadata.ProcessingTime)
}

func TestRunner_Parse_UnsupportedType(t *testing.T) {
	result := newPatternOnlyRunner().Parse(context.Background(), "resume.txt", "text/plain", []byte("hi"))

	assert.False(t, result.Success)
	assert.Equal(t, MsgUnsupportedType, result.Error)
	assert.Nil(t, result.Profile)
}

func TestRunner_Parse_MalformedUpload(t *testing.T) {
	result := newPatternOnlyRunner().Parse(context.Background(), "resume.pdf", types.MimePDF, []byte("not a pdf"))

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "failed to extract text from pdf document")
	assert.Nil(t, result.Profile)
}

// staticClient feeds a fixed AI response into the pipeline.
type staticClient struct{ response string }

func (c *staticClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return c.response, nil
}

func (c *staticClient) Close() error { return nil }

func TestRunner_Parse_AIGroupsWin(t *testing.T) {
	client := &staticClient{response: `{
		"contact": {"firstName": "Janet", "lastName": "Doering", "email": "janet@example.com"},
		"summary": "Summary from the model."
	}`}
	ai := parsing.NewAIExtractor(client, 0, nil)
	engine := parsing.NewEngine(parsing.DefaultOptions(), nil)
	runner := NewRunner(ai, engine, merge.NewMerger(nil, nil), nil)

	data := buildDocx(t, "JANE DOE", "jane.doe@example.com")
	result := runner.Parse(context.Background(), "resume.docx", types.MimeDOCX, data)

	require.True(t, result.Success)
	assert.Equal(t, "Janet", result.Profile.Contact.FirstName)
	assert.Equal(t, "Summary from the model.", result.Profile.Summary)
}

func TestRunner_Parse_TextPreviewTruncated(t *testing.T) {
	long := strings.Repeat("word ", 100)
	data := buildDocx(t, "JANE DOE", long)

	result := newPatternOnlyRunner().Parse(context.Background(), "resume.docx", types.MimeDOCX, data)

	require.True(t, result.Success)
	assert.LessOrEqual(t, len(result.Metadata.ExtractedTextPreview), 203)
	assert.True(t, strings.HasSuffix(result.Metadata.ExtractedTextPreview, "..."))
}
