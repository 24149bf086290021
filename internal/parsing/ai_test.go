package parsing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KingSharif1/resume-sub000/internal/llm"
)

// mockLLMClient returns a canned response and records the prompt it saw.
type mockLLMClient struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockLLMClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	m.lastPrompt = prompt
	return m.response, m.err
}

func (m *mockLLMClient) Close() error { return nil }

const validAIResponse = `{
  "contact": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com"},
  "summary": "Backend engineer.",
  "experience": [{"company": "Acme", "position": "Engineer", "startDate": "January 2020", "endDate": "Present", "current": true}],
  "skills": {"Technical Skills": ["Go", "Python"]}
}`

func TestAIExtractor_ValidResponse(t *testing.T) {
	client := &mockLLMClient{response: validAIResponse}
	extractor := NewAIExtractor(client, 0, nil)

	res := extractor.Extract(context.Background(), "## EXPERIENCE\nsome resume text")
	require.NotNil(t, res)

	assert.Equal(t, "Jane", res.Contact.FirstName)
	assert.Equal(t, "Backend engineer.", res.Summary)
	require.Len(t, res.Experience, 1)
	assert.Equal(t, "Acme", res.Experience[0].Company)
	assert.Equal(t, []string{"Go", "Python"}, res.Skills["Technical Skills"])

	assert.Contains(t, client.lastPrompt, "some resume text")
}

func TestAIExtractor_NilClientReturnsNil(t *testing.T) {
	extractor := NewAIExtractor(nil, 0, nil)
	assert.Nil(t, extractor.Extract(context.Background(), "text"))
}

func TestAIExtractor_RequestErrorReturnsNil(t *testing.T) {
	client := &mockLLMClient{err: errors.New("quota exceeded")}
	extractor := NewAIExtractor(client, 0, nil)
	assert.Nil(t, extractor.Extract(context.Background(), "text"))
}

func TestAIExtractor_MalformedJSONReturnsNil(t *testing.T) {
	client := &mockLLMClient{response: "not json at all"}
	extractor := NewAIExtractor(client, 0, nil)
	assert.Nil(t, extractor.Extract(context.Background(), "text"))
}

func TestAIExtractor_SchemaViolationReturnsNil(t *testing.T) {
	client := &mockLLMClient{response: `{"experience": "should be a list"}`}
	extractor := NewAIExtractor(client, 0, nil)
	assert.Nil(t, extractor.Extract(context.Background(), "text"))
}

func TestAIExtractor_FencedResponseAccepted(t *testing.T) {
	client := &mockLLMClient{response: "```json\n" + validAIResponse + "\n```"}
	extractor := NewAIExtractor(client, 0, nil)

	res := extractor.Extract(context.Background(), "text")
	require.NotNil(t, res)
	assert.Equal(t, "Doe", res.Contact.LastName)
}

func TestAIExtractor_TruncatesInput(t *testing.T) {
	client := &mockLLMClient{response: validAIResponse}
	extractor := NewAIExtractor(client, 50, nil)

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	extractor.Extract(context.Background(), string(long))

	assert.NotContains(t, client.lastPrompt, string(long))
	assert.Contains(t, client.lastPrompt, string(long[:50]))
}

func TestAIExtractor_TruncatesOnRuneBoundary(t *testing.T) {
	client := &mockLLMClient{response: validAIResponse}
	extractor := NewAIExtractor(client, 50, nil)

	extractor.Extract(context.Background(), strings.Repeat("é", 60))

	assert.True(t, utf8.ValidString(client.lastPrompt))
	assert.Contains(t, client.lastPrompt, strings.Repeat("é", 50))
	assert.NotContains(t, client.lastPrompt, strings.Repeat("é", 51))
}
