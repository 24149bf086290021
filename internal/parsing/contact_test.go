package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_FullHeader(t *testing.T) {
	text := "JOHN A. SMITH\nSeattle, WA\n(555) 123-4567\njohn.smith@example.com\nlinkedin.com/in/jsmith | github.com/jsmith\n"

	c := ExtractContact(text)

	assert.Equal(t, "John", c.FirstName)
	assert.Equal(t, "A.", c.MiddleName)
	assert.Equal(t, "Smith", c.LastName)
	assert.Equal(t, "john.smith@example.com", c.Email)
	assert.Equal(t, "(555) 123-4567", c.Phone)
	assert.Equal(t, "Seattle, WA", c.Location)
	assert.Equal(t, "https://linkedin.com/in/jsmith", c.LinkedIn)
	assert.Equal(t, "https://github.com/jsmith", c.GitHub)
}

func TestExtractContact_EmptyText(t *testing.T) {
	c := ExtractContact("")
	assert.True(t, c.IsEmpty())
}

func TestExtractEmail_FirstValidWins(t *testing.T) {
	text := "Reach me at first@example.com or second@example.org"
	assert.Equal(t, "first@example.com", extractEmail(text))
}

func TestExtractEmail_NoneFound(t *testing.T) {
	assert.Empty(t, extractEmail("no contact details here"))
}

func TestExtractPhone_Formats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"parenthesized", "Call (206) 555-0142 today", "(206) 555-0142"},
		{"dashed", "206-555-0142", "206-555-0142"},
		{"dotted", "206.555.0142", "206.555.0142"},
		{"country code", "+1 206 555 0142", "+1 206 555 0142"},
		{"bare digits", "phone 2065550142 listed", "2065550142"},
		{"none", "no number here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}

func TestExtractContact_WebsiteExcludesProfiles(t *testing.T) {
	text := "https://linkedin.com/in/x https://github.com/x https://jsmith.dev"
	c := ExtractContact(text)
	assert.Equal(t, "https://jsmith.dev", c.Website)
}

func TestExtractLocation_CuratedBeforeGeneric(t *testing.T) {
	assert.Equal(t, "San Francisco, CA", extractLocation("Based in San Francisco, CA since 2019"))
	assert.Equal(t, "Spokane, WA", extractLocation("Spokane, WA resident"))
	assert.Empty(t, extractLocation("somewhere remote"))
}

func TestExtractName_AllCapsTwoTokens(t *testing.T) {
	first, middle, last := extractName("JANE DOE\nSoftware things\n", "")
	assert.Equal(t, "Jane", first)
	assert.Empty(t, middle)
	assert.Equal(t, "Doe", last)
}

func TestExtractName_ExclusionWordsRejected(t *testing.T) {
	// A role line in caps must not be mistaken for a name.
	first, _, last := extractName("SENIOR ENGINEER\nJane Doe\n", "")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)
}

func TestExtractName_TitleCaseWithMiddle(t *testing.T) {
	first, middle, last := extractName("Mary J. Watson\n", "")
	assert.Equal(t, "Mary", first)
	assert.Equal(t, "J.", middle)
	assert.Equal(t, "Watson", last)
}

func TestExtractName_SkipsContactAndHeadingLines(t *testing.T) {
	text := "jane@example.com\nSUMMARY\nJane Doe\n"
	first, _, last := extractName(text, "")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)
}

func TestExtractName_EmailFallback(t *testing.T) {
	first, middle, last := extractName("1234\n5678\n", "jane_doe@example.com")
	assert.Equal(t, "Jane", first)
	assert.Empty(t, middle)
	assert.Equal(t, "Doe", last)
}

func TestNameFromEmail_SingleWordLocalPart(t *testing.T) {
	first, last := nameFromEmail("jane@example.com")
	assert.Equal(t, "Jane", first)
	assert.Empty(t, last)
}
