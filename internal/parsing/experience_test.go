package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_SingleJobWithBullets(t *testing.T) {
	text := `EXPERIENCE
Senior Software Engineer
Acme Corp
Seattle, WA
January 2020 - Present
• Built distributed pipeline processing millions of events daily
• Led migration of legacy services to Kubernetes`

	entries := ExtractExperience(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Senior Software Engineer", e.Position)
	assert.Equal(t, "Acme Corp", e.Company)
	assert.Equal(t, "Seattle, WA", e.Location)
	assert.Equal(t, "January 2020", e.StartDate)
	assert.Equal(t, "Present", e.EndDate)
	assert.True(t, e.Current)
	require.Len(t, e.Achievements, 2)
	assert.Equal(t, "Built distributed pipeline processing millions of events daily", e.Achievements[0])
}

func TestExtractExperience_MultipleJobs(t *testing.T) {
	text := `WORK EXPERIENCE
March 2021 - Present
Senior Developer
Initech
• Shipped the billing platform rewrite
June 2018 - Feb 2021
Software Developer
Globex Corporation
• Maintained internal tooling used by forty teams`

	entries := ExtractExperience(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "Senior Developer", entries[0].Position)
	assert.Equal(t, "Initech", entries[0].Company)
	assert.True(t, entries[0].Current)

	assert.Equal(t, "Software Developer", entries[1].Position)
	assert.Equal(t, "Globex Corporation", entries[1].Company)
	assert.Equal(t, "June 2018", entries[1].StartDate)
	assert.Equal(t, "Feb 2021", entries[1].EndDate)
	assert.False(t, entries[1].Current)
}

func TestExtractExperience_DotBulletVariants(t *testing.T) {
	text := `EXPERIENCE
Software Engineer
Acme Corp
Jan 2020 - Present
· Built the ingest service
● Improved query latency by half`

	entries := ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{
		"Built the ingest service",
		"Improved query latency by half",
	}, entries[0].Achievements)
	assert.Empty(t, entries[0].Description)
}

func TestExtractExperience_PlaceholdersWhenHeaderMissing(t *testing.T) {
	text := `EXPERIENCE
June 2019 - July 2020
• Did various maintenance work`

	entries := ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Company Name", entries[0].Company)
	assert.Equal(t, "Position Title", entries[0].Position)
	assert.Equal(t, []string{"Did various maintenance work"}, entries[0].Achievements)
}

func TestExtractExperience_NoSection(t *testing.T) {
	assert.Nil(t, ExtractExperience("SUMMARY\nJust a summary, no work history section."))
}

func TestExtractExperience_SectionWithoutDates(t *testing.T) {
	text := "EXPERIENCE\nSome company\nSome role without any dates"
	assert.Nil(t, ExtractExperience(text))
}

func TestExtractExperience_ProseBecomesDescription(t *testing.T) {
	text := `EXPERIENCE
Engineer
Acme Corp
Boise, ID
2019 - 2021
Worked across the platform team on reliability and cost initiatives.
Second line of prose describing the same role in more detail here.`

	entries := ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "reliability and cost initiatives")
	assert.Contains(t, entries[0].Description, "Second line of prose")
}
