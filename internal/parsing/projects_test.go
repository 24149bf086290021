package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjects_TitleWithEmbeddedDates(t *testing.T) {
	text := `PROJECTS
Weather Dashboard | March 2022 - June 2022
• Built the frontend with React
A dashboard application for visualizing forecast data across many regions.
Deployed to production at https://weather.example.com for several seasons.`

	projects := ExtractProjects(text)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "Weather Dashboard", p.Name)
	assert.Equal(t, "March 2022", p.StartDate)
	assert.Equal(t, "June 2022", p.EndDate)
	assert.False(t, p.Current)
	assert.Equal(t, []string{"Built the frontend with React"}, p.Achievements)
	assert.Contains(t, p.Description, "visualizing forecast data")
	assert.Equal(t, "https://weather.example.com", p.URL)
}

func TestExtractProjects_OngoingMarker(t *testing.T) {
	text := "PROJECTS\nHome Lab, 2023 - Present\n• Runs a small Kubernetes cluster"

	projects := ExtractProjects(text)
	require.Len(t, projects, 1)
	assert.Equal(t, "Home Lab", projects[0].Name)
	assert.Equal(t, "2023", projects[0].StartDate)
	assert.Equal(t, "Present", projects[0].EndDate)
	assert.True(t, projects[0].Current)
}

func TestExtractProjects_MultipleTitles(t *testing.T) {
	text := `PROJECTS
Chess Engine
• Alpha-beta search in Go
Recipe Site
• Static site generator`

	projects := ExtractProjects(text)
	require.Len(t, projects, 2)
	assert.Equal(t, "Chess Engine", projects[0].Name)
	assert.Equal(t, "Recipe Site", projects[1].Name)
}

func TestExtractProjects_NoSection(t *testing.T) {
	assert.Nil(t, ExtractProjects("EXPERIENCE\nJob stuff only"))
}
