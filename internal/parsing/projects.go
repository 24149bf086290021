package parsing

import (
	"regexp"
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

var (
	anyYearRe    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	projectURLRe = regexp.MustCompile(`https?://[^\s,;)]+`)
)

const maxTitleLen = 60

// ExtractProjects classifies each line of the projects section as
// title-like, bullet, or prose. A title-like line (short, or carrying a
// year or ongoing marker) opens a new project; an embedded date range is
// stripped out of the title into the project dates.
func ExtractProjects(text string) []types.Project {
	block := sectionBlock(text, projectHeadings)
	if block == "" {
		return nil
	}

	var projects []types.Project
	var current *types.Project
	var prose []string

	flush := func() {
		if current != nil {
			current.Description = strings.Join(prose, " ")
			projects = append(projects, *current)
			current = nil
		}
		prose = nil
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if item, ok := bulletText(line); ok {
			if current != nil && item != "" {
				current.Achievements = append(current.Achievements, item)
			}
			continue
		}

		if isProjectTitle(line) {
			flush()
			current = &types.Project{}
			current.Name = line
			if m := dateRangeRe.FindStringSubmatchIndex(line); m != nil {
				current.StartDate = line[m[2]:m[3]]
				endRaw := line[m[4]:m[5]]
				if ongoingRe.MatchString(endRaw) {
					current.Current = true
					current.EndDate = "Present"
				} else {
					current.EndDate = endRaw
				}
				current.Name = strings.Trim(strings.TrimSpace(line[:m[0]]+line[m[1]:]), "|,–—- \t")
			}
			continue
		}

		if current != nil {
			if url := projectURLRe.FindString(line); url != "" && current.URL == "" {
				current.URL = url
			}
			if len(line) > minProseLen {
				prose = append(prose, line)
			}
		}
	}
	flush()

	return projects
}

// isProjectTitle reports whether a line opens a new project: either short
// enough to be a title, or carrying a year / ongoing marker.
func isProjectTitle(line string) bool {
	if strings.HasPrefix(line, "http") {
		return false
	}
	if anyYearRe.MatchString(line) || strings.Contains(strings.ToLower(line), "present") {
		return true
	}
	return len(line) < maxTitleLen && len(line) > 2
}
