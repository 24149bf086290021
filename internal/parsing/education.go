package parsing

import (
	"regexp"
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

var (
	trailingYearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*$`)
	gpaRe          = regexp.MustCompile(`(?i)gpa[:\s]*([0-4](?:\.\d{1,2})?)`)
)

// Placeholder entry emitted when the section scan finds nothing. Gated by
// the engine's EducationPlaceholder option.
var placeholderEducation = types.Education{
	Institution:  "University Name",
	Degree:       "Bachelor of Science",
	FieldOfStudy: "Computer Science",
}

// ExtractEducation scans the education section with a single mutable
// accumulator: degree and school keyword lines fill the open entry, and a
// repeated keyword flushes it and opens the next. A trailing year on any
// line sets the end date.
// When the scan yields nothing and includePlaceholder is set, exactly one
// placeholder entry is emitted.
func ExtractEducation(text string, includePlaceholder bool) []types.Education {
	block := sectionBlock(text, educationHeadings)

	var entries []types.Education
	var current *types.Education

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if hasDegreeKeyword(line) {
			if current != nil && current.Degree != "" {
				flush()
			}
			if current == nil {
				current = &types.Education{}
			}
			if current.Degree == "" {
				current.Degree, current.FieldOfStudy = splitDegreeLine(line)
			}
		}

		if hasSchoolKeyword(line) {
			if current != nil && current.Institution != "" {
				flush()
			}
			if current == nil {
				current = &types.Education{}
			}
			current.Institution = stripTrailingDate(line)
		}

		if current != nil {
			if m := trailingYearRe.FindStringSubmatch(line); m != nil && current.EndDate == "" {
				current.EndDate = m[1]
			}
			if m := gpaRe.FindStringSubmatch(line); m != nil && current.GPA == "" {
				current.GPA = m[1]
			}
		}
	}
	flush()

	if len(entries) == 0 && includePlaceholder {
		entries = append(entries, placeholderEducation)
	}
	return entries
}

func hasDegreeKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasSchoolKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range schoolKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// splitDegreeLine separates "Bachelor of Science in Computer Science" into
// degree and field of study. Lines without an "in <field>" tail keep the
// whole line as the degree.
func splitDegreeLine(line string) (degree, field string) {
	cleaned := stripTrailingDate(line)
	if idx := strings.Index(strings.ToLower(cleaned), " in "); idx > 0 {
		return strings.TrimSpace(cleaned[:idx]), strings.TrimSpace(cleaned[idx+4:])
	}
	return cleaned, ""
}

// stripTrailingDate removes a trailing year or date range plus separators.
func stripTrailingDate(line string) string {
	s := dateRangeRe.ReplaceAllString(line, "")
	s = trailingYearRe.ReplaceAllString(s, "")
	return strings.Trim(strings.TrimSpace(s), ",|-–— \t")
}
