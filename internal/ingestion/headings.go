package ingestion

import (
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/parsing"
)

const maxHeadingLen = 40

// AnnotateHeadings returns the text with detected section headings marked
// by a "## " prefix, plus the list of headings in document order. A line
// counts as a heading when it matches the known section vocabulary, or
// when it is a short standalone line ending in a colon. All-caps alone is
// not enough; candidate names are often typeset that way.
func AnnotateHeadings(text string) (string, []string) {
	if text == "" {
		return "", nil
	}

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	var headings []string
	for i, line := range lines {
		if isHeadingLine(line) {
			heading := strings.TrimSpace(line)
			out[i] = "## " + heading
			headings = append(headings, strings.TrimSuffix(heading, ":"))
			continue
		}
		out[i] = line
	}
	return strings.Join(out, "\n"), headings
}

func isHeadingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLen {
		return false
	}
	if parsing.IsKnownHeading(trimmed) {
		return true
	}
	return strings.HasSuffix(trimmed, ":") && len(strings.Fields(trimmed)) <= 4
}
