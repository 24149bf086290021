package parsing

import "strings"

// normalizeHeading lowercases a line and strips decoration that commonly
// wraps section headings.
func normalizeHeading(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "## ")
	s = strings.Trim(s, ":•-–— \t")
	return strings.ToLower(strings.TrimSpace(s))
}

// matchesHeading reports whether a line is a section heading from the given
// set. A heading must stay short; longer lines are prose even when they
// mention a heading word.
func matchesHeading(line string, headings []string) bool {
	norm := normalizeHeading(line)
	if norm == "" || len(norm) > 40 || len(strings.Fields(norm)) > 4 {
		return false
	}
	for _, h := range headings {
		if norm == h {
			return true
		}
	}
	for _, h := range headings {
		if strings.Contains(norm, h) {
			return true
		}
	}
	return false
}

// IsKnownHeading reports whether a line matches any recognized section
// heading keyword. Ingestion uses this to annotate headings for the AI
// input variant.
func IsKnownHeading(line string) bool {
	return matchesHeading(line, knownSectionHeadings)
}

// sectionBlock returns the text between the first heading matching the
// given set and the next known section heading, or empty string when the
// section is absent.
func sectionBlock(text string, headings []string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if matchesHeading(line, headings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if IsKnownHeading(lines[i]) {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}
