package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, runs of spaces collapse to one, bullet markers
// keep a single space after them, and blank-line runs shrink to at most
// two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	trimmed = innerSpaceRe.ReplaceAllString(trimmed, " ")

	// Normalize bullet markers so downstream extractors see "• text".
	// PDF extraction emits several dot glyphs; they all collapse to "•".
	for _, marker := range []string{"•", "·", "●", "-", "*"} {
		if strings.HasPrefix(trimmed, marker+" ") || trimmed == marker {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
			if rest == "" {
				return ""
			}
			if marker == "·" || marker == "●" {
				marker = "•"
			}
			return marker + " " + rest
		}
	}
	return trimmed
}
