package parsing

import "strings"

// minSummaryLength rejects captures too short to be a real summary.
const minSummaryLength = 30

// ExtractSummary locates a summary-like heading and captures the text up
// to the next known section heading. Captures that are too short or look
// like a stray phone number are rejected.
func ExtractSummary(text string) string {
	block := sectionBlock(text, summaryHeadings)
	if block == "" {
		return ""
	}

	var parts []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	summary := strings.Join(parts, " ")

	if len(summary) < minSummaryLength {
		return ""
	}
	for _, re := range phonePatterns {
		if re.MatchString(summary) && len(summary) < 60 {
			return ""
		}
	}
	return summary
}
