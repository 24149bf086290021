package parsing

import (
	"regexp"
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

// monthAlt matches full and 3-letter month names plus "Sept".
const monthAlt = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// datePart matches one side of a date range: month-name form, numeric
// month/year, or a bare year.
const datePart = monthAlt + `\.?,?\s+\d{4}|\d{1,2}/\d{4}|\d{4}`

// dateRangeRe anchors one job entry per match. The right side may also be
// an ongoing marker.
var dateRangeRe = regexp.MustCompile(`(?i)(` + datePart + `)\s*[-–—]\s*(` + datePart + `|Present|Current|Now)`)

var ongoingRe = regexp.MustCompile(`(?i)^(present|current|now)$`)

const (
	maxHeaderLines   = 5
	maxHeaderLineLen = 60
	minProseLen      = 20

	// Placeholders used when a sub-block yields no company or position.
	placeholderCompany  = "Company Name"
	placeholderPosition = "Position Title"
)

// ExtractExperience slices the experience section into one sub-block per
// date-range match and recovers an entry from each. Returns nil when no
// experience section or no date anchors are found.
func ExtractExperience(text string) []types.Experience {
	block := sectionBlock(text, experienceHeadings)
	if block == "" {
		return nil
	}

	matches := dateRangeRe.FindAllStringSubmatchIndex(block, -1)
	if len(matches) == 0 {
		return nil
	}

	entries := make([]types.Experience, 0, len(matches))
	for i, m := range matches {
		// Job #1 owns everything before its date; later jobs start at
		// their own date match.
		start := m[0]
		if i == 0 {
			start = 0
		}
		end := len(block)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		entry := parseExperienceBlock(block[start:end])
		entry.StartDate = block[m[2]:m[3]]
		endRaw := block[m[4]:m[5]]
		if ongoingRe.MatchString(endRaw) {
			entry.Current = true
			entry.EndDate = "Present"
		} else {
			entry.EndDate = endRaw
		}
		entries = append(entries, entry)
	}
	return entries
}

// parseExperienceBlock classifies the lines of one job sub-block. The
// first few non-date lines are probed for location, position, and company;
// everything else becomes achievements (bullets) or description (prose).
func parseExperienceBlock(sub string) types.Experience {
	var entry types.Experience
	var prose []string
	headerSeen := 0

	for _, line := range strings.Split(sub, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if dateRangeRe.MatchString(line) && len(line) < maxHeaderLineLen {
			continue
		}
		if marker, ok := bulletText(line); ok {
			if marker != "" {
				entry.Achievements = append(entry.Achievements, marker)
			}
			continue
		}

		if headerSeen < maxHeaderLines {
			headerSeen++
			switch {
			case entry.Location == "" && cityStateRe.MatchString(line) && len(line) < 40:
				entry.Location = strings.TrimSpace(line)
				continue
			case entry.Position == "" && hasPositionKeyword(line):
				entry.Position = line
				continue
			case entry.Company == "" && len(line) < maxHeaderLineLen:
				entry.Company = line
				continue
			}
		}
		if len(line) > minProseLen {
			prose = append(prose, line)
		}
	}

	entry.Description = strings.Join(prose, " ")
	if entry.Company == "" {
		entry.Company = placeholderCompany
	}
	if entry.Position == "" {
		entry.Position = placeholderPosition
	}
	return entry
}

// bulletText reports whether a line is a bullet item and returns its text
// with the marker stripped.
func bulletText(line string) (string, bool) {
	for _, prefix := range []string{"•", "·", "●", "-", "*"} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

func hasPositionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range positionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
