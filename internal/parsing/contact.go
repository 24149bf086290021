package parsing

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

var contactValidate = validator.New()

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePatterns are tried in sequence; results are deduplicated and the
	// first hit becomes the primary number.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?1?[-.\s]?\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9\-_/%.]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9\-_/%.]+`)
	websiteRe  = regexp.MustCompile(`https?://[^\s,;)]+`)

	cityStateRe = regexp.MustCompile(`\b([A-Z][a-zA-Z.]+(?:\s[A-Z][a-zA-Z.]+)?),\s?([A-Z]{2})\b`)
)

// ExtractContact pulls best-effort contact fields from the full document
// text. Every field cascades through its patterns in priority order; the
// first match wins and missing fields stay empty.
func ExtractContact(text string) types.ContactInfo {
	var c types.ContactInfo

	c.Email = extractEmail(text)
	c.Phone = extractPhone(text)
	c.LinkedIn = normalizeProfileURL(linkedinRe.FindString(text))
	c.GitHub = normalizeProfileURL(githubRe.FindString(text))
	c.Website = extractWebsite(text)
	c.Location = extractLocation(text)
	c.FirstName, c.MiddleName, c.LastName = extractName(text, c.Email)

	return c
}

// extractEmail scans whitespace-delimited tokens with a permissive email
// pattern and keeps the first candidate that passes full validation.
func extractEmail(text string) string {
	for _, token := range strings.Fields(text) {
		candidate := emailRe.FindString(token)
		if candidate == "" {
			continue
		}
		if contactValidate.Var(candidate, "email") == nil {
			return candidate
		}
	}
	return ""
}

func extractPhone(text string) string {
	var found []string
	seen := make(map[string]bool)
	for _, re := range phonePatterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}
	if len(found) == 0 {
		return ""
	}
	return found[0]
}

// normalizeProfileURL prefixes https:// when the matched URL has no scheme.
func normalizeProfileURL(url string) string {
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}

// extractWebsite returns the first https URL that is not a LinkedIn or
// GitHub profile.
func extractWebsite(text string) string {
	for _, m := range websiteRe.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return m
	}
	return ""
}

// extractLocation tries the curated city+state list first, then falls back
// to a generic "City, ST" pattern.
func extractLocation(text string) string {
	lower := strings.ToLower(text)
	for _, loc := range knownLocations {
		if strings.Contains(lower, strings.ToLower(loc)) {
			return loc
		}
	}
	if m := cityStateRe.FindStringSubmatch(text); m != nil {
		return m[1] + ", " + m[2]
	}
	return ""
}

// --- Name extraction ---

const maxNameScanLines = 10

var (
	allCapsMiddleRe   = regexp.MustCompile(`^([A-Z]{2,})\s+([A-Z])\.?\s+([A-Z]{2,})$`)
	allCapsRe         = regexp.MustCompile(`^([A-Z]{2,})\s+([A-Z]{2,})$`)
	titleCaseRe       = regexp.MustCompile(`^([A-Z][a-z]+)\s+([A-Z][a-z]+)$`)
	titleCaseMiddleRe = regexp.MustCompile(`^([A-Z][a-z]+)\s+([A-Z])\.?\s+([A-Z][a-z]+)$`)
)

type nameParts struct {
	First  string
	Middle string
	Last   string
}

// nameStrategies is the ordered heuristic cascade for name lines. The
// first strategy that matches a line wins and the scan stops.
var nameStrategies = []func(line string) (nameParts, bool){
	tryAllCapsWithMiddle,
	tryAllCaps,
	tryTitleCase,
	tryTitleCaseWithMiddle,
}

func tryAllCapsWithMiddle(line string) (nameParts, bool) {
	m := allCapsMiddleRe.FindStringSubmatch(line)
	if m == nil {
		return nameParts{}, false
	}
	return nameParts{titleWord(m[1]), m[2] + ".", titleWord(m[3])}, true
}

func tryAllCaps(line string) (nameParts, bool) {
	m := allCapsRe.FindStringSubmatch(line)
	if m == nil {
		return nameParts{}, false
	}
	for _, word := range nameExclusionWords {
		if m[1] == word || m[2] == word {
			return nameParts{}, false
		}
	}
	return nameParts{First: titleWord(m[1]), Last: titleWord(m[2])}, true
}

func tryTitleCase(line string) (nameParts, bool) {
	if len(line) >= 50 {
		return nameParts{}, false
	}
	m := titleCaseRe.FindStringSubmatch(line)
	if m == nil {
		return nameParts{}, false
	}
	return nameParts{First: m[1], Last: m[2]}, true
}

func tryTitleCaseWithMiddle(line string) (nameParts, bool) {
	m := titleCaseMiddleRe.FindStringSubmatch(line)
	if m == nil {
		return nameParts{}, false
	}
	return nameParts{m[1], m[2] + ".", m[3]}, true
}

// extractName examines the first few non-empty lines, skipping anything
// that looks like contact info or a section heading, and runs the strategy
// cascade per line. When no line matches, the name is derived from the
// local part of the already-found email address.
func extractName(text, email string) (first, middle, last string) {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > maxNameScanLines {
			break
		}
		if looksLikeContactLine(line) || IsKnownHeading(line) {
			continue
		}
		for _, try := range nameStrategies {
			if parts, ok := try(line); ok {
				return parts.First, parts.Middle, parts.Last
			}
		}
	}

	if email != "" {
		f, l := nameFromEmail(email)
		return f, "", l
	}
	return "", "", ""
}

func looksLikeContactLine(line string) bool {
	if strings.Contains(line, "@") || strings.Contains(line, "http") {
		return true
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
		return true
	}
	for _, re := range phonePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// nameFromEmail splits the email local part on common separators.
func nameFromEmail(email string) (first, last string) {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "", ""
	}
	parts := strings.FieldsFunc(email[:at], func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	var words []string
	for _, p := range parts {
		if p != "" {
			words = append(words, titleWord(p))
		}
	}
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	default:
		return words[0], words[len(words)-1]
	}
}

// titleWord converts a token to "First-letter-upper, rest-lower" form.
func titleWord(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
