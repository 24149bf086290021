package parsing

import "regexp"

// Fixed category names used by the pattern fallback. AI-sourced category
// names are preserved verbatim instead.
const (
	SkillCategoryTechnical = "technical"
	SkillCategoryTools     = "tools"
	SkillCategorySoft      = "soft"
)

var wordCharRe = regexp.MustCompile(`^\w`)

// skillPatterns precompiles one pattern per vocabulary token.
var skillPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, vocab := range [][]string{technicalSkillVocab, toolSkillVocab, softSkillVocab} {
		for _, skill := range vocab {
			patterns[skill] = skillPattern(skill)
		}
	}
	return patterns
}()

// ExtractSkills scans the whole text against the three fixed vocabularies
// and returns only the categories that matched. Lists keep vocabulary
// order and are deduplicated by construction.
func ExtractSkills(text string) map[string][]string {
	skills := make(map[string][]string)
	if hits := matchVocab(text, technicalSkillVocab); len(hits) > 0 {
		skills[SkillCategoryTechnical] = hits
	}
	if hits := matchVocab(text, toolSkillVocab); len(hits) > 0 {
		skills[SkillCategoryTools] = hits
	}
	if hits := matchVocab(text, softSkillVocab); len(hits) > 0 {
		skills[SkillCategorySoft] = hits
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

func matchVocab(text string, vocab []string) []string {
	var hits []string
	for _, skill := range vocab {
		if skillPatterns[skill].MatchString(text) {
			hits = append(hits, skill)
		}
	}
	return hits
}

// skillPattern builds a case-insensitive pattern for one skill token.
// Word boundaries are applied only where the token itself starts or ends
// with a word character, so tokens like "C++" and ".NET" still match.
func skillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)
	prefix := ""
	if wordCharRe.MatchString(skill) {
		prefix = `\b`
	}
	suffix := ""
	if last := skill[len(skill)-1:]; wordCharRe.MatchString(last) {
		suffix = `\b`
	}
	return regexp.MustCompile(`(?i)` + prefix + quoted + suffix)
}
