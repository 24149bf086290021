package merge

import (
	"log/slog"
	"strings"
	"time"

	"github.com/KingSharif1/resume-sub000/internal/parsing"
	"github.com/KingSharif1/resume-sub000/internal/types"
)

// Merger combines the AI and pattern extraction results into one profile.
// The rule is group-level: for each field group the AI result wins when
// non-empty, otherwise the pattern result is used. Groups are never merged
// entry by entry.
type Merger struct {
	ids    IDGenerator
	logger *slog.Logger
}

// NewMerger creates a merger. A nil generator falls back to UUIDs, a nil
// logger to slog.Default().
func NewMerger(ids IDGenerator, logger *slog.Logger) *Merger {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{ids: ids, logger: logger}
}

// Merge selects each field group, assigns fresh identifiers to every list
// entry, and canonicalizes every date field. ai may be nil when the AI
// extractor failed or was not configured.
func (m *Merger) Merge(ai, pattern *types.ExtractionResult) *types.Profile {
	if pattern == nil {
		pattern = &types.ExtractionResult{}
	}

	profile := &types.Profile{
		Contact:        pattern.Contact,
		Summary:        pattern.Summary,
		Experience:     pattern.Experience,
		Education:      pattern.Education,
		Projects:       pattern.Projects,
		Certifications: pattern.Certifications,
		Skills:         pattern.Skills,
		CreatedAt:      time.Now().UTC(),
	}

	if ai != nil {
		if !ai.Contact.IsEmpty() {
			profile.Contact = ai.Contact
		}
		if strings.TrimSpace(ai.Summary) != "" {
			profile.Summary = ai.Summary
		}
		if len(ai.Experience) > 0 {
			profile.Experience = ai.Experience
		}
		if len(ai.Education) > 0 {
			profile.Education = ai.Education
		}
		if len(ai.Projects) > 0 {
			profile.Projects = ai.Projects
		}
		if len(ai.Certifications) > 0 {
			profile.Certifications = ai.Certifications
		}
		if len(ai.Skills) > 0 {
			profile.Skills = ai.Skills
		}
	}

	m.finalizeExperience(profile.Experience)
	m.finalizeEducation(profile.Education)
	m.finalizeProjects(profile.Projects)
	m.finalizeCertifications(profile.Certifications)
	profile.Skills = dedupeSkills(profile.Skills)

	return profile
}

func (m *Merger) finalizeExperience(entries []types.Experience) {
	for i := range entries {
		e := &entries[i]
		e.ID = m.ids.NewID()
		e.StartDate = m.normalizeDate(e.StartDate)
		if e.Current || strings.EqualFold(strings.TrimSpace(e.EndDate), "present") {
			e.Current = true
			e.EndDate = "Present"
		} else {
			e.EndDate = m.normalizeDate(e.EndDate)
		}
	}
}

func (m *Merger) finalizeEducation(entries []types.Education) {
	for i := range entries {
		e := &entries[i]
		e.ID = m.ids.NewID()
		e.StartDate = m.normalizeDate(e.StartDate)
		e.EndDate = m.normalizeDate(e.EndDate)
	}
}

func (m *Merger) finalizeProjects(entries []types.Project) {
	for i := range entries {
		p := &entries[i]
		p.ID = m.ids.NewID()
		p.StartDate = m.normalizeDate(p.StartDate)
		if p.Current || strings.EqualFold(strings.TrimSpace(p.EndDate), "present") {
			p.Current = true
			p.EndDate = "Present"
		} else {
			p.EndDate = m.normalizeDate(p.EndDate)
		}
	}
}

func (m *Merger) finalizeCertifications(entries []types.Certification) {
	for i := range entries {
		c := &entries[i]
		c.ID = m.ids.NewID()
		c.Date = m.normalizeDate(c.Date)
	}
}

// normalizeDate canonicalizes one date field. An unparseable value is a
// soft failure: it normalizes to empty and is only logged.
func (m *Merger) normalizeDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	norm := parsing.NormalizeDate(raw)
	if norm == "" {
		m.logger.Debug("unparseable date normalized to empty", "value", raw)
	}
	return norm
}

// dedupeSkills removes duplicates within each category while preserving
// order and category names.
func dedupeSkills(skills map[string][]string) map[string][]string {
	if len(skills) == 0 {
		return skills
	}
	out := make(map[string][]string, len(skills))
	for category, list := range skills {
		seen := make(map[string]bool, len(list))
		var deduped []string
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			deduped = append(deduped, s)
		}
		if len(deduped) > 0 {
			out[category] = deduped
		}
	}
	return out
}
