// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/KingSharif1/resume-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a parsed profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	name := strings.TrimSpace(strings.Join([]string{
		profile.Contact.FirstName, profile.Contact.MiddleName, profile.Contact.LastName,
	}, " "))
	name = strings.Join(strings.Fields(name), " ")
	if name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	}
	if profile.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Contact.Email))
	}
	if profile.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", profile.Contact.Phone))
	}
	if profile.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Contact.Location))
	}
	sb.WriteString(fmt.Sprintf("Source:   %s\n", profile.SourceType))

	p.printBox("CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))

	p.printExperience(profile.Experience)
	p.printEducation(profile.Education)
	p.printSkills(profile.Skills)

	fmt.Fprintf(p.out, "Sections: %d experience, %d education, %d projects, %d certifications\n",
		len(profile.Experience), len(profile.Education), len(profile.Projects), len(profile.Certifications))
}

// printExperience outputs the top work history entries.
func (p *Printer) printExperience(entries []types.Experience) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, e.Position))
		sb.WriteString(fmt.Sprintf("    %s", e.Company))
		if e.StartDate != "" || e.EndDate != "" {
			sb.WriteString(fmt.Sprintf(" (%s - %s)", e.StartDate, e.EndDate))
		}
		sb.WriteString("\n")
		if len(e.Achievements) > 0 {
			sb.WriteString(fmt.Sprintf("    %d achievements\n", len(e.Achievements)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", sb.String())
}

// printEducation outputs the education entries.
func (p *Printer) printEducation(entries []types.Education) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("• %s\n", e.Institution))
		degree := e.Degree
		if e.FieldOfStudy != "" {
			degree += " in " + e.FieldOfStudy
		}
		sb.WriteString(fmt.Sprintf("  %s\n", degree))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// printSkills outputs skills grouped by category.
func (p *Printer) printSkills(skills map[string][]string) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	for _, category := range []string{"technical", "tools", "soft"} {
		list, ok := skills[category]
		if !ok {
			continue
		}
		joined := strings.Join(list, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-10s %s\n", category+":", joined))
	}
	for category, list := range skills {
		if category == "technical" || category == "tools" || category == "soft" {
			continue
		}
		joined := strings.Join(list, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-10s %s\n", category+":", joined))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
