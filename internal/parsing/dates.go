// Package parsing recovers structured resume data from plain text using
// deterministic pattern extraction and optional AI-assisted extraction.
package parsing

import (
	"regexp"
	"strings"
)

// monthNumbers maps month names and common abbreviations to zero-padded
// month numbers. "sept" is included as a fourth-letter alias.
var monthNumbers = map[string]string{
	"january": "01", "jan": "01",
	"february": "02", "feb": "02",
	"march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"may":  "05",
	"june": "06", "jun": "06",
	"july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09", "sept": "09",
	"october": "10", "oct": "10",
	"november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

var (
	canonicalDateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	fullDateRe      = regexp.MustCompile(`^(\d{4}-(?:0[1-9]|1[0-2]))-\d{2}$`)
	monthYearRe     = regexp.MustCompile(`^([A-Za-z]+)\.?,?\s+(\d{4})$`)
)

// NormalizeDate converts a heterogeneous date string to the canonical
// YYYY-MM form. Canonical input is returned unchanged, YYYY-MM-DD is
// truncated, and month-name forms ("November 2023", "Aug 2022") are mapped
// through the month table. Anything else normalizes to the empty string;
// an unparseable date is a soft failure, never an error.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if canonicalDateRe.MatchString(s) {
		return s
	}
	if m := fullDateRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if num, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			return m[2] + "-" + num
		}
	}
	return ""
}
