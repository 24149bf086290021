// Package types defines the resume profile entities shared across the
// extraction, merge, and serving layers.
package types

import "time"

// Supported upload MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// IsSupportedMime reports whether the given MIME type can be parsed.
func IsSupportedMime(mimeType string) bool {
	return mimeType == MimePDF || mimeType == MimeDOCX
}

// SourceTypeForMime returns the short source label ("pdf" or "docx") for a
// supported MIME type, or empty string otherwise.
func SourceTypeForMime(mimeType string) string {
	switch mimeType {
	case MimePDF:
		return "pdf"
	case MimeDOCX:
		return "docx"
	default:
		return ""
	}
}

// ContactInfo holds best-effort contact fields. No format is guaranteed
// beyond what the extractors could recover.
type ContactInfo struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
	Website    string `json:"website"`
}

// IsEmpty reports whether no contact field was populated.
func (c ContactInfo) IsEmpty() bool {
	return c == ContactInfo{}
}

// Experience is a single work history entry.
// Invariant: Current == true implies EndDate == "Present".
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is a single education entry.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	GPA          string `json:"gpa,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
	URL          string   `json:"url,omitempty"`
}

// Certification is a certification or license entry. Issuer is frequently
// unrecoverable from plain text and may be empty.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ExtractionResult is the raw output of a single extractor (AI or pattern)
// before merge: no identifiers assigned, dates not yet canonical.
// Skills is an open mapping from category name to an ordered, deduplicated
// skill list; AI-sourced category names are preserved verbatim.
type ExtractionResult struct {
	Contact        ContactInfo         `json:"contact"`
	Summary        string              `json:"summary"`
	Experience     []Experience        `json:"experience"`
	Education      []Education         `json:"education"`
	Projects       []Project           `json:"projects"`
	Certifications []Certification     `json:"certifications"`
	Skills         map[string][]string `json:"skills"`
}

// Profile is the merged internal working profile for one parse request.
// Entities are created fresh per request; identifiers are minted at merge
// time and are not stable across re-parses of the same document.
type Profile struct {
	Contact        ContactInfo         `json:"contact"`
	Summary        string              `json:"summary"`
	Experience     []Experience        `json:"experience"`
	Education      []Education         `json:"education"`
	Projects       []Project           `json:"projects"`
	Certifications []Certification     `json:"certifications"`
	Skills         map[string][]string `json:"skills"`
	CreatedAt      time.Time           `json:"createdAt"`
	SourceType     string              `json:"sourceType"` // "pdf" or "docx"
}
