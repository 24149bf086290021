// Package ingestion turns uploaded resume binaries into clean plain text
// plus a heading-annotated variant used as AI input.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes an ingested document.
type Metadata struct {
	Timestamp string   `json:"timestamp"` // RFC3339
	Hash      string   `json:"hash"`      // SHA256 hex digest of Text
	Headings  []string `json:"headings,omitempty"`
}

// Document is the extraction output for one upload. Text is the cleaned
// plain text; FormattedText is the same text with detected section
// headings marked with a "## " prefix.
type Document struct {
	Text          string
	FormattedText string
	Metadata      *Metadata
}

// NewMetadata stamps content with the current time and its content hash.
func NewMetadata(content string, headings []string) *Metadata {
	return &Metadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Headings:  headings,
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
