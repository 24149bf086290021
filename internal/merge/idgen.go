// Package merge reconciles AI and pattern extraction results into the
// final profile shapes.
package merge

import "github.com/google/uuid"

// IDGenerator mints opaque identifiers for list entries. It is injectable
// so tests can supply deterministic IDs; identifiers are practically
// unique within a session, nothing stronger.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production generator.
type UUIDGenerator struct{}

// NewID returns a random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
