// Package utils holds small helpers shared by the services: record ID
// generation, the canonical timestamp format, and title slugs.
package utils

import "github.com/google/uuid"

// NewRecordID returns a new unique record identifier with the given family
// prefix (e.g. "note-", "txn-"). Uniqueness comes from a random UUID, so
// concurrent requests can never collide.
func NewRecordID(prefix string) string {
	return prefix + uuid.NewString()
}
