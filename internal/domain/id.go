package domain

import "github.com/google/uuid"

// newSessionID creates a new unique countdown session identifier.
func newSessionID() string {
	return uuid.New().String()
}
