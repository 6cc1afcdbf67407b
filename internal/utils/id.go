package utils

import "github.com/google/uuid"

// NewID returns a time-ordered id: a millisecond timestamp followed by random
// bits (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
