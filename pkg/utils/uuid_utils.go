package utils

import "github.com/google/uuid"

// GenerateUUIDv7 returns a time-ordered UUID for new records, falling back
// to v4 if v7 generation fails.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
