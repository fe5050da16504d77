package uid

import "github.com/google/uuid"

// UUID generates time-ordered UUID strings, used for correlation and event IDs.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 when v7 generation fails.
func (*UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
