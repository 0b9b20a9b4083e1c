package utils

import "github.com/google/uuid"

// UUIDGenerator issues record, lab result and archive ids. UUIDv7 ids sort
// by creation time, and ids minted in the same millisecond during a bulk
// import still differ.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 id if the v7 clock source fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
