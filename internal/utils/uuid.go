package utils

import "github.com/google/uuid"

// UUIDGenerator produces row ids for accounts, credentials, locations and
// store hours. Ids are UUIDv7 so they sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random UUIDv4 if the v7 clock read fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
