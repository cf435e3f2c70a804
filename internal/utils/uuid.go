package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new rows. Time-ordered v7 UUIDs are
// preferred so primary keys stay roughly insertion-ordered.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
