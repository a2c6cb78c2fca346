package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (v7) UUID strings used as primary keys
// of user profiles. Falls back to a random v4 when the clock source fails.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
