package utils

import "github.com/google/uuid"

// UUIDGenerator mints note identifiers on the client. Identifiers are
// version 7 and sort by creation time; a random version 4 is used if the
// clock source fails.
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
