package id

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
)

// UUIDGenerator issues random (version 4) UUID strings
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
