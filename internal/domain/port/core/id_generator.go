package core

// IDGenerator produces application-level record identifiers
type IDGenerator interface {
	NewID() string
}
