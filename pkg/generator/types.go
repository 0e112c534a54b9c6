package generator

import (
	"math/rand/v2"
)

// Records is a batch of generated records, serialized as a JSON array.
type Records interface {
	Len() int
}

// Generator produces fixture data for one record type
type Generator interface {
	// Init installs the random source every record is drawn from.
	// Generators never touch the process-wide source.
	Init(r *rand.Rand)

	// Generate samples count records in order, calling tick after each one.
	// tick may be nil.
	Generate(count int, tick func()) Records

	// Description returns a human-readable description of the record format
	Description() string

	// DefaultCount returns the number of records a standard run produces
	DefaultCount() int

	// DefaultOutput returns the file name a standard run writes to
	DefaultOutput() string
}
