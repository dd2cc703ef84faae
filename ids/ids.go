// Package ids mints monotonic unique identifiers for figures and constraints.
package ids

// ID is an opaque wrapper around an unsigned 64-bit integer. Zero is reserved
// to mean "unset"; the zero value of ID is therefore always invalid as a
// reference to a live figure or constraint.
type ID uint64

// Unset is the reserved zero identifier.
const Unset ID = 0

// Valid reports whether id is anything other than the reserved zero value.
func (id ID) Valid() bool { return id != Unset }

// Generator issues strictly increasing identifiers starting from 1. A
// Generator is not safe for concurrent use; like the rest of this module, all
// public operations are single-threaded and run to completion.
type Generator struct {
	next ID
}

// NewGenerator returns a Generator ready to issue IDs starting from 1.
func NewGenerator() *Generator {
	return &Generator{next: 1}
}

// Next returns a new unique identifier and advances the generator.
func (g *Generator) Next() ID {
	id := g.next
	g.next++
	return id
}

// Current returns the next identifier that will be issued, without advancing
// the generator.
func (g *Generator) Current() ID {
	return g.next
}

// Set forces the generator's next-issued value. Used only by Reset.
func (g *Generator) Set(id ID) {
	g.next = id
}

// Reset returns the generator to its initial state (next ID = 1).
func (g *Generator) Reset() {
	g.next = 1
}
