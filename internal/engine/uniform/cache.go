// Package uniform caches shader uniform locations by name.
//
// A name the program does not expose resolves to -1. That is a soft failure:
// the first miss per name is logged at Warn, later misses at Debug, and the
// caller skips the upload so the GPU keeps its previous value.
package uniform

import (
	"go.uber.org/zap"
)

// Missing is the location OpenGL reports for an unknown or inactive uniform.
const Missing int32 = -1

// Locator resolves a uniform name against a linked program.
type Locator interface {
	UniformLocation(program uint32, name string) int32
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(program uint32, name string) int32

// UniformLocation implements Locator.
func (f LocatorFunc) UniformLocation(program uint32, name string) int32 {
	return f(program, name)
}

// Cache maps uniform names to locations for a single program.
type Cache struct {
	program   uint32
	locator   Locator
	log       *zap.Logger
	locations map[string]int32
	misses    map[string]int
}

// NewCache creates a cache for program. A nil logger discards diagnostics.
func NewCache(program uint32, locator Locator, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		program:   program,
		locator:   locator,
		log:       log,
		locations: make(map[string]int32),
		misses:    make(map[string]int),
	}
}

// Program returns the program handle the cache resolves against.
func (c *Cache) Program() uint32 {
	return c.program
}

// Location returns the location of name and whether it is usable.
func (c *Cache) Location(name string) (int32, bool) {
	loc, ok := c.locations[name]
	if !ok {
		loc = c.locator.UniformLocation(c.program, name)
		c.locations[name] = loc
	}
	if loc != Missing {
		return loc, true
	}

	c.misses[name]++
	if c.misses[name] == 1 {
		c.log.Warn("uniform not found",
			zap.Uint32("program", c.program),
			zap.String("name", name))
	} else {
		c.log.Debug("uniform not found",
			zap.Uint32("program", c.program),
			zap.String("name", name),
			zap.Int("misses", c.misses[name]))
	}
	return Missing, false
}

// Misses returns how many lookups of name have failed.
func (c *Cache) Misses(name string) int {
	return c.misses[name]
}

// Len returns the number of cached names, found or not.
func (c *Cache) Len() int {
	return len(c.locations)
}
