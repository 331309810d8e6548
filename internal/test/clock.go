package test

import (
	"fmt"
	"time"
)

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the configured instant.
func (c FixedClock) Now() time.Time { return c.T }

// SequenceIDs hands out deterministic identifiers: tok-1, tok-2, ...
type SequenceIDs struct {
	Prefix string
	next   int
}

// NewID returns the next identifier in the sequence.
func (s *SequenceIDs) NewID() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "tok"
	}
	s.next++
	return fmt.Sprintf("%s-%d", prefix, s.next)
}
