package usecase

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injected so transition timestamps are
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// IDGenerator produces unique identifiers for handoff tokens.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUID strings.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
