package payout

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies unique opaque identifiers.
type IDGenerator interface {
	NewID() string
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// SequenceIDs issues Prefix-1, Prefix-2, ... and is safe for concurrent use.
type SequenceIDs struct {
	Prefix string
	n      atomic.Int64
}

func (s *SequenceIDs) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}

// ClockOrSystem returns c, or SystemClock when c is nil.
func ClockOrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}

// IDsOrUUID returns g, or UUIDGenerator when g is nil.
func IDsOrUUID(g IDGenerator) IDGenerator {
	if g == nil {
		return UUIDGenerator{}
	}
	return g
}
