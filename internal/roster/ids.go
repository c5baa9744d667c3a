package roster

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces opaque record identifiers.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// UUIDs returns random version 4 UUIDs.
func UUIDs() IDGenerator {
	return IDFunc(uuid.NewString)
}

// TimestampIDs issues decimal millisecond timestamps. Values are strictly
// increasing within one generator, so two records created in the same tick
// still get distinct ids.
type TimestampIDs struct {
	Now func() time.Time

	mu   sync.Mutex
	last int64
}

// NewTimestampIDs returns a generator backed by the wall clock.
func NewTimestampIDs() *TimestampIDs {
	return &TimestampIDs{Now: time.Now}
}

func (g *TimestampIDs) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
