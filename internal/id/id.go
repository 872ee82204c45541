package id

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// MaxID is the last millisecond of year 9999, the latest time an ID encodes.
const MaxID int64 = 253402300799999

// Generator issues transaction IDs from a millisecond clock. IDs are strictly
// increasing: when two calls land in the same millisecond the second one is
// bumped past the first.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewGenerator creates a Generator. A nil clock means time.Now.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns a fresh ID.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return Format(ms)
}

// Observe records an ID issued elsewhere (seed data) so Next never returns it.
// Non-numeric IDs and IDs past MaxID are not timestamps and are ignored.
func (g *Generator) Observe(id string) {
	ms, err := Parse(id)
	if err != nil || ms > MaxID {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if ms > g.last {
		g.last = ms
	}
}

// Format renders a millisecond value as an ID, e.g. 1763596800000 -> "1763596800000".
func Format(ms int64) string {
	return strconv.FormatInt(ms, 10)
}

// Parse extracts the millisecond value from a generated ID.
func Parse(id string) (int64, error) {
	if id == "" {
		return 0, fmt.Errorf("invalid transaction ID: empty")
	}
	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction ID %q: %w", id, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("invalid transaction ID %q: negative", id)
	}
	return ms, nil
}
