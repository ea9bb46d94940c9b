// Package ids mints the identifiers used as storage keys across the service:
// users, shops, items, orders and deliveries all carry the same ULID format,
// so creation order is readable straight off the key.
package ids

import (
	"io"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type generator struct {
	mu      sync.Mutex
	entropy io.Reader
}

// Monotonic entropy keeps same-millisecond keys ordered, which matters for
// order lines created in one transaction.
var gen = &generator{
	entropy: ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0),
}

func (g *generator) next() ulid.ULID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// New returns a fresh identifier.
func New() string {
	return gen.next().String()
}

// IsValid reports whether id has the shape New produces. Handlers use it to
// reject path parameters before any store lookup.
func IsValid(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
