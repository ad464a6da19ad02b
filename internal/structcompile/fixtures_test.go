package structcompile

import (
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
)

// newFixtureStructID mints a human-debuggable, content-independent nonzero
// struct ID for tests that only need distinct IDs and don't care which
// literal value they get — the compiler itself never generates IDs this
// way, only authoring fixtures do, mirroring how the wider corpus seeds
// object identity with uuid.New() while this engine's own compiled IDs stay
// content-hash derived.
func newFixtureStructID(t *testing.T) ID {
	t.Helper()
	u := uuid.New()
	v := binary.BigEndian.Uint64(u[:8])
	if v == 0 {
		v = 1
	}
	return v
}

func TestDirtyTrackerAcceptsUUIDSeededFixtureIDs(t *testing.T) {
	var tr DirtyTracker
	a := newFixtureStructID(t)
	b := newFixtureStructID(t)
	tr.Mark(a, DirtyCarrier)
	tr.Mark(b, DirtyCarrier)

	if _, ok := tr.Get(a); !ok {
		t.Fatalf("expected struct %d to be marked dirty", a)
	}
	if _, ok := tr.Get(b); !ok {
		t.Fatalf("expected struct %d to be marked dirty", b)
	}
}
