package structcompile

import (
	"sort"

	"github.com/arxos/structcompile/internal/fixedpoint"
)

// DirtyFlags is a bitmask over the six cache classes a struct's authoring
// data can invalidate.
type DirtyFlags uint32

const (
	DirtyFootprint DirtyFlags = 1 << iota
	DirtyVolume
	DirtyEnclosure
	DirtySurface
	DirtyCarrier
	DirtySupport
)

// dirtyExpansion is the dependency-expansion table applied once per Mark,
// before storage: setting a flag also sets everything that depends on it.
func dirtyExpansion(flags DirtyFlags) DirtyFlags {
	if flags&DirtyFootprint != 0 {
		flags |= DirtyVolume | DirtyEnclosure | DirtySurface | DirtySupport
	}
	if flags&DirtyVolume != 0 {
		flags |= DirtyEnclosure | DirtySurface | DirtySupport
	}
	if flags&DirtyEnclosure != 0 {
		flags |= DirtySurface
	}
	return flags
}

// DirtyRecord is the per-struct dirty state: the flag set plus an optional
// affected-chunk AABB (only meaningful once ChunksValid is true).
type DirtyRecord struct {
	StructID    ID
	Flags       DirtyFlags
	ChunksValid bool
	ChunkLo     fixedpoint.ChunkCoord
	ChunkHi     fixedpoint.ChunkCoord
}

// DirtyTracker holds one DirtyRecord per dirty struct, in an array sorted by
// StructID — never a map, so iteration order (and thus enqueue order) is
// reproducible.
type DirtyTracker struct {
	records []DirtyRecord
}

func (t *DirtyTracker) indexOf(structID ID) (int, bool) {
	idx := sort.Search(len(t.records), func(i int) bool { return t.records[i].StructID >= structID })
	if idx < len(t.records) && t.records[idx].StructID == structID {
		return idx, true
	}
	return idx, false
}

// Mark OR-merges flags into the record for structID (creating it if
// missing), expanding dependencies first. structID == 0 is ignored.
func (t *DirtyTracker) Mark(structID ID, flags DirtyFlags) {
	if structID == 0 {
		return
	}
	flags = dirtyExpansion(flags)
	idx, ok := t.indexOf(structID)
	if ok {
		t.records[idx].Flags |= flags
		return
	}
	rec := DirtyRecord{StructID: structID, Flags: flags}
	t.records = append(t.records, DirtyRecord{})
	copy(t.records[idx+1:], t.records[idx:len(t.records)-1])
	t.records[idx] = rec
}

// MarkChunks marks structID dirty with flags and merges [lo,hi] into its
// affected-chunk AABB via componentwise min/max.
func (t *DirtyTracker) MarkChunks(structID ID, flags DirtyFlags, lo, hi fixedpoint.ChunkCoord) {
	if structID == 0 {
		return
	}
	t.Mark(structID, flags)
	idx, ok := t.indexOf(structID)
	if !ok {
		return
	}
	rec := &t.records[idx]
	if !rec.ChunksValid {
		rec.ChunkLo, rec.ChunkHi = lo, hi
		rec.ChunksValid = true
		return
	}
	rec.ChunkLo = minChunk(rec.ChunkLo, lo)
	rec.ChunkHi = maxChunk(rec.ChunkHi, hi)
}

func minChunk(a, b fixedpoint.ChunkCoord) fixedpoint.ChunkCoord {
	return fixedpoint.ChunkCoord{CX: minI32(a.CX, b.CX), CY: minI32(a.CY, b.CY), CZ: minI32(a.CZ, b.CZ)}
}

func maxChunk(a, b fixedpoint.ChunkCoord) fixedpoint.ChunkCoord {
	return fixedpoint.ChunkCoord{CX: maxI32(a.CX, b.CX), CY: maxI32(a.CY, b.CY), CZ: maxI32(a.CZ, b.CZ)}
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Get returns the dirty record for structID, if present.
func (t *DirtyTracker) Get(structID ID) (DirtyRecord, bool) {
	idx, ok := t.indexOf(structID)
	if !ok {
		return DirtyRecord{}, false
	}
	return t.records[idx], true
}

// ClearFlags clears mask out of structID's flag set. If the record becomes
// fully clean it is dropped from the tracker, clearing its chunk sub-flag
// along with it.
func (t *DirtyTracker) ClearFlags(structID ID, mask DirtyFlags) {
	idx, ok := t.indexOf(structID)
	if !ok {
		return
	}
	t.records[idx].Flags &^= mask
	if t.records[idx].Flags == 0 {
		t.records = append(t.records[:idx], t.records[idx+1:]...)
	}
}

// All returns the dirty records in ascending StructID order. The slice is
// a live view — callers must not retain it across a Mark/ClearFlags call.
func (t *DirtyTracker) All() []DirtyRecord { return t.records }
