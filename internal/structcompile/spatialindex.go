package structcompile

import "github.com/arxos/structcompile/internal/fixedpoint"

// SpatialEntry is one canonical-key entry of a spatial index: a chunk
// coordinate, the owning struct, the artifact it indexes, and an arbitrary
// payload (an AABB for region/surface/carrier indices, a bare position for
// support nodes).
type SpatialEntry[P any] struct {
	Chunk      fixedpoint.ChunkCoord
	StructID   ID
	ArtifactID ID
	Payload    P
}

func lessSpatialEntry[P any](a, b SpatialEntry[P]) bool {
	if c := fixedpoint.CmpChunkCoord(a.Chunk, b.Chunk); c != 0 {
		return c < 0
	}
	if c := fixedpoint.CmpU64(a.StructID, b.StructID); c != 0 {
		return c < 0
	}
	return fixedpoint.CmpU64(a.ArtifactID, b.ArtifactID) < 0
}

// SpatialIndex is a single array held in canonical lexicographic order by
// (chunk, struct_id, artifact_id). It never owns pointers into the
// compiled arena — only the key tuple plus a copy of the payload.
type SpatialIndex[P any] struct {
	entries      []SpatialEntry[P]
	capacity     int
	ProbeRefused int
}

// Init sets the index's capacity and clears its contents.
func (idx *SpatialIndex[P]) Init(capacity int) {
	idx.entries = make([]SpatialEntry[P], 0, capacity)
	idx.capacity = capacity
	idx.ProbeRefused = 0
}

// Reserve grows capacity to at least capacity, never shrinking it.
func (idx *SpatialIndex[P]) Reserve(capacity int) {
	if capacity <= idx.capacity {
		return
	}
	grown := make([]SpatialEntry[P], len(idx.entries), capacity)
	copy(grown, idx.entries)
	idx.entries = grown
	idx.capacity = capacity
}

// Clear empties the index without changing its capacity.
func (idx *SpatialIndex[P]) Clear() {
	idx.entries = idx.entries[:0]
	idx.ProbeRefused = 0
}

// RemoveStruct removes every entry belonging to structID, returning the
// count removed. Used exactly once per rebuild before the stage reinserts.
func (idx *SpatialIndex[P]) RemoveStruct(structID ID) int {
	out := idx.entries[:0]
	removed := 0
	for _, e := range idx.entries {
		if e.StructID == structID {
			removed++
			continue
		}
		out = append(out, e)
	}
	idx.entries = out
	return removed
}

// Insert adds entry at its canonical sorted position. If the index is at
// capacity, the insert is refused (ProbeRefused increments, ok is false) —
// the caller treats this as a soft partial-success, never as a hard error.
func (idx *SpatialIndex[P]) Insert(entry SpatialEntry[P]) (ok bool) {
	if len(idx.entries) >= idx.capacity {
		idx.ProbeRefused++
		return false
	}
	lo, hi := 0, len(idx.entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if lessSpatialEntry(entry, idx.entries[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	idx.entries = append(idx.entries, SpatialEntry[P]{})
	copy(idx.entries[lo+1:], idx.entries[lo:len(idx.entries)-1])
	idx.entries[lo] = entry
	return true
}

// Entries returns the index contents in canonical order. Callers must treat
// the slice as read-only.
func (idx *SpatialIndex[P]) Entries() []SpatialEntry[P] { return idx.entries }

// Len returns the current entry count.
func (idx *SpatialIndex[P]) Len() int { return len(idx.entries) }
