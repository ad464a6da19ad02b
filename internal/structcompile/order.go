package structcompile

// Phase identifies the scheduling phase a work item belongs to. The engine
// defines exactly one today; the field exists so OrderKey's tuple shape
// matches the canonical ordering contract even as future phases are added.
type Phase uint16

const PhaseTopology Phase = 0

// WorkType identifies which stage a WorkItem dispatches to.
type WorkType uint16

const (
	WorkOccupancy WorkType = iota
	WorkEnclosure
	WorkSurface
	WorkSupport
	WorkCarrier
)

// costUnits is the fixed per-stage cost, part of the format contract: a host
// that reserves a 3-unit budget processes Enclosure but not Surface.
var costUnits = map[WorkType]uint32{
	WorkOccupancy: 5,
	WorkEnclosure: 3,
	WorkSurface:   4,
	WorkSupport:   2,
	WorkCarrier:   4,
}

// OrderKey is the fixed-width tuple the work queue sorts on, lexicographic
// over (Phase, DomainID, ChunkID, EntityID, ComponentID, TypeID, Seq).
// The pipeline driver only ever populates Phase, EntityID and TypeID; the
// remaining fields exist for components keyed more finely than "one item
// per struct per stage".
type OrderKey struct {
	Phase       Phase
	DomainID    uint64
	ChunkID     uint64
	EntityID    uint64
	ComponentID uint64
	TypeID      uint64
	Seq         uint32
}

// Less implements the canonical lexicographic order over the tuple.
func (a OrderKey) Less(b OrderKey) bool {
	if a.Phase != b.Phase {
		return a.Phase < b.Phase
	}
	if a.DomainID != b.DomainID {
		return a.DomainID < b.DomainID
	}
	if a.ChunkID != b.ChunkID {
		return a.ChunkID < b.ChunkID
	}
	if a.EntityID != b.EntityID {
		return a.EntityID < b.EntityID
	}
	if a.ComponentID != b.ComponentID {
		return a.ComponentID < b.ComponentID
	}
	if a.TypeID != b.TypeID {
		return a.TypeID < b.TypeID
	}
	return a.Seq < b.Seq
}
