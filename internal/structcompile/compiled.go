package structcompile

import (
	"sort"

	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
)

// OccRegion is one per-volume world-space occupancy region, sorted within a
// struct by VolumeID.
type OccRegion struct {
	ID        ID
	StructID  ID
	VolumeID  ID
	IsVoid    bool
	BBoxWorld fixedpoint.AABB
}

// RoomNode is one compiled room per referenced enclosure, sorted by ID.
type RoomNode struct {
	ID          ID
	StructID    ID
	EnclosureID ID
	BBoxWorld   fixedpoint.AABB
}

// RoomEdge is one aperture edge between two rooms (RoomB == 0 means
// exterior), canonicalized so RoomA <= RoomB and sorted by
// (RoomA, RoomB, Kind, ID).
type RoomEdge struct {
	ID       ID
	StructID ID
	RoomA    ID
	RoomB    ID
	Kind     structmodel.ApertureKind
}

// CompiledSurface is one parameterized volume-face frame, sorted by ID.
type CompiledSurface struct {
	ID          ID
	StructID    ID
	TemplateID  ID
	VolumeID    ID
	EnclosureID ID
	FaceKind    structmodel.FaceKind
	FaceIndex   uint32
	OriginWorld fixedpoint.Vec3
	UVecWorld   fixedpoint.Vec3
	VVecWorld   fixedpoint.Vec3
	ULen        fixedpoint.Q
	VLen        fixedpoint.Q
	BBoxWorld   fixedpoint.AABB
}

// CompiledSocket is one socket bound to a compiled surface, sorted by ID.
type CompiledSocket struct {
	ID        ID
	StructID  ID
	SurfaceID ID
	U, V      fixedpoint.Q
	Offset    fixedpoint.Q
}

// SupportNode is one of the two vertical support endpoints per solid region,
// sorted by ID.
type SupportNode struct {
	ID       ID
	StructID ID
	RegionID ID
	Pos      fixedpoint.Vec3
	Capacity fixedpoint.Q
}

// SupportEdge connects the two SupportNodes of one solid region, sorted by ID.
type SupportEdge struct {
	ID       ID
	StructID ID
	RegionID ID
	A, B     ID
	Capacity fixedpoint.Q
}

// CarrierArtifact is one compiled connective artifact, sorted by ID.
type CarrierArtifact struct {
	ID        ID
	StructID  ID
	IntentID  ID
	Kind      structmodel.CarrierKind
	A0World   fixedpoint.Pose
	A1World   fixedpoint.Pose
	Width     fixedpoint.Q
	Height    fixedpoint.Q
	Depth     fixedpoint.Q
	BBoxWorld fixedpoint.AABB
}

// StructCompiled is the arena slot holding every derived cache for a single
// authored struct (instance). Each slice is kept in its documented
// strictly-ascending order; stages overwrite the slice wholesale, never
// diff-patch.
type StructCompiled struct {
	StructID ID

	OccRegions       []OccRegion
	RoomNodes        []RoomNode
	RoomEdges        []RoomEdge
	Surfaces         []CompiledSurface
	Sockets          []CompiledSocket
	SupportNodes     []SupportNode
	SupportEdges     []SupportEdge
	CarrierArtifacts []CarrierArtifact
}

// CompiledTable is the per-struct compiled arena, a single slice held in
// strictly-ascending StructID order (never a map: order must be
// reproducible and inspectable).
type CompiledTable struct {
	slots []*StructCompiled
}

// Sync ensures a slot exists for every id in instanceIDs. It does not remove
// slots for ids absent from instanceIDs — struct removal is explicit, via
// Remove, so a host can still read compiled output for a just-deleted struct
// until it chooses to reclaim the slot.
func (t *CompiledTable) Sync(instanceIDs []ID) error {
	for _, id := range instanceIDs {
		if id == 0 {
			return newErr(ErrCodeInvalidStructID, "sync: struct id 0 is invalid")
		}
		t.GetOrCreate(id)
	}
	return nil
}

func (t *CompiledTable) indexOf(structID ID) (int, bool) {
	idx := sort.Search(len(t.slots), func(i int) bool { return t.slots[i].StructID >= structID })
	if idx < len(t.slots) && t.slots[idx].StructID == structID {
		return idx, true
	}
	return idx, false
}

// Get returns the compiled slot for structID, if present.
func (t *CompiledTable) Get(structID ID) (*StructCompiled, bool) {
	idx, ok := t.indexOf(structID)
	if !ok {
		return nil, false
	}
	return t.slots[idx], true
}

// GetOrCreate returns the compiled slot for structID, inserting an empty one
// at the correct sorted position if absent.
func (t *CompiledTable) GetOrCreate(structID ID) *StructCompiled {
	idx, ok := t.indexOf(structID)
	if ok {
		return t.slots[idx]
	}
	sc := &StructCompiled{StructID: structID}
	t.slots = append(t.slots, nil)
	copy(t.slots[idx+1:], t.slots[idx:len(t.slots)-1])
	t.slots[idx] = sc
	return sc
}

// Remove deletes the slot for structID, if present.
func (t *CompiledTable) Remove(structID ID) {
	idx, ok := t.indexOf(structID)
	if !ok {
		return
	}
	t.slots = append(t.slots[:idx], t.slots[idx+1:]...)
}

// All returns the compiled slots in ascending StructID order.
func (t *CompiledTable) All() []*StructCompiled { return t.slots }

// binaryInsert inserts item into the already-sorted items according to less,
// landing a new item after any existing entries with an equal key. If the
// entry immediately before that position has an equal key (neither item
// orders before the other), item overwrites it in place instead of growing
// the slice — last-write-wins at the sorted slot, so compiled IDs never
// collide into duplicate entries.
// TODO: replace the overwrite with a reported collision once callers can
// surface it as a compile error instead of silently keeping the latest.
func binaryInsert[T any](items []T, item T, less func(a, b T) bool) []T {
	lo, hi := 0, len(items)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(item, items[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo > 0 && !less(items[lo-1], item) && !less(item, items[lo-1]) {
		items[lo-1] = item
		return items
	}
	items = append(items, item)
	copy(items[lo+1:], items[lo:len(items)-1])
	items[lo] = item
	return items
}
