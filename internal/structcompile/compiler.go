package structcompile

import (
	"sort"

	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
	"github.com/arxos/structcompile/pkg/logger"
)

// AuthoringInput aggregates the immutable authoring set the compiler reads
// from during Sync/EnqueueDirty/Process. The engine never mutates any of
// these slices or the records they hold.
type AuthoringInput struct {
	Footprints       []structmodel.Footprint
	Volumes          []structmodel.Volume
	Enclosures       []structmodel.Enclosure
	SurfaceTemplates []structmodel.SurfaceTemplate
	Sockets          []structmodel.Socket
	CarrierIntents   []structmodel.CarrierIntent
	Instances        []structmodel.Instance
	Frames           []structmodel.WorldFrame
}

// Compiler is the deterministic structure compilation engine: the dirty
// tracker, the work queue, the per-struct compiled arena and the five
// spatial indices, driven exclusively through the methods below.
type Compiler struct {
	Compiled CompiledTable
	Dirty    DirtyTracker
	Queue    WorkQueue

	OccupancySpatial SpatialIndex[fixedpoint.AABB]
	RoomSpatial      SpatialIndex[fixedpoint.AABB]
	SurfaceSpatial   SpatialIndex[fixedpoint.AABB]
	SupportSpatial   SpatialIndex[fixedpoint.Vec3]
	CarrierSpatial   SpatialIndex[fixedpoint.AABB]

	Resolver  structmodel.AnchorResolver
	chunkSize fixedpoint.Q

	Log *logger.Logger
}

// NewCompiler constructs a Compiler with the default anchor resolver and a
// zero chunk size; callers must call SetParams before the first Process.
func NewCompiler() *Compiler {
	return &Compiler{Resolver: structmodel.DefaultAnchorResolver{}, Log: logger.NewLogger()}
}

// Reserve pre-grows the work queue and every spatial index to spatialCap.
func (c *Compiler) Reserve(workQueueCap, spatialCap int) {
	c.Queue.Reserve(workQueueCap)
	if c.OccupancySpatial.capacity == 0 {
		c.OccupancySpatial.Init(spatialCap)
		c.RoomSpatial.Init(spatialCap)
		c.SurfaceSpatial.Init(spatialCap)
		c.SupportSpatial.Init(spatialCap)
		c.CarrierSpatial.Init(spatialCap)
		return
	}
	c.OccupancySpatial.Reserve(spatialCap)
	c.RoomSpatial.Reserve(spatialCap)
	c.SurfaceSpatial.Reserve(spatialCap)
	c.SupportSpatial.Reserve(spatialCap)
	c.CarrierSpatial.Reserve(spatialCap)
}

// SetParams sets the chunk grid's edge length. chunkSize must be > 0.
func (c *Compiler) SetParams(chunkSize fixedpoint.Q) error {
	if chunkSize <= 0 {
		return newErr(ErrCodeInvalidChunkSize, "set_params: chunk_size must be > 0, got %d", chunkSize)
	}
	c.chunkSize = chunkSize
	return nil
}

// Sync ensures every authored instance has a compiled-arena slot.
func (c *Compiler) Sync(input AuthoringInput) error {
	ids := make([]ID, len(input.Instances))
	for i, inst := range input.Instances {
		ids[i] = inst.ID
	}
	return c.Compiled.Sync(ids)
}

// MarkDirty OR-merges flags into structID's dirty record (see DirtyTracker.Mark).
func (c *Compiler) MarkDirty(structID ID, flags DirtyFlags) { c.Dirty.Mark(structID, flags) }

// MarkDirtyChunks marks structID dirty and merges the given chunk AABB.
func (c *Compiler) MarkDirtyChunks(structID ID, flags DirtyFlags, lo, hi fixedpoint.ChunkCoord) {
	c.Dirty.MarkChunks(structID, flags, lo, hi)
}

func (c *Compiler) pushWork(structID ID, wt WorkType, tick uint64) {
	c.Queue.Push(WorkItem{
		Key:         OrderKey{Phase: PhaseTopology, EntityID: structID, TypeID: uint64(wt)},
		WorkTypeID:  wt,
		CostUnits:   costUnits[wt],
		EnqueueTick: tick,
	})
}

// EnqueueDirty turns every pending dirty record into one WorkItem per
// implicated stage, then clears the dirty flags that were enqueued.
func (c *Compiler) EnqueueDirty(tick uint64) {
	records := append([]DirtyRecord(nil), c.Dirty.All()...)
	for _, rec := range records {
		if rec.Flags&DirtyVolume != 0 {
			c.pushWork(rec.StructID, WorkOccupancy, tick)
		}
		if rec.Flags&DirtyEnclosure != 0 {
			c.pushWork(rec.StructID, WorkEnclosure, tick)
		}
		if rec.Flags&DirtySurface != 0 {
			c.pushWork(rec.StructID, WorkSurface, tick)
		}
		if rec.Flags&DirtySupport != 0 {
			c.pushWork(rec.StructID, WorkSupport, tick)
		}
		if rec.Flags&DirtyCarrier != 0 {
			c.pushWork(rec.StructID, WorkCarrier, tick)
		}
		c.Dirty.ClearFlags(rec.StructID, rec.Flags)
	}
}

// PendingWork returns the current work queue depth.
func (c *Compiler) PendingWork() int { return c.Queue.Len() }

// Process pops work items while their cost fits the remaining budget,
// dispatching each to its stage rebuild function, until the queue drains or
// the next head item exceeds the remaining budget (left at the head,
// carried over to the next call). A hard stage error aborts immediately;
// the failing item has already been popped and is not retried automatically.
// An arena slot is always created for the item's struct, whether or not the
// struct still has an authoring instance; a struct deleted between mark and
// process gets an empty slot and its work item is otherwise silently skipped.
func (c *Compiler) Process(input AuthoringInput, tick uint64, budgetUnits uint32) (int, error) {
	processed := 0
	remaining := budgetUnits
	for {
		item, ok := c.Queue.PeekNext()
		if !ok {
			break
		}
		if item.CostUnits > remaining {
			break
		}
		item, _ = c.Queue.PopNext()
		remaining -= item.CostUnits
		processed++

		structID := item.Key.EntityID
		sc := c.Compiled.GetOrCreate(structID)
		inst, found := structmodel.FindByID(input.Instances, structID)
		if !found {
			continue
		}

		switch WorkType(item.Key.TypeID) {
		case WorkOccupancy:
			if _, err := rebuildOccupancy(sc, inst, input.Footprints, input.Volumes, input.Frames, c.Resolver, tick, c.chunkSize, &c.OccupancySpatial); err != nil {
				c.Log.Errorf("struct %d occupancy rebuild: %v", structID, err)
				return processed, err
			}
		case WorkEnclosure:
			if err := rebuildEnclosureGraph(sc, inst, input.Enclosures); err != nil {
				c.Log.Errorf("struct %d enclosure rebuild: %v", structID, err)
				return processed, err
			}
			c.reindexRooms(sc)
		case WorkSurface:
			if err := rebuildSurfaceGraph(sc, inst, input.Footprints, input.Volumes, input.SurfaceTemplates, input.Sockets, input.Frames, c.Resolver, tick); err != nil {
				c.Log.Errorf("struct %d surface rebuild: %v", structID, err)
				return processed, err
			}
			c.reindexSurfaces(sc)
		case WorkSupport:
			rebuildSupportGraph(sc)
			c.reindexSupport(sc)
		case WorkCarrier:
			if err := rebuildCarriers(sc, inst, input.CarrierIntents, input.Frames, c.Resolver, tick); err != nil {
				c.Log.Errorf("struct %d carrier rebuild: %v", structID, err)
				return processed, err
			}
			c.reindexCarriers(sc)
		}
	}
	c.Log.Debugf("processed %d work item(s), %d remaining in queue", processed, c.Queue.Len())
	return processed, nil
}

func (c *Compiler) insertAABBChunks(idx *SpatialIndex[fixedpoint.AABB], structID, artifactID ID, box fixedpoint.AABB) {
	lo, hi := fixedpoint.ChunkRangeForAABB(box, c.chunkSize)
	for cx := lo.CX; cx <= hi.CX; cx++ {
		for cy := lo.CY; cy <= hi.CY; cy++ {
			for cz := lo.CZ; cz <= hi.CZ; cz++ {
				idx.Insert(SpatialEntry[fixedpoint.AABB]{
					Chunk:      fixedpoint.ChunkCoord{CX: cx, CY: cy, CZ: cz},
					StructID:   structID,
					ArtifactID: artifactID,
					Payload:    box,
				})
			}
		}
	}
}

func (c *Compiler) reindexRooms(sc *StructCompiled) {
	c.RoomSpatial.RemoveStruct(sc.StructID)
	for _, n := range sc.RoomNodes {
		c.insertAABBChunks(&c.RoomSpatial, sc.StructID, n.ID, n.BBoxWorld)
	}
}

func (c *Compiler) reindexSurfaces(sc *StructCompiled) {
	c.SurfaceSpatial.RemoveStruct(sc.StructID)
	for _, s := range sc.Surfaces {
		c.insertAABBChunks(&c.SurfaceSpatial, sc.StructID, s.ID, s.BBoxWorld)
	}
}

func (c *Compiler) reindexCarriers(sc *StructCompiled) {
	c.CarrierSpatial.RemoveStruct(sc.StructID)
	for _, a := range sc.CarrierArtifacts {
		c.insertAABBChunks(&c.CarrierSpatial, sc.StructID, a.ID, a.BBoxWorld)
	}
}

func (c *Compiler) reindexSupport(sc *StructCompiled) {
	c.SupportSpatial.RemoveStruct(sc.StructID)
	for _, n := range sc.SupportNodes {
		chunk := fixedpoint.ChunkOf(n.Pos, c.chunkSize)
		c.SupportSpatial.Insert(SpatialEntry[fixedpoint.Vec3]{
			Chunk:      chunk,
			StructID:   sc.StructID,
			ArtifactID: n.ID,
			Payload:    n.Pos,
		})
	}
}

// CheckInvariants asserts the documented ordering invariants, returning 0
// if all hold or the first violated invariant's negative code. The compiled
// table is checked for strictly ascending StructID; the per-struct slices and
// the spatial indices are checked only for non-decreasing order, so adjacent
// entries with equal keys are not reported.
func (c *Compiler) CheckInvariants() int {
	slots := c.Compiled.All()
	for i := 1; i < len(slots); i++ {
		if slots[i-1].StructID >= slots[i].StructID {
			return invCompiledTableOrder
		}
	}
	for _, sc := range slots {
		if !sort.SliceIsSorted(sc.OccRegions, func(i, j int) bool { return sc.OccRegions[i].VolumeID < sc.OccRegions[j].VolumeID }) {
			return invOccRegionOrder
		}
		if !sort.SliceIsSorted(sc.RoomNodes, func(i, j int) bool { return sc.RoomNodes[i].ID < sc.RoomNodes[j].ID }) {
			return invRoomNodeOrder
		}
		if !sort.SliceIsSorted(sc.RoomEdges, func(i, j int) bool { return lessRoomEdge(sc.RoomEdges[i], sc.RoomEdges[j]) }) {
			return invRoomEdgeOrder
		}
		if !sort.SliceIsSorted(sc.Surfaces, func(i, j int) bool { return sc.Surfaces[i].ID < sc.Surfaces[j].ID }) {
			return invSurfaceOrder
		}
		if !sort.SliceIsSorted(sc.Sockets, func(i, j int) bool { return sc.Sockets[i].ID < sc.Sockets[j].ID }) {
			return invSocketOrder
		}
		if !sort.SliceIsSorted(sc.SupportNodes, func(i, j int) bool { return sc.SupportNodes[i].ID < sc.SupportNodes[j].ID }) {
			return invSupportNodeOrder
		}
		if !sort.SliceIsSorted(sc.SupportEdges, func(i, j int) bool { return sc.SupportEdges[i].ID < sc.SupportEdges[j].ID }) {
			return invSupportEdgeOrder
		}
		if !sort.SliceIsSorted(sc.CarrierArtifacts, func(i, j int) bool { return sc.CarrierArtifacts[i].ID < sc.CarrierArtifacts[j].ID }) {
			return invCarrierOrder
		}
	}

	if !sort.SliceIsSorted(c.OccupancySpatial.Entries(), func(i, j int) bool {
		return lessSpatialEntry(c.OccupancySpatial.Entries()[i], c.OccupancySpatial.Entries()[j])
	}) {
		return invSpatialOccOrder
	}
	if !sort.SliceIsSorted(c.RoomSpatial.Entries(), func(i, j int) bool {
		return lessSpatialEntry(c.RoomSpatial.Entries()[i], c.RoomSpatial.Entries()[j])
	}) {
		return invSpatialRoomOrder
	}
	if !sort.SliceIsSorted(c.SurfaceSpatial.Entries(), func(i, j int) bool {
		return lessSpatialEntry(c.SurfaceSpatial.Entries()[i], c.SurfaceSpatial.Entries()[j])
	}) {
		return invSpatialSurfOrder
	}
	if !sort.SliceIsSorted(c.SupportSpatial.Entries(), func(i, j int) bool {
		return lessSpatialEntry(c.SupportSpatial.Entries()[i], c.SupportSpatial.Entries()[j])
	}) {
		return invSpatialSupOrder
	}
	if !sort.SliceIsSorted(c.CarrierSpatial.Entries(), func(i, j int) bool {
		return lessSpatialEntry(c.CarrierSpatial.Entries()[i], c.CarrierSpatial.Entries()[j])
	}) {
		return invSpatialCarOrder
	}
	return 0
}
