package structcompile

import (
	"sort"

	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
)

func findOccRegionByVolume(regions []OccRegion, volumeID ID) (OccRegion, bool) {
	idx := sort.Search(len(regions), func(i int) bool { return regions[i].VolumeID >= volumeID })
	if idx < len(regions) && regions[idx].VolumeID == volumeID {
		return regions[idx], true
	}
	return OccRegion{}, false
}

// rebuildEnclosureGraph overwrites sc.RoomNodes and sc.RoomEdges from the
// occupancy regions already compiled into sc (occupancy is guaranteed to run
// first for the same struct: WorkOccupancy < WorkEnclosure in TypeID order).
func rebuildEnclosureGraph(
	sc *StructCompiled,
	inst structmodel.Instance,
	enclosures []structmodel.Enclosure,
) error {
	var nodes []RoomNode
	roomIDOf := make(map[ID]ID, len(inst.EnclosureIDs))

	for _, encID := range inst.EnclosureIDs {
		enc, ok := structmodel.FindByID(enclosures, encID)
		if !ok {
			return newErr(ErrCodeEnclosureMissing, "enclosure_graph: enclosure %d missing for struct %d", encID, sc.StructID)
		}
		var bbox fixedpoint.AABB
		hasAny := false
		for _, volID := range enc.VolumeIDs {
			region, ok := findOccRegionByVolume(sc.OccRegions, volID)
			if !ok {
				return newErr(ErrCodeVolumeMissing, "enclosure_graph: volume %d not occupied for struct %d", volID, sc.StructID)
			}
			if !hasAny {
				bbox = region.BBoxWorld
				hasAny = true
			} else {
				bbox = fixedpoint.UnionAABB(bbox, region.BBoxWorld)
			}
		}
		roomID := hashRoomNodeID(sc.StructID, enc.ID)
		roomIDOf[enc.ID] = roomID
		node := RoomNode{ID: roomID, StructID: sc.StructID, EnclosureID: enc.ID, BBoxWorld: bbox}
		nodes = binaryInsert(nodes, node, func(a, b RoomNode) bool { return a.ID < b.ID })
	}

	var edges []RoomEdge
	for _, encID := range inst.EnclosureIDs {
		enc, ok := structmodel.FindByID(enclosures, encID)
		if !ok {
			continue // already reported above
		}
		srcRoom := roomIDOf[enc.ID]
		for _, ap := range enc.Apertures {
			var dstRoom ID
			referenced := ap.ToEnclosureID != 0 && containsID(inst.EnclosureIDs, ap.ToEnclosureID)
			if referenced {
				dstRoom = roomIDOf[ap.ToEnclosureID]
			}
			edgeID := hashRoomEdgeID(sc.StructID, enc.ID, ap.ApertureID, ap.ToEnclosureID, uint64(ap.Kind))
			roomA, roomB := srcRoom, dstRoom
			if roomA > roomB {
				roomA, roomB = roomB, roomA
			}
			edge := RoomEdge{ID: edgeID, StructID: sc.StructID, RoomA: roomA, RoomB: roomB, Kind: ap.Kind}
			edges = binaryInsert(edges, edge, func(a, b RoomEdge) bool { return lessRoomEdge(a, b) })
		}
	}

	sc.RoomNodes = nodes
	sc.RoomEdges = edges
	return nil
}

func lessRoomEdge(a, b RoomEdge) bool {
	if a.RoomA != b.RoomA {
		return a.RoomA < b.RoomA
	}
	if a.RoomB != b.RoomB {
		return a.RoomB < b.RoomB
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.ID < b.ID
}

func containsID(ids []ID, target ID) bool {
	idx := sort.Search(len(ids), func(i int) bool { return ids[i] >= target })
	return idx < len(ids) && ids[idx] == target
}
