package structcompile

import (
	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
)

// rebuildOccupancy overwrites sc.OccRegions with one region per volume
// referenced by inst, then removes and reinserts struct's entries in the
// occupancy spatial index. Returns +1 if any spatial insert was refused for
// capacity (soft partial-success), 0 on full success.
func rebuildOccupancy(
	sc *StructCompiled,
	inst structmodel.Instance,
	footprints []structmodel.Footprint,
	volumes []structmodel.Volume,
	frames []structmodel.WorldFrame,
	resolver structmodel.AnchorResolver,
	tick uint64,
	chunkSize fixedpoint.Q,
	spatial *SpatialIndex[fixedpoint.AABB],
) (int, error) {
	worldPose, err := inst.WorldPose(resolver, frames, tick)
	if err != nil {
		return 0, newErr(ErrCodeFrameMissing, "occupancy: %v", err)
	}

	var regions []OccRegion
	for _, volID := range inst.VolumeIDs {
		vol, ok := structmodel.FindByID(volumes, volID)
		if !ok {
			return 0, newErr(ErrCodeVolumeMissing, "occupancy: volume %d missing for struct %d", volID, sc.StructID)
		}
		localBox, err := structmodel.ResolveVolumeLocalAABB(volID, footprints, volumes)
		if err != nil {
			return 0, mapVolumeErr(err)
		}
		worldBox := fixedpoint.TransformAABB(worldPose, localBox)
		region := OccRegion{
			ID:        hashOccRegionID(sc.StructID, vol.ID, vol.IsVoid),
			StructID:  sc.StructID,
			VolumeID:  vol.ID,
			IsVoid:    vol.IsVoid,
			BBoxWorld: worldBox,
		}
		regions = binaryInsert(regions, region, func(a, b OccRegion) bool { return a.VolumeID < b.VolumeID })
	}
	sc.OccRegions = regions

	spatial.RemoveStruct(sc.StructID)
	partial := false
	for _, region := range regions {
		lo, hi := fixedpoint.ChunkRangeForAABB(region.BBoxWorld, chunkSize)
		for cx := lo.CX; cx <= hi.CX; cx++ {
			for cy := lo.CY; cy <= hi.CY; cy++ {
				for cz := lo.CZ; cz <= hi.CZ; cz++ {
					ok := spatial.Insert(SpatialEntry[fixedpoint.AABB]{
						Chunk:      fixedpoint.ChunkCoord{CX: cx, CY: cy, CZ: cz},
						StructID:   sc.StructID,
						ArtifactID: region.ID,
						Payload:    region.BBoxWorld,
					})
					if !ok {
						partial = true
					}
				}
			}
		}
	}
	if partial {
		return 1, nil
	}
	return 0, nil
}
