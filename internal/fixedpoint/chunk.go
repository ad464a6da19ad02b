package fixedpoint

// ChunkCoord is an integer chunk-grid coordinate, the key every spatial
// index is canonically sorted by.
type ChunkCoord struct {
	CX, CY, CZ int32
}

// ChunkOf returns the chunk coordinate containing world position p, per the
// chunk grid contract: componentwise floor(pos/chunkSize), clamped to int32.
// chunkSize must be > 0 (a host precondition checked by the caller).
func ChunkOf(p Vec3, chunkSize Q) ChunkCoord {
	return ChunkCoord{
		CX: ClampToInt32(FloorDiv(int64(p.X), int64(chunkSize))),
		CY: ClampToInt32(FloorDiv(int64(p.Y), int64(chunkSize))),
		CZ: ClampToInt32(FloorDiv(int64(p.Z), int64(chunkSize))),
	}
}

// ChunkRangeForAABB returns the inclusive range of chunk coordinates covered
// by box, by flooring both corners independently; callers iterate the
// inclusive cuboid between lo and hi.
func ChunkRangeForAABB(box AABB, chunkSize Q) (lo, hi ChunkCoord) {
	lo = ChunkOf(box.Min, chunkSize)
	hi = ChunkOf(box.Max, chunkSize)
	return lo, hi
}

// CmpChunkCoord gives the total lexicographic order (cx, cy, cz) every
// spatial index is sorted by.
func CmpChunkCoord(a, b ChunkCoord) int {
	if c := CmpI32(a.CX, b.CX); c != 0 {
		return c
	}
	if c := CmpI32(a.CY, b.CY); c != 0 {
		return c
	}
	return CmpI32(a.CZ, b.CZ)
}

// CmpI32 is the total order over int32 used by every canonical comparator.
func CmpI32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CmpU64 is the total order over uint64 used by every canonical comparator.
func CmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
