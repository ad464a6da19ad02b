package fixedpoint

// AABB is an axis-aligned bounding box in fixed-point world space.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from two corner points, normalizing min/max per axis.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{minQ(a.X, b.X), minQ(a.Y, b.Y), minQ(a.Z, b.Z)},
		Max: Vec3{maxQ(a.X, b.X), maxQ(a.Y, b.Y), maxQ(a.Z, b.Z)},
	}
}

func minQ(a, b Q) Q {
	if a < b {
		return a
	}
	return b
}

func maxQ(a, b Q) Q {
	if a > b {
		return a
	}
	return b
}

// UnionAABB returns the smallest AABB containing both a and b.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		Min: Vec3{minQ(a.Min.X, b.Min.X), minQ(a.Min.Y, b.Min.Y), minQ(a.Min.Z, b.Min.Z)},
		Max: Vec3{maxQ(a.Max.X, b.Max.X), maxQ(a.Max.Y, b.Max.Y), maxQ(a.Max.Z, b.Max.Z)},
	}
}

// Corners returns the 8 corners of the box.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// TransformAABB transforms every corner of b by pose p and returns the
// componentwise min/max of the transformed corners (a conservative bound,
// never tighter than the true rotated box).
func TransformAABB(p Pose, b AABB) AABB {
	corners := b.Corners()
	out := AABB{Min: TransformPoint(p, corners[0]), Max: TransformPoint(p, corners[0])}
	for i := 1; i < len(corners); i++ {
		w := TransformPoint(p, corners[i])
		out.Min = Vec3{minQ(out.Min.X, w.X), minQ(out.Min.Y, w.Y), minQ(out.Min.Z, w.Z)}
		out.Max = Vec3{maxQ(out.Max.X, w.X), maxQ(out.Max.Y, w.Y), maxQ(out.Max.Z, w.Z)}
	}
	return out
}

// Expand grows b by half on X/Y and by zHalf on Z, returning the new box.
func (b AABB) Expand(half, zHalf Q) AABB {
	return AABB{
		Min: Vec3{Sub(b.Min.X, half), Sub(b.Min.Y, half), Sub(b.Min.Z, zHalf)},
		Max: Vec3{Add(b.Max.X, half), Add(b.Max.Y, half), Add(b.Max.Z, zHalf)},
	}
}
