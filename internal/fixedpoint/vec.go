package fixedpoint

// Vec3 is a fixed-point 3D vector / point.
type Vec3 struct {
	X, Y, Z Q
}

// AddVec returns a+b componentwise.
func AddVec(a, b Vec3) Vec3 {
	return Vec3{Add(a.X, b.X), Add(a.Y, b.Y), Add(a.Z, b.Z)}
}

// SubVec returns a-b componentwise.
func SubVec(a, b Vec3) Vec3 {
	return Vec3{Sub(a.X, b.X), Sub(a.Y, b.Y), Sub(a.Z, b.Z)}
}

// ScaleVec returns v scaled by s.
func ScaleVec(v Vec3, s Q) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: Sub(Mul(a.Y, b.Z), Mul(a.Z, b.Y)),
		Y: Sub(Mul(a.Z, b.X), Mul(a.X, b.Z)),
		Z: Sub(Mul(a.X, b.Y), Mul(a.Y, b.X)),
	}
}

// Quat is a fixed-point unit quaternion (x,y,z,w).
type Quat struct {
	X, Y, Z, W Q
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat {
	return Quat{0, 0, 0, One}
}

// MulQuat returns the Hamilton product a*b.
func MulQuat(a, b Quat) Quat {
	return Quat{
		X: Add(Add(Mul(a.W, b.X), Mul(a.X, b.W)), Sub(Mul(a.Y, b.Z), Mul(a.Z, b.Y))),
		Y: Add(Add(Mul(a.W, b.Y), Mul(a.Y, b.W)), Sub(Mul(a.Z, b.X), Mul(a.X, b.Z))),
		Z: Add(Add(Mul(a.W, b.Z), Mul(a.Z, b.W)), Sub(Mul(a.X, b.Y), Mul(a.Y, b.X))),
		W: Sub(Sub(Mul(a.W, b.W), Mul(a.X, b.X)), Add(Mul(a.Y, b.Y), Mul(a.Z, b.Z))),
	}
}

// RotateVec rotates v by unit quaternion q: v' = v + 2*w*(qv x v) + 2*(qv x (qv x v)),
// the standard quaternion-sandwich expansion that avoids building a 3x3 matrix.
func RotateVec(q Quat, v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := ScaleVec(Cross(qv, v), FromInt(2))
	return AddVec(AddVec(v, ScaleVec(t, q.W)), Cross(qv, t))
}

// Pose is a rigid transform: position plus unit-quaternion rotation.
type Pose struct {
	Pos Vec3
	Rot Quat
}

// IdentityPose returns the identity transform.
func IdentityPose() Pose {
	return Pose{Pos: Vec3{}, Rot: IdentityQuat()}
}

// Compose returns the pose equivalent to applying b in a's frame, i.e. the
// contract's compose(Pose, Pose) -> Pose: rotate/translate b by a.
func Compose(a, b Pose) Pose {
	return Pose{
		Pos: AddVec(a.Pos, RotateVec(a.Rot, b.Pos)),
		Rot: MulQuat(a.Rot, b.Rot),
	}
}

// TransformPoint applies pose p to local point v, returning the world point.
func TransformPoint(p Pose, v Vec3) Vec3 {
	return AddVec(p.Pos, RotateVec(p.Rot, v))
}
