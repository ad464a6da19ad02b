package fixedpoint

import "testing"

func TestFloorDivNegative(t *testing.T) {
	cases := []struct{ a, d, want int64 }{
		{-1, 2, -1},
		{1, 2, 0},
		{-5, 2, -3},
		{5, 2, 2},
		{-4, 2, -2},
		{0, 7, 0},
	}
	for _, c := range cases {
		got := FloorDiv(c.a, c.d)
		if got != c.want {
			t.Errorf("FloorDiv(%d,%d) = %d, want %d", c.a, c.d, got, c.want)
		}
	}
}

func TestMulRoundToNearestEven(t *testing.T) {
	// 0.5 * 0.5 = 0.25, exact.
	half := One / 2
	got := Mul(half, half)
	want := One / 4
	if got != want {
		t.Errorf("Mul(half,half) = %d, want %d", got, want)
	}

	// One * One == One.
	if Mul(One, One) != One {
		t.Errorf("Mul(One,One) != One")
	}

	// Negative operands.
	if Mul(-One, One) != -One {
		t.Errorf("Mul(-One,One) != -One")
	}
	if Mul(-One, -One) != One {
		t.Errorf("Mul(-One,-One) != One")
	}

	// Ties: a raw product exactly halfway between two Q steps rounds to the
	// even neighbour. 1*0.5 raw units = 0.5 -> 0; 3*0.5 = 1.5 -> 2.
	if got := Mul(1, half); got != 0 {
		t.Errorf("Mul(1,half) = %d, want 0", got)
	}
	if got := Mul(3, half); got != 2 {
		t.Errorf("Mul(3,half) = %d, want 2", got)
	}
	if got := Mul(-3, half); got != -2 {
		t.Errorf("Mul(-3,half) = %d, want -2", got)
	}
}

func TestClampToInt32(t *testing.T) {
	if ClampToInt32(1<<40) != int32(1<<31-1) {
		t.Errorf("ClampToInt32 did not saturate at max")
	}
	if ClampToInt32(-(1 << 40)) != int32(-(1 << 31)) {
		t.Errorf("ClampToInt32 did not saturate at min")
	}
	if ClampToInt32(42) != 42 {
		t.Errorf("ClampToInt32(42) != 42")
	}
}

func TestChunkOfNegative(t *testing.T) {
	chunkSize := FromInt(16)
	c := ChunkOf(Vec3{X: -FromInt(1) / 2}, chunkSize)
	if c.CX != -1 {
		t.Errorf("ChunkOf(-0.5, 16) CX = %d, want -1", c.CX)
	}
}

func TestMix64Deterministic(t *testing.T) {
	a := Mix64(12345)
	b := Mix64(12345)
	if a != b {
		t.Errorf("Mix64 not deterministic")
	}
	if Mix64(1) == Mix64(2) {
		t.Errorf("Mix64 collided trivially")
	}
}

func TestHashSeqOrderSensitive(t *testing.T) {
	a := HashSeq(1, 2, 3)
	b := HashSeq(1, 3, 2)
	if a == b {
		t.Errorf("HashSeq should be sensitive to argument order")
	}
}

func TestComposeIdentity(t *testing.T) {
	p := Pose{Pos: Vec3{X: FromInt(5), Y: FromInt(6), Z: FromInt(7)}, Rot: IdentityQuat()}
	got := Compose(IdentityPose(), p)
	if got.Pos != p.Pos {
		t.Errorf("Compose(identity, p).Pos = %+v, want %+v", got.Pos, p.Pos)
	}
}
