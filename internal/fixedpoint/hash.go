package fixedpoint

// Mix64 is the published 64-bit avalanche bijection (splitmix64 finalizer)
// every stable compiled ID is derived from. Its constants are part of the
// data format and must never change without a format revision.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// HashSeq folds a fixed sequence of u64 values into a single stable ID:
// acc starts at seed, and each value v folds in as acc = Mix64(acc XOR v).
// Seeds are fixed per compiled-artifact class (see structcompile/ids.go);
// the sequence of fields fed in per class is part of the data format.
func HashSeq(seed uint64, vals ...uint64) uint64 {
	acc := seed
	for _, v := range vals {
		acc = Mix64(acc ^ v)
	}
	return acc
}

// BoolToU64 is a small helper for folding booleans into a HashSeq sequence.
func BoolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
