package structmodel

import (
	"errors"

	"github.com/arxos/structcompile/internal/fixedpoint"
)

// VolumeKind discriminates the Volume tagged union.
type VolumeKind uint8

const (
	VolumeExtrude VolumeKind = iota
	VolumeSweep
	VolumeBool
)

// BoolOp is the set-operation a Bool volume term applies.
type BoolOp uint8

const (
	BoolUnion BoolOp = iota
	BoolSubtract
	BoolIntersect
)

// BoolTerm is one operand of a Bool volume, ordered by TermIndex.
type BoolTerm struct {
	TermIndex uint32
	VolumeID  ID
	Op        BoolOp
}

// Volume is the tagged union {Extrude, Sweep, Bool}. Exactly one of the
// kind-specific field groups is meaningful, selected by Kind.
type Volume struct {
	ID   ID
	Kind VolumeKind

	// Extrude / Sweep
	FootprintID ID
	BaseZ       fixedpoint.Q // Extrude only
	Height      fixedpoint.Q
	Length      fixedpoint.Q // Sweep only

	// Bool
	Terms []BoolTerm

	IsVoid bool
}

// MaxBoolRecursionDepth is the hard cap on Bool-volume term nesting.
const MaxBoolRecursionDepth = 8

var (
	// ErrVolumeMissing is returned when a volume_id does not resolve in the
	// authoring set.
	ErrVolumeMissing = errors.New("structmodel: referenced volume missing")
	// ErrFootprintMissing is returned when a footprint_id does not resolve.
	ErrFootprintMissing = errors.New("structmodel: referenced footprint missing")
	// ErrVolumeSelfReference is returned when a Bool term references its own volume.
	ErrVolumeSelfReference = errors.New("structmodel: bool volume term self-references its own volume")
	// ErrVolumeRecursionTooDeep is returned when Bool nesting exceeds MaxBoolRecursionDepth.
	ErrVolumeRecursionTooDeep = errors.New("structmodel: bool volume recursion exceeds depth limit")
	// ErrUnknownVolumeKind is returned for an unrecognized Volume.Kind.
	ErrUnknownVolumeKind = errors.New("structmodel: unknown volume kind")
)

// ResolveVolumeLocalAABB computes the local-space AABB of volume, recursing
// through Bool terms up to MaxBoolRecursionDepth. Per the Boolean volume AABB
// design note: the AABB of a Bool volume is always the UNION of its operand
// AABBs, regardless of the term's operator — conservative but observable in
// downstream hashes, and deliberately not tightened.
func ResolveVolumeLocalAABB(volumeID ID, footprints []Footprint, volumes []Volume) (fixedpoint.AABB, error) {
	return resolveVolumeAABB(volumeID, footprints, volumes, 0)
}

func resolveVolumeAABB(volumeID ID, footprints []Footprint, volumes []Volume, depth int) (fixedpoint.AABB, error) {
	if depth > MaxBoolRecursionDepth {
		return fixedpoint.AABB{}, ErrVolumeRecursionTooDeep
	}
	vol, ok := FindByID(volumes, volumeID)
	if !ok {
		return fixedpoint.AABB{}, ErrVolumeMissing
	}

	switch vol.Kind {
	case VolumeExtrude:
		fp, ok := FindByID(footprints, vol.FootprintID)
		if !ok {
			return fixedpoint.AABB{}, ErrFootprintMissing
		}
		minX, minY, maxX, maxY, ok := fp.Bounds()
		if !ok {
			return fixedpoint.AABB{}, ErrFootprintMissing
		}
		return fixedpoint.AABB{
			Min: fixedpoint.Vec3{X: minX, Y: minY, Z: vol.BaseZ},
			Max: fixedpoint.Vec3{X: maxX, Y: maxY, Z: fixedpoint.Add(vol.BaseZ, vol.Height)},
		}, nil

	case VolumeSweep:
		// Documented placeholder: sweep extends the footprint AABB along
		// local +X by `length`; base is always z=0.
		fp, ok := FindByID(footprints, vol.FootprintID)
		if !ok {
			return fixedpoint.AABB{}, ErrFootprintMissing
		}
		minX, minY, maxX, maxY, ok := fp.Bounds()
		if !ok {
			return fixedpoint.AABB{}, ErrFootprintMissing
		}
		return fixedpoint.AABB{
			Min: fixedpoint.Vec3{X: minX, Y: minY, Z: 0},
			Max: fixedpoint.Vec3{X: fixedpoint.Add(maxX, vol.Length), Y: maxY, Z: vol.Height},
		}, nil

	case VolumeBool:
		var result fixedpoint.AABB
		hasAny := false
		for _, term := range vol.Terms {
			if term.VolumeID == vol.ID {
				return fixedpoint.AABB{}, ErrVolumeSelfReference
			}
			box, err := resolveVolumeAABB(term.VolumeID, footprints, volumes, depth+1)
			if err != nil {
				return fixedpoint.AABB{}, err
			}
			if !hasAny {
				result = box
				hasAny = true
			} else {
				result = fixedpoint.UnionAABB(result, box)
			}
		}
		return result, nil

	default:
		return fixedpoint.AABB{}, ErrUnknownVolumeKind
	}
}
