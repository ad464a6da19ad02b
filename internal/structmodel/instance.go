package structmodel

import "github.com/arxos/structcompile/internal/fixedpoint"

// Instance anchors one authored placement of a footprint/volume/enclosure/
// surface/socket/carrier set into the world. All ID-list fields are sorted
// unique sets; the compiler iterates them in this order, never re-sorting,
// because stable IDs are content-hashed and never position-dependent.
type Instance struct {
	ID ID

	Anchor    Anchor
	LocalPose fixedpoint.Pose

	FootprintID ID

	VolumeIDs          []ID
	EnclosureIDs       []ID
	SurfaceTemplateIDs []ID
	SocketIDs          []ID
	CarrierIntentIDs   []ID
}

// WorldPose evaluates the instance's absolute pose for the given tick:
// compose(anchor_pose, local_pose).
func (inst Instance) WorldPose(resolver AnchorResolver, frames []WorldFrame, tick uint64) (fixedpoint.Pose, error) {
	anchorPose, err := resolver.Eval(inst.Anchor, frames, tick, RoundNear)
	if err != nil {
		return fixedpoint.Pose{}, err
	}
	return fixedpoint.Compose(anchorPose, inst.LocalPose), nil
}

// ContainsSurfaceTemplate reports whether templateID is a member of
// inst.SurfaceTemplateIDs, via binary search (the list is a sorted set).
func (inst Instance) ContainsSurfaceTemplate(templateID ID) bool {
	return containsSortedID(inst.SurfaceTemplateIDs, templateID)
}

// ContainsEnclosure reports whether enclosureID is a member of
// inst.EnclosureIDs.
func (inst Instance) ContainsEnclosure(enclosureID ID) bool {
	return containsSortedID(inst.EnclosureIDs, enclosureID)
}

func containsSortedID(ids []ID, target ID) bool {
	lo, hi := 0, len(ids)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if ids[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(ids) && ids[lo] == target
}
