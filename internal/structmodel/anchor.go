package structmodel

import "github.com/arxos/structcompile/internal/fixedpoint"

// RoundMode selects the deterministic rounding convention for fixed-point
// arithmetic performed while resolving an anchor. Only RoundNear is defined
// by the pose algebra contract today.
type RoundMode uint8

const RoundNear RoundMode = 0

// WorldFrame is one entry of the optional world-frame table an Anchor can
// reference: FrameID 0 is always the world root (identity pose) and is
// never present explicitly in the table.
type WorldFrame struct {
	ID   ID
	Pose fixedpoint.Pose
}

// Anchor is a parametric reference to a host frame plus a local (u,v,h)
// offset; it resolves to an absolute Pose given a frame table and a tick.
// FrameID == 0 means "relative to the world root" (what the authoring
// examples call a Terrain anchor).
type Anchor struct {
	FrameID ID
	U, V, H fixedpoint.Q
}

// AnchorResolver is the external, pure-function contract the compiler
// depends on for turning an Anchor into a world-space Pose. Implementations
// must be deterministic and must not consult floating-point math.
type AnchorResolver interface {
	Eval(anchor Anchor, frames []WorldFrame, tick uint64, round RoundMode) (fixedpoint.Pose, error)
}

// DefaultAnchorResolver implements the world-frame-table lookup + offset
// composition the authoring examples call "Terrain" anchors: resolve the
// referenced frame's pose (identity if FrameID == 0), then translate by the
// anchor's (u,v,h) offset in that frame's local space.
type DefaultAnchorResolver struct{}

// Eval resolves anchor against frames. It never reads tick — the reference
// implementation's frame table is itself the only time-varying input, and
// is supplied to Eval already evaluated for the current tick by the host —
// but the parameter is part of the contract so resolvers that do depend on
// tick remain pluggable.
func (DefaultAnchorResolver) Eval(anchor Anchor, frames []WorldFrame, tick uint64, round RoundMode) (fixedpoint.Pose, error) {
	_ = tick
	_ = round
	framePose := fixedpoint.IdentityPose()
	if anchor.FrameID != 0 {
		found := false
		for _, f := range frames {
			if f.ID == anchor.FrameID {
				framePose = f.Pose
				found = true
				break
			}
		}
		if !found {
			return fixedpoint.Pose{}, ErrFrameMissing
		}
	}
	offset := fixedpoint.Pose{
		Pos: fixedpoint.Vec3{X: anchor.U, Y: anchor.V, Z: anchor.H},
		Rot: fixedpoint.IdentityQuat(),
	}
	return fixedpoint.Compose(framePose, offset), nil
}
