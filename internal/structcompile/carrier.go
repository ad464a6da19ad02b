package structcompile

import (
	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
)

func maxQ(a, b fixedpoint.Q) fixedpoint.Q {
	if a > b {
		return a
	}
	return b
}

// rebuildCarriers overwrites sc.CarrierArtifacts.
func rebuildCarriers(
	sc *StructCompiled,
	inst structmodel.Instance,
	intents []structmodel.CarrierIntent,
	frames []structmodel.WorldFrame,
	resolver structmodel.AnchorResolver,
	tick uint64,
) error {
	var artifacts []CarrierArtifact
	for _, intentID := range inst.CarrierIntentIDs {
		intent, ok := structmodel.FindByID(intents, intentID)
		if !ok {
			return newErr(ErrCodeCarrierIntentMissing, "carrier: intent %d missing for struct %d", intentID, sc.StructID)
		}
		a0Pose, err := resolver.Eval(intent.A0, frames, tick, structmodel.RoundNear)
		if err != nil {
			return newErr(ErrCodeFrameMissing, "carrier: %v", err)
		}
		a1Pose, err := resolver.Eval(intent.A1, frames, tick, structmodel.RoundNear)
		if err != nil {
			return newErr(ErrCodeFrameMissing, "carrier: %v", err)
		}

		box := fixedpoint.NewAABB(a0Pose.Pos, a1Pose.Pos)
		halfXY := fixedpoint.Q(intent.Width / 2)
		halfZ := maxQ(intent.Height, intent.Depth)
		box = box.Expand(halfXY, halfZ)

		artifact := CarrierArtifact{
			ID:        hashCarrierID(sc.StructID, intent.ID),
			StructID:  sc.StructID,
			IntentID:  intent.ID,
			Kind:      intent.Kind,
			A0World:   a0Pose,
			A1World:   a1Pose,
			Width:     intent.Width,
			Height:    intent.Height,
			Depth:     intent.Depth,
			BBoxWorld: box,
		}
		artifacts = binaryInsert(artifacts, artifact, func(a, b CarrierArtifact) bool { return a.ID < b.ID })
	}
	sc.CarrierArtifacts = artifacts
	return nil
}
