package structmodel

import "github.com/arxos/structcompile/internal/fixedpoint"

// Socket is a parametric attachment point on a surface, expressed in the
// surface's own (u,v) frame plus a normal offset.
type Socket struct {
	ID                ID
	SurfaceTemplateID ID
	U, V              fixedpoint.Q
	Offset            fixedpoint.Q
}
