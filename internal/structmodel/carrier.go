package structmodel

import "github.com/arxos/structcompile/internal/fixedpoint"

// CarrierKind discriminates the kind of linear connective artifact a
// CarrierIntent describes.
type CarrierKind uint8

const (
	CarrierBridge CarrierKind = iota
	CarrierViaduct
	CarrierTunnel
	CarrierCut
	CarrierFill
)

// CarrierIntent describes a connective artifact spanning two anchors
// (a bridge, viaduct, tunnel, cut or fill), with cross-section extents.
// Width, Height and Depth are all >= 0 (validated by the caller).
type CarrierIntent struct {
	ID     ID
	Kind   CarrierKind
	A0, A1 Anchor
	Width  fixedpoint.Q
	Height fixedpoint.Q
	Depth  fixedpoint.Q
	Params []byte // opaque TLV blob, not interpreted by the compiler
}
