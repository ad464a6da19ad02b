// Package structcompile is the deterministic structure compiler: the
// dirty-tracking model, budgeted work queue, per-stage rebuild algorithms,
// stable-ID derivation and canonical spatial index described by the
// specification. It uses no floating point and no threading, and the stage
// rebuild functions perform no I/O; Compiler.Process writes diagnostic lines
// through Compiler.Log (stdout by default). The host drives it exclusively
// through Compiler's exported methods.
package structcompile

import (
	"errors"
	"fmt"

	"github.com/arxos/structcompile/internal/structmodel"
)

// CompileError carries the negative error-code taxonomy assigned to stage
// failures, alongside a human-readable message. Hosts ported from the
// original C engine can keep comparing against `rc < 0` via Code(); Go
// callers can extract it with errors.As. The underlying cause is only
// formatted into the message, not wrapped, so errors.Is does not reach
// structmodel's sentinel errors through a CompileError.
type CompileError struct {
	code int
	msg  string
}

func (e *CompileError) Error() string { return fmt.Sprintf("structcompile: %s (code %d)", e.msg, e.code) }

// Code returns the stage return code, always negative.
func (e *CompileError) Code() int { return e.code }

func newErr(code int, format string, args ...interface{}) *CompileError {
	return &CompileError{code: code, msg: fmt.Sprintf(format, args...)}
}

// Error code taxonomy. Each stage returns the first violation it hits.
const (
	// Input-invalid.
	ErrCodeNullInput        = -1
	ErrCodeInvalidStructID  = -2
	ErrCodeInvalidChunkSize = -3
	ErrCodeUnknownVolume    = -4
	ErrCodeInvalidFaceKind  = -5

	// Reference-missing.
	ErrCodeVolumeMissing          = -6
	ErrCodeFootprintMissing       = -7
	ErrCodeEnclosureMissing       = -8
	ErrCodeSurfaceTemplateMissing = -9
	ErrCodeCarrierIntentMissing   = -10
	ErrCodeSocketTemplateMissing  = -11
	ErrCodeFrameMissing           = -16

	// Authoring-self-reference.
	ErrCodeSelfReference    = -12
	ErrCodeRecursionTooDeep = -13

	// Allocation-failure.
	ErrCodeAllocationFailure = -14

	// Generic instance-missing. No stage returns it: Process skips rather
	// than erroring for an unknown struct — see Process.
	ErrCodeInstanceMissing = -15
)

// CheckInvariants violation codes. Each identifies the first ordering
// violation encountered; the caller stops at the first one.
const (
	invCompiledTableOrder = -20
	invOccRegionOrder     = -21
	invRoomNodeOrder      = -22
	invRoomEdgeOrder      = -23
	invSurfaceOrder       = -24
	invSocketOrder        = -25
	invSupportNodeOrder   = -26
	invSupportEdgeOrder   = -27
	invCarrierOrder       = -28
	invSpatialOccOrder    = -29
	invSpatialRoomOrder   = -30
	invSpatialSurfOrder   = -31
	invSpatialSupOrder    = -32
	invSpatialCarOrder    = -33
)

// mapVolumeErr translates a structmodel volume-resolution error into the
// stage error-code taxonomy.
func mapVolumeErr(err error) error {
	switch {
	case errors.Is(err, structmodel.ErrVolumeMissing):
		return newErr(ErrCodeVolumeMissing, "%v", err)
	case errors.Is(err, structmodel.ErrFootprintMissing):
		return newErr(ErrCodeFootprintMissing, "%v", err)
	case errors.Is(err, structmodel.ErrVolumeSelfReference):
		return newErr(ErrCodeSelfReference, "%v", err)
	case errors.Is(err, structmodel.ErrVolumeRecursionTooDeep):
		return newErr(ErrCodeRecursionTooDeep, "%v", err)
	case errors.Is(err, structmodel.ErrUnknownVolumeKind):
		return newErr(ErrCodeUnknownVolume, "%v", err)
	default:
		return newErr(ErrCodeVolumeMissing, "%v", err)
	}
}
