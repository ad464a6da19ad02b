// Package structmodel is the immutable authoring-input view the structure
// compiler reads from: Instance, Footprint, Volume, Enclosure,
// SurfaceTemplate, Socket and CarrierIntent records, plus the Anchor/Pose
// contracts the host's world-frame system satisfies. The compiler never
// mutates anything in this package; it only hashes and reads.
package structmodel

// ID is a stable nonzero 64-bit authoring or compiled-artifact identifier.
// 0 is reserved ("no id" / exterior room / missing reference).
type ID = uint64
