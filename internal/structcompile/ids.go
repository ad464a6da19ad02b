package structcompile

import "github.com/arxos/structcompile/internal/fixedpoint"

// ID is the 64-bit stable identifier type shared by compiled records.
type ID = uint64

// Per-class seed constants fed to the avalanche hash when deriving compiled
// IDs. These are part of the wire/format contract: they must never change
// without a format revision, or every previously-compiled ID reinterprets
// differently.
const (
	seedOccRegion    uint64 = 0x9e3779b97f4a7c15
	seedRoomNode     uint64 = 0xc2b2ae3d27d4eb4f
	seedRoomEdge     uint64 = 0x165667b19e3779f9
	seedSurface      uint64 = 0x27d4eb2f165667c5
	seedSupportNode  uint64 = 0xff51afd7ed558ccd
	seedSupportEdge  uint64 = 0xc4ceb9fe1a85ec53
	seedCarrier      uint64 = 0x2545f4914f6cdd1d
)

func hashOccRegionID(structID, volumeID ID, isVoid bool) ID {
	return fixedpoint.HashSeq(seedOccRegion, structID, volumeID, fixedpoint.BoolToU64(isVoid))
}

func hashRoomNodeID(structID, enclosureID ID) ID {
	return fixedpoint.HashSeq(seedRoomNode, structID, enclosureID)
}

func hashRoomEdgeID(structID, srcEnclosureID, apertureID, dstEnclosureID ID, kind uint64) ID {
	return fixedpoint.HashSeq(seedRoomEdge, structID, srcEnclosureID, apertureID, dstEnclosureID, kind)
}

func hashSurfaceID(structID, templateID ID) ID {
	return fixedpoint.HashSeq(seedSurface, structID, templateID)
}

func hashSupportNodeID(structID, regionID ID, localIndex uint64) ID {
	return fixedpoint.HashSeq(seedSupportNode, structID, regionID, localIndex)
}

func hashSupportEdgeID(structID, regionID ID) ID {
	return fixedpoint.HashSeq(seedSupportEdge, structID, regionID)
}

func hashCarrierID(structID, intentID ID) ID {
	return fixedpoint.HashSeq(seedCarrier, structID, intentID)
}
