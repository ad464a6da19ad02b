package structcompile

import "github.com/arxos/structcompile/internal/fixedpoint"

// rebuildSupportGraph overwrites sc.SupportNodes and sc.SupportEdges from
// sc.OccRegions (occupancy must already be compiled for this struct). Each
// non-void region contributes two nodes — one at its min-Z corner, one at
// its max-Z corner — and a vertical edge between them.
func rebuildSupportGraph(sc *StructCompiled) {
	var nodes []SupportNode
	var edges []SupportEdge

	for _, region := range sc.OccRegions {
		if region.IsVoid {
			continue
		}
		node0ID := hashSupportNodeID(sc.StructID, region.ID, 0)
		node1ID := hashSupportNodeID(sc.StructID, region.ID, 1)

		node0 := SupportNode{
			ID:       node0ID,
			StructID: sc.StructID,
			RegionID: region.ID,
			Pos:      fixedpoint.Vec3{X: region.BBoxWorld.Min.X, Y: region.BBoxWorld.Min.Y, Z: region.BBoxWorld.Min.Z},
			Capacity: fixedpoint.One,
		}
		node1 := SupportNode{
			ID:       node1ID,
			StructID: sc.StructID,
			RegionID: region.ID,
			Pos:      fixedpoint.Vec3{X: region.BBoxWorld.Min.X, Y: region.BBoxWorld.Min.Y, Z: region.BBoxWorld.Max.Z},
			Capacity: fixedpoint.One,
		}
		nodes = binaryInsert(nodes, node0, func(a, b SupportNode) bool { return a.ID < b.ID })
		nodes = binaryInsert(nodes, node1, func(a, b SupportNode) bool { return a.ID < b.ID })

		edge := SupportEdge{
			ID:       hashSupportEdgeID(sc.StructID, region.ID),
			StructID: sc.StructID,
			RegionID: region.ID,
			A:        node0ID,
			B:        node1ID,
			Capacity: fixedpoint.One,
		}
		edges = binaryInsert(edges, edge, func(a, b SupportEdge) bool { return a.ID < b.ID })
	}

	sc.SupportNodes = nodes
	sc.SupportEdges = edges
}
