package structcompile

import (
	"math"
	"testing"

	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(n int64) fixedpoint.Q { return fixedpoint.FromInt(n) }

func squareFootprint(id ID, minX, minY, maxX, maxY fixedpoint.Q) structmodel.Footprint {
	return structmodel.Footprint{
		ID: id,
		Rings: []structmodel.Ring{
			{
				RingIndex: 0,
				Vertices: []structmodel.Vertex{
					{X: minX, Y: minY},
					{X: maxX, Y: minY},
					{X: maxX, Y: maxY},
					{X: minX, Y: maxY},
				},
			},
		},
	}
}

// scenarioAInput builds the authoring set from spec Scenario A. When
// reversed is true, every multi-entry authoring collection (not the
// per-instance ID sets, which are always canonical sorted sets) is built in
// reverse order, to exercise order-independence.
func scenarioAInput(reversed bool) AuthoringInput {
	fp10 := squareFootprint(10, 0, 0, q(10), q(10))
	fp11 := squareFootprint(11, q(2), q(2), q(8), q(8))
	footprints := []structmodel.Footprint{fp10, fp11}

	vol20 := structmodel.Volume{ID: 20, Kind: structmodel.VolumeExtrude, FootprintID: 10, BaseZ: 0, Height: q(6), IsVoid: false}
	vol21 := structmodel.Volume{ID: 21, Kind: structmodel.VolumeExtrude, FootprintID: 11, BaseZ: 0, Height: q(5), IsVoid: true}
	volumes := []structmodel.Volume{vol20, vol21}

	enc30 := structmodel.Enclosure{
		ID:        30,
		VolumeIDs: []ID{21},
		Apertures: []structmodel.Aperture{{ApertureID: 1, ToEnclosureID: 0, Kind: structmodel.ApertureDoor}},
	}
	enclosures := []structmodel.Enclosure{enc30}

	tmpl40 := structmodel.SurfaceTemplate{ID: 40, Kind: structmodel.SurfaceTemplateVolumeFace, VolumeID: 20, FaceKind: structmodel.FaceTop, FaceIndex: 0}
	tmpl41 := structmodel.SurfaceTemplate{ID: 41, Kind: structmodel.SurfaceTemplateVolumeFace, VolumeID: 20, FaceKind: structmodel.FaceSide, FaceIndex: 0}
	templates := []structmodel.SurfaceTemplate{tmpl40, tmpl41}

	sock50 := structmodel.Socket{ID: 50, SurfaceTemplateID: 41, U: q(1), V: q(2), Offset: 0}
	sockets := []structmodel.Socket{sock50}

	inst := structmodel.Instance{
		ID:                 100,
		Anchor:             structmodel.Anchor{FrameID: 0, U: q(100), V: q(200), H: 0},
		LocalPose:          fixedpoint.Pose{Rot: fixedpoint.Quat{Z: 46340, W: 46340}},
		FootprintID:        10,
		VolumeIDs:          []ID{20, 21},
		EnclosureIDs:       []ID{30},
		SurfaceTemplateIDs: []ID{40, 41},
		SocketIDs:          []ID{50},
	}

	if reversed {
		footprints = []structmodel.Footprint{fp11, fp10}
		volumes = []structmodel.Volume{vol21, vol20}
		templates = []structmodel.SurfaceTemplate{tmpl41, tmpl40}
	}

	return AuthoringInput{
		Footprints:       footprints,
		Volumes:          volumes,
		Enclosures:       enclosures,
		SurfaceTemplates: templates,
		Sockets:          sockets,
		Instances:        []structmodel.Instance{inst},
	}
}

func newTestCompiler(t *testing.T, chunkSize fixedpoint.Q) *Compiler {
	t.Helper()
	c := NewCompiler()
	c.Reserve(64, 256)
	require.NoError(t, c.SetParams(chunkSize))
	return c
}

func compileScenarioA(t *testing.T, reversed bool, budget uint32) *Compiler {
	t.Helper()
	input := scenarioAInput(reversed)
	c := newTestCompiler(t, q(16))
	require.NoError(t, c.Sync(input))
	c.MarkDirty(100, DirtyFootprint|DirtyVolume|DirtyEnclosure|DirtySurface)
	c.EnqueueDirty(1)
	for c.PendingWork() > 0 {
		_, err := c.Process(input, 1, budget)
		require.NoError(t, err)
	}
	return c
}

func TestScenarioA_DeterminismUnderReorder(t *testing.T) {
	c0 := compileScenarioA(t, false, math.MaxUint32)
	c1 := compileScenarioA(t, true, math.MaxUint32)

	sc0, ok := c0.Compiled.Get(100)
	require.True(t, ok)
	sc1, ok := c1.Compiled.Get(100)
	require.True(t, ok)

	assert.Equal(t, sc0.OccRegions, sc1.OccRegions)
	assert.Equal(t, sc0.RoomNodes, sc1.RoomNodes)
	assert.Equal(t, sc0.RoomEdges, sc1.RoomEdges)
	assert.Equal(t, sc0.Surfaces, sc1.Surfaces)
	assert.Equal(t, sc0.Sockets, sc1.Sockets)

	assert.Equal(t, c0.OccupancySpatial.Entries(), c1.OccupancySpatial.Entries())
	assert.Equal(t, c0.SurfaceSpatial.Entries(), c1.SurfaceSpatial.Entries())
}

func TestScenarioB_IncrementalCarrierAdd(t *testing.T) {
	input := AuthoringInput{
		CarrierIntents: []structmodel.CarrierIntent{
			{
				ID:     500,
				Kind:   structmodel.CarrierBridge,
				A0:     structmodel.Anchor{FrameID: 0, U: 0, V: 0, H: 0},
				A1:     structmodel.Anchor{FrameID: 0, U: q(32), V: 0, H: 0},
				Width:  q(6),
				Height: q(2),
				Depth:  0,
			},
		},
		Instances: []structmodel.Instance{
			{ID: 300, CarrierIntentIDs: []ID{500}},
		},
	}

	c := newTestCompiler(t, q(16))
	require.NoError(t, c.Sync(input))
	c.MarkDirty(300, DirtyCarrier)
	c.EnqueueDirty(1)
	_, err := c.Process(input, 1, math.MaxUint32)
	require.NoError(t, err)

	sc, ok := c.Compiled.Get(300)
	require.True(t, ok)
	require.Len(t, sc.CarrierArtifacts, 1)

	art := sc.CarrierArtifacts[0]
	assert.Equal(t, -q(3), art.BBoxWorld.Min.X)
	assert.Equal(t, q(35), art.BBoxWorld.Max.X)
	assert.Equal(t, -q(3), art.BBoxWorld.Min.Y)
	assert.Equal(t, q(3), art.BBoxWorld.Max.Y)
	assert.Equal(t, -q(2), art.BBoxWorld.Min.Z)
	assert.Equal(t, q(2), art.BBoxWorld.Max.Z)
}

func TestScenarioC_BudgetSlicingMatchesUnboundedCompile(t *testing.T) {
	cFull := compileScenarioA(t, false, math.MaxUint32)
	// 5 is the Occupancy stage's cost: a smaller per-call budget never admits
	// that item, so the queue would never drain.
	cSliced := compileScenarioA(t, false, 5)

	scFull, _ := cFull.Compiled.Get(100)
	scSliced, _ := cSliced.Compiled.Get(100)
	assert.Equal(t, scFull, scSliced)
}

func TestScenarioD_EdgeCanonicalization(t *testing.T) {
	input := AuthoringInput{
		Enclosures: []structmodel.Enclosure{
			{
				ID:        30,
				VolumeIDs: []ID{21},
				Apertures: []structmodel.Aperture{{ApertureID: 1, ToEnclosureID: 31, Kind: structmodel.ApertureDoor}},
			},
			{
				ID:        31,
				VolumeIDs: []ID{22},
				Apertures: []structmodel.Aperture{{ApertureID: 2, ToEnclosureID: 30, Kind: structmodel.ApertureVent}},
			},
		},
		Volumes: []structmodel.Volume{
			{ID: 21, Kind: structmodel.VolumeExtrude, FootprintID: 10, Height: q(3)},
			{ID: 22, Kind: structmodel.VolumeExtrude, FootprintID: 10, Height: q(3)},
		},
		Footprints: []structmodel.Footprint{squareFootprint(10, 0, 0, q(4), q(4))},
		Instances: []structmodel.Instance{
			{ID: 200, VolumeIDs: []ID{21, 22}, EnclosureIDs: []ID{30, 31}},
		},
	}

	c := newTestCompiler(t, q(16))
	require.NoError(t, c.Sync(input))
	c.MarkDirty(200, DirtyVolume)
	c.EnqueueDirty(1)
	for c.PendingWork() > 0 {
		_, err := c.Process(input, 1, math.MaxUint32)
		require.NoError(t, err)
	}

	sc, ok := c.Compiled.Get(200)
	require.True(t, ok)
	require.Len(t, sc.RoomEdges, 2)
	for _, e := range sc.RoomEdges {
		assert.LessOrEqual(t, e.RoomA, e.RoomB)
	}
	assert.True(t, sc.RoomEdges[0].RoomA < sc.RoomEdges[1].RoomA ||
		(sc.RoomEdges[0].RoomA == sc.RoomEdges[1].RoomA && sc.RoomEdges[0].RoomB <= sc.RoomEdges[1].RoomB))
}

func TestScenarioE_SpatialRemoveThenReinsert(t *testing.T) {
	input := scenarioAInput(false)
	c := compileScenarioA(t, false, math.MaxUint32)

	for _, e := range c.OccupancySpatial.Entries() {
		assert.Equal(t, ID(100), e.StructID)
	}
	oldChunks := make(map[fixedpoint.ChunkCoord]bool)
	for _, e := range c.OccupancySpatial.Entries() {
		oldChunks[e.Chunk] = true
	}
	assert.Greater(t, len(oldChunks), 0)

	inst := input.Instances[0]
	inst.Anchor = structmodel.Anchor{FrameID: 0, U: q(1000), V: q(2000), H: 0}
	input.Instances = []structmodel.Instance{inst}

	c.MarkDirty(100, DirtyVolume)
	c.EnqueueDirty(2)
	for c.PendingWork() > 0 {
		_, err := c.Process(input, 2, math.MaxUint32)
		require.NoError(t, err)
	}

	sc, ok := c.Compiled.Get(100)
	require.True(t, ok)
	wantChunks := 0
	for _, r := range sc.OccRegions {
		lo, hi := fixedpoint.ChunkRangeForAABB(r.BBoxWorld, q(16))
		wantChunks += int(hi.CX-lo.CX+1) * int(hi.CY-lo.CY+1) * int(hi.CZ-lo.CZ+1)
	}
	assert.Equal(t, wantChunks, c.OccupancySpatial.Len())

	for _, e := range c.OccupancySpatial.Entries() {
		assert.False(t, oldChunks[e.Chunk], "stale chunk %v from before the move was not removed", e.Chunk)
	}
}

func TestScenarioF_InvariantCheckerPasses(t *testing.T) {
	cases := []*Compiler{
		compileScenarioA(t, false, math.MaxUint32),
		compileScenarioA(t, true, math.MaxUint32),
		compileScenarioA(t, false, 5),
	}
	for _, c := range cases {
		assert.Equal(t, 0, c.CheckInvariants())
	}
}
