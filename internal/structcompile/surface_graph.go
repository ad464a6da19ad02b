package structcompile

import (
	"github.com/arxos/structcompile/internal/fixedpoint"
	"github.com/arxos/structcompile/internal/structmodel"
)

// faceFrame describes one face of a local AABB as an origin plus two edge
// vectors (not yet transformed to world space) and their lengths.
type faceFrame struct {
	origin, uEnd, vEnd, diag fixedpoint.Vec3
	uLen, vLen               fixedpoint.Q
}

// localFaceFrame selects the face of box named by (kind, index) and returns
// its local-space corner frame. Side faces pick a right-handed (u,v) basis
// w.r.t. the outward normal, rotating by face_index mod 4 through
// {+X,-X,+Y,-Y}.
func localFaceFrame(box fixedpoint.AABB, kind structmodel.FaceKind, index uint32) (faceFrame, error) {
	dx := fixedpoint.Sub(box.Max.X, box.Min.X)
	dy := fixedpoint.Sub(box.Max.Y, box.Min.Y)
	dz := fixedpoint.Sub(box.Max.Z, box.Min.Z)

	switch kind {
	case structmodel.FaceTop:
		origin := fixedpoint.Vec3{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z}
		return faceFrame{
			origin: origin,
			uEnd:   fixedpoint.Vec3{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
			vEnd:   fixedpoint.Vec3{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
			diag:   fixedpoint.Vec3{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
			uLen:   dx, vLen: dy,
		}, nil

	case structmodel.FaceBottom:
		origin := fixedpoint.Vec3{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z}
		return faceFrame{
			origin: origin,
			uEnd:   fixedpoint.Vec3{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
			vEnd:   fixedpoint.Vec3{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
			diag:   fixedpoint.Vec3{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
			uLen:   dx, vLen: dy,
		}, nil

	case structmodel.FaceSide:
		switch index % 4 {
		case 0: // +X: normal +X, u=+Y, v=+Z (Y x Z = +X)
			origin := fixedpoint.Vec3{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z}
			return faceFrame{
				origin: origin,
				uEnd:   fixedpoint.Vec3{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
				vEnd:   fixedpoint.Vec3{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
				diag:   fixedpoint.Vec3{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
				uLen:   dy, vLen: dz,
			}, nil
		case 1: // -X: normal -X, u=-Y, v=+Z
			origin := fixedpoint.Vec3{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z}
			return faceFrame{
				origin: origin,
				uEnd:   fixedpoint.Vec3{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
				vEnd:   fixedpoint.Vec3{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
				diag:   fixedpoint.Vec3{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
				uLen:   dy, vLen: dz,
			}, nil
		case 2: // +Y: normal +Y, u=-X, v=+Z
			origin := fixedpoint.Vec3{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z}
			return faceFrame{
				origin: origin,
				uEnd:   fixedpoint.Vec3{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
				vEnd:   fixedpoint.Vec3{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
				diag:   fixedpoint.Vec3{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
				uLen:   dx, vLen: dz,
			}, nil
		default: // 3, -Y: normal -Y, u=+X, v=+Z
			origin := fixedpoint.Vec3{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z}
			return faceFrame{
				origin: origin,
				uEnd:   fixedpoint.Vec3{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
				vEnd:   fixedpoint.Vec3{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
				diag:   fixedpoint.Vec3{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
				uLen:   dx, vLen: dz,
			}, nil
		}
	default:
		return faceFrame{}, newErr(ErrCodeInvalidFaceKind, "surface_graph: unknown face kind %d", kind)
	}
}

// rebuildSurfaceGraph overwrites sc.Surfaces and sc.Sockets.
func rebuildSurfaceGraph(
	sc *StructCompiled,
	inst structmodel.Instance,
	footprints []structmodel.Footprint,
	volumes []structmodel.Volume,
	templates []structmodel.SurfaceTemplate,
	sockets []structmodel.Socket,
	frames []structmodel.WorldFrame,
	resolver structmodel.AnchorResolver,
	tick uint64,
) error {
	worldPose, err := inst.WorldPose(resolver, frames, tick)
	if err != nil {
		return newErr(ErrCodeFrameMissing, "surface_graph: %v", err)
	}

	surfaceIDOf := make(map[ID]ID, len(inst.SurfaceTemplateIDs))
	var surfaces []CompiledSurface
	for _, tmplID := range inst.SurfaceTemplateIDs {
		tmpl, ok := structmodel.FindByID(templates, tmplID)
		if !ok {
			return newErr(ErrCodeSurfaceTemplateMissing, "surface_graph: surface template %d missing for struct %d", tmplID, sc.StructID)
		}
		localBox, err := structmodel.ResolveVolumeLocalAABB(tmpl.VolumeID, footprints, volumes)
		if err != nil {
			return mapVolumeErr(err)
		}
		frame, err := localFaceFrame(localBox, tmpl.FaceKind, tmpl.FaceIndex)
		if err != nil {
			return err
		}

		originW := fixedpoint.TransformPoint(worldPose, frame.origin)
		uEndW := fixedpoint.TransformPoint(worldPose, frame.uEnd)
		vEndW := fixedpoint.TransformPoint(worldPose, frame.vEnd)
		diagW := fixedpoint.TransformPoint(worldPose, frame.diag)

		bbox := fixedpoint.NewAABB(originW, originW)
		bbox = fixedpoint.UnionAABB(bbox, fixedpoint.NewAABB(uEndW, uEndW))
		bbox = fixedpoint.UnionAABB(bbox, fixedpoint.NewAABB(vEndW, vEndW))
		bbox = fixedpoint.UnionAABB(bbox, fixedpoint.NewAABB(diagW, diagW))

		surfID := hashSurfaceID(sc.StructID, tmpl.ID)
		surfaceIDOf[tmpl.ID] = surfID
		surface := CompiledSurface{
			ID:          surfID,
			StructID:    sc.StructID,
			TemplateID:  tmpl.ID,
			VolumeID:    tmpl.VolumeID,
			EnclosureID: tmpl.EnclosureID,
			FaceKind:    tmpl.FaceKind,
			FaceIndex:   tmpl.FaceIndex,
			OriginWorld: originW,
			UVecWorld:   fixedpoint.SubVec(uEndW, originW),
			VVecWorld:   fixedpoint.SubVec(vEndW, originW),
			ULen:        frame.uLen,
			VLen:        frame.vLen,
			BBoxWorld:   bbox,
		}
		surfaces = binaryInsert(surfaces, surface, func(a, b CompiledSurface) bool { return a.ID < b.ID })
	}

	var compiledSockets []CompiledSocket
	for _, sockID := range inst.SocketIDs {
		sock, ok := structmodel.FindByID(sockets, sockID)
		if !ok {
			return newErr(ErrCodeSurfaceTemplateMissing, "surface_graph: socket %d missing for struct %d", sockID, sc.StructID)
		}
		if !containsID(inst.SurfaceTemplateIDs, sock.SurfaceTemplateID) {
			return newErr(ErrCodeSocketTemplateMissing, "surface_graph: socket %d references template %d not on struct %d", sock.ID, sock.SurfaceTemplateID, sc.StructID)
		}
		cs := CompiledSocket{
			ID:        sock.ID,
			StructID:  sc.StructID,
			SurfaceID: surfaceIDOf[sock.SurfaceTemplateID],
			U:         sock.U,
			V:         sock.V,
			Offset:    sock.Offset,
		}
		compiledSockets = binaryInsert(compiledSockets, cs, func(a, b CompiledSocket) bool { return a.ID < b.ID })
	}

	sc.Surfaces = surfaces
	sc.Sockets = compiledSockets
	return nil
}
