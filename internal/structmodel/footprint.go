package structmodel

import "github.com/arxos/structcompile/internal/fixedpoint"

// Vertex is one point of a footprint ring, in local (x,y).
type Vertex struct {
	X, Y fixedpoint.Q
}

// Ring is an ordered set of vertices keyed by RingIndex (0 = outer boundary,
// any other index = a hole in the outer boundary).
type Ring struct {
	RingIndex uint32
	Vertices  []Vertex
}

// SignedArea returns twice the signed polygon area of the ring (the shoelace
// sum), so callers needing the true area divide by two. Sign follows the
// standard convention: positive for counter-clockwise winding.
func (r Ring) SignedArea() fixedpoint.Q {
	var sum fixedpoint.Q
	n := len(r.Vertices)
	for i := 0; i < n; i++ {
		a := r.Vertices[i]
		b := r.Vertices[(i+1)%n]
		sum = fixedpoint.Add(sum, fixedpoint.Sub(fixedpoint.Mul(a.X, b.Y), fixedpoint.Mul(b.X, a.Y)))
	}
	return sum
}

// Canonicalize returns r with vertex order reversed if its winding violates
// the outer=CCW (area>0)/hole=CW (area<0) convention footprints require.
func (r Ring) Canonicalize() Ring {
	area := r.SignedArea()
	wantPositive := r.RingIndex == 0
	if (wantPositive && area < 0) || (!wantPositive && area > 0) {
		reversed := make([]Vertex, len(r.Vertices))
		for i, v := range r.Vertices {
			reversed[len(r.Vertices)-1-i] = v
		}
		return Ring{RingIndex: r.RingIndex, Vertices: reversed}
	}
	return r
}

// Footprint is an ordered set of rings keyed by RingIndex.
type Footprint struct {
	ID    ID
	Rings []Ring
}

// Bounds returns the (minX, minY, maxX, maxY) AABB of the footprint's outer
// ring (ring 0). Ring 0 must have at least 3 vertices (an authoring
// invariant validated by the caller before compilation).
func (f Footprint) Bounds() (minX, minY, maxX, maxY fixedpoint.Q, ok bool) {
	var outer *Ring
	for i := range f.Rings {
		if f.Rings[i].RingIndex == 0 {
			outer = &f.Rings[i]
			break
		}
	}
	if outer == nil || len(outer.Vertices) < 3 {
		return 0, 0, 0, 0, false
	}
	minX, minY = outer.Vertices[0].X, outer.Vertices[0].Y
	maxX, maxY = minX, minY
	for _, v := range outer.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return minX, minY, maxX, maxY, true
}
