package meshdiag

import (
	"math"

	"github.com/taigrr/meshdiag/internal/spatialhash"
	"github.com/taigrr/meshdiag/math3d"
	"gonum.org/v1/gonum/spatial/r3"
)

const selfIntersectTolerance = 1e-8

// selfIntersectingPair is one reported intersecting triangle pair.
type selfIntersectingPair struct {
	t1, t2 int
}

// triangleAABB returns a triangle's axis-aligned bounding box.
func (s *state) triangleAABB(t int) (minX, minY, minZ, maxX, maxY, maxZ float64) {
	a, b, c := s.triVerts(t)
	v0, v1, v2 := s.vertex(a), s.vertex(b), s.vertex(c)
	minX = math.Min(v0.X, math.Min(v1.X, v2.X))
	minY = math.Min(v0.Y, math.Min(v1.Y, v2.Y))
	minZ = math.Min(v0.Z, math.Min(v1.Z, v2.Z))
	maxX = math.Max(v0.X, math.Max(v1.X, v2.X))
	maxY = math.Max(v0.Y, math.Max(v1.Y, v2.Y))
	maxZ = math.Max(v0.Z, math.Max(v1.Z, v2.Z))
	return
}

// sharedVertexCount counts how many vertex indices two triangles share.
func (s *state) sharedVertexCount(t1, t2 int) int {
	a1, b1, c1 := s.triVerts(t1)
	a2, b2, c2 := s.triVerts(t2)
	v1 := [3]uint32{a1, b1, c1}
	v2 := [3]uint32{a2, b2, c2}
	count := 0
	for _, x := range v1 {
		for _, y := range v2 {
			if x == y {
				count++
			}
		}
	}
	return count
}

// findSelfIntersections runs the broad-phase spatial hash plus narrow-phase
// Möller triangle-triangle test (P10). Requires s.faceNormals.
func (s *state) findSelfIntersections() []selfIntersectingPair {
	if s.t == 0 {
		return nil
	}

	avgLen := s.bbox.Diagonal / math.Sqrt(float64(s.t)/2)
	cellSize := math.Max(2*avgLen, 1e-6)
	grid := spatialhash.NewGrid(cellSize)

	for t := range s.t {
		minX, minY, minZ, maxX, maxY, maxZ := s.triangleAABB(t)
		grid.InsertAABB(minX, minY, minZ, maxX, maxY, maxZ, t)
	}

	var pairs []selfIntersectingPair
	reported := make(map[uint64]bool)
	for t1 := range s.t {
		minX, minY, minZ, maxX, maxY, maxZ := s.triangleAABB(t1)
		for _, t2 := range grid.QueryAABB(minX, minY, minZ, maxX, maxY, maxZ) {
			if t2 <= t1 {
				continue
			}
			key := uint64(t1)<<32 | uint64(t2)
			if reported[key] {
				continue
			}
			reported[key] = true

			if s.sharedVertexCount(t1, t2) >= 2 {
				continue
			}
			if s.trianglesIntersect(t1, t2) {
				pairs = append(pairs, selfIntersectingPair{t1, t2})
			}
		}
	}
	return pairs
}

// trianglesIntersect implements the Möller triangle-triangle intersection
// test (P10 narrow phase): plane-separation rejection, then either a
// coplanar 2D overlap test or an interval-overlap test along the
// intersection line of the two triangle planes.
func (s *state) trianglesIntersect(t1, t2 int) bool {
	a1, b1, c1 := s.triVerts(t1)
	a2, b2, c2 := s.triVerts(t2)
	v0, v1, v2 := s.vertex(a1), s.vertex(b1), s.vertex(c1)
	u0, u1, u2 := s.vertex(a2), s.vertex(b2), s.vertex(c2)

	n1 := s.faceNormals[t1]
	n2 := s.faceNormals[t2]

	// Signed distances of triangle 2's vertices to triangle 1's plane.
	d1 := -r3.Dot(n1, v0)
	du0 := r3.Dot(n1, u0) + d1
	du1 := r3.Dot(n1, u1) + d1
	du2 := r3.Dot(n1, u2) + d1
	if sameSignNonZero(du0, du1, du2) {
		return false
	}

	// Signed distances of triangle 1's vertices to triangle 2's plane.
	d2 := -r3.Dot(n2, u0)
	dv0 := r3.Dot(n2, v0) + d2
	dv1 := r3.Dot(n2, v1) + d2
	dv2 := r3.Dot(n2, v2) + d2
	if sameSignNonZero(dv0, dv1, dv2) {
		return false
	}

	d := r3.Cross(n1, n2)
	if r3.Norm(d) < 1e-10 {
		// Coplanar: fall through to the 2D overlap test.
		return coplanarOverlap(v0, v1, v2, u0, u1, u2, n1)
	}

	axis := dominantAxis(d)
	pv0, pv1, pv2 := axisComponent(v0, axis), axisComponent(v1, axis), axisComponent(v2, axis)
	pu0, pu1, pu2 := axisComponent(u0, axis), axisComponent(u1, axis), axisComponent(u2, axis)

	isect1Min, isect1Max, coplanar1 := triangleInterval(pv0, pv1, pv2, dv0, dv1, dv2)
	if coplanar1 {
		return coplanarOverlap(v0, v1, v2, u0, u1, u2, n1)
	}
	isect2Min, isect2Max, coplanar2 := triangleInterval(pu0, pu1, pu2, du0, du1, du2)
	if coplanar2 {
		return coplanarOverlap(v0, v1, v2, u0, u1, u2, n1)
	}

	if isect1Min > isect1Max {
		isect1Min, isect1Max = isect1Max, isect1Min
	}
	if isect2Min > isect2Max {
		isect2Min, isect2Max = isect2Max, isect2Min
	}

	return isect1Max >= isect2Min-selfIntersectTolerance && isect2Max >= isect1Min-selfIntersectTolerance
}

func sameSignNonZero(a, b, c float64) bool {
	aZero := math.Abs(a) < selfIntersectTolerance
	bZero := math.Abs(b) < selfIntersectTolerance
	cZero := math.Abs(c) < selfIntersectTolerance
	if aZero || bZero || cZero {
		return false
	}
	return (a > 0 && b > 0 && c > 0) || (a < 0 && b < 0 && c < 0)
}

func dominantAxis(v r3.Vec) int {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= ax && ay >= az {
		return 1
	}
	return 2
}

func axisComponent(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// triangleInterval computes the interval where a triangle (with projected
// vertex coordinates p0,p1,p2 and plane-distances d0,d1,d2 to the other
// triangle's plane) crosses the line of intersection between the two
// triangle planes, via the two edges whose endpoints lie on opposite sides.
func triangleInterval(p0, p1, p2, d0, d1, d2 float64) (min, max float64, coplanar bool) {
	d0d1 := d0 * d1
	d0d2 := d0 * d2

	switch {
	case d0d1 > 0:
		return isect2(p2, p0, p1, d2, d0, d1)
	case d0d2 > 0:
		return isect2(p1, p0, p2, d1, d0, d2)
	case d1*d2 > 0 || d0 != 0:
		return isect2(p0, p1, p2, d0, d1, d2)
	case d1 != 0:
		return isect2(p1, p0, p2, d1, d0, d2)
	case d2 != 0:
		return isect2(p2, p0, p1, d2, d0, d1)
	default:
		return 0, 0, true
	}
}

// isect2 computes the two points where the edges from the isolated vertex
// (p0, d0) to the other two (p1,d1), (p2,d2) cross the plane d=0, and
// returns them as an interval.
func isect2(p0, p1, p2, d0, d1, d2 float64) (min, max float64, coplanar bool) {
	t1 := d0 / (d0 - d1)
	i0 := p0 + (p1-p0)*t1
	t2 := d0 / (d0 - d2)
	i1 := p0 + (p2-p0)*t2
	return i0, i1, false
}

// coplanarOverlap tests whether two coplanar triangles overlap in 2D, by
// projecting out the axis with the largest-magnitude normal component and
// checking edge-edge crossing and point-in-triangle containment.
func coplanarOverlap(v0, v1, v2, u0, u1, u2, normal r3.Vec) bool {
	i0, i1 := dropAxis(normal)
	proj := func(v r3.Vec) math3d.Vec2 {
		arr := [3]float64{v.X, v.Y, v.Z}
		return math3d.V2(arr[i0], arr[i1])
	}
	p0, p1, p2 := proj(v0), proj(v1), proj(v2)
	q0, q1, q2 := proj(u0), proj(u1), proj(u2)

	edgesA := [3][2]math3d.Vec2{{p0, p1}, {p1, p2}, {p2, p0}}
	edgesB := [3][2]math3d.Vec2{{q0, q1}, {q1, q2}, {q2, q0}}
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			if segmentsCross(ea[0], ea[1], eb[0], eb[1]) {
				return true
			}
		}
	}

	return pointInTriangle2D(q0, p0, p1, p2) || pointInTriangle2D(p0, q0, q1, q2)
}

// dropAxis returns the two axis indices to keep when projecting out the
// axis of largest-magnitude normal component.
func dropAxis(normal r3.Vec) (i0, i1 int) {
	ax, ay, az := math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z)
	switch {
	case ax >= ay && ax >= az:
		return 1, 2
	case ay >= ax && ay >= az:
		return 0, 2
	default:
		return 0, 1
	}
}

func segmentsCross(a0, a1, b0, b1 math3d.Vec2) bool {
	d1 := cross2(b1, b0, a0)
	d2 := cross2(b1, b0, a1)
	d3 := cross2(a1, a0, b0)
	d4 := cross2(a1, a0, b1)

	if ((d1 > selfIntersectTolerance && d2 < -selfIntersectTolerance) || (d1 < -selfIntersectTolerance && d2 > selfIntersectTolerance)) &&
		((d3 > selfIntersectTolerance && d4 < -selfIntersectTolerance) || (d3 < -selfIntersectTolerance && d4 > selfIntersectTolerance)) {
		return true
	}
	return false
}

func cross2(p, q, r math3d.Vec2) float64 {
	return q.Sub(p).Cross(r.Sub(p))
}

// pointInTriangle2D tests whether point p lies strictly inside triangle
// (a,b,c) via barycentric coordinates.
func pointInTriangle2D(p, a, b, c math3d.Vec2) bool {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if math.Abs(denom) < 1e-12 {
		return false
	}
	u := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / denom
	v := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / denom
	w := 1 - u - v
	return u >= 0 && v >= 0 && w >= 0 && u+v < 1
}
