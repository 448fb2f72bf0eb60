package meshdiag

// boundaryAndNonManifoldEdges emits six floats (two endpoint positions)
// per qualifying edge from the edge-face map (P14).
func (s *state) boundaryAndNonManifoldEdges() (boundary, nonManifold []float32) {
	for key, tris := range s.edgeFaces {
		a, b := decodeEdge(key)
		pa, pb := s.vertex(a), s.vertex(b)
		seg := []float32{
			float32(pa.X), float32(pa.Y), float32(pa.Z),
			float32(pb.X), float32(pb.Y), float32(pb.Z),
		}
		switch len(tris) {
		case 1:
			boundary = append(boundary, seg...)
		default:
			if len(tris) >= 3 {
				nonManifold = append(nonManifold, seg...)
			}
		}
	}
	return boundary, nonManifold
}

// nonManifoldVertexPositions emits three floats per non-manifold vertex
// (pinch points).
func (s *state) nonManifoldVertexPositions(vertices []uint32) []float32 {
	var out []float32
	for _, v := range vertices {
		p := s.vertex(v)
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}

// selfIntersectionCentroidPositions emits the average of the six vertices of each
// intersecting triangle pair.
func (s *state) selfIntersectionCentroidPositions(pairs []selfIntersectingPair) []float32 {
	var out []float32
	for _, pair := range pairs {
		a1, b1, c1 := s.triVerts(pair.t1)
		a2, b2, c2 := s.triVerts(pair.t2)
		var sx, sy, sz float64
		for _, idx := range [6]uint32{a1, b1, c1, a2, b2, c2} {
			p := s.vertex(idx)
			sx += p.X
			sy += p.Y
			sz += p.Z
		}
		out = append(out, float32(sx/6), float32(sy/6), float32(sz/6))
	}
	return out
}

// tJunctionVertexPositions emits three floats per qualifying vertex.
func (s *state) tJunctionVertexPositions(vertices []uint32) []float32 {
	var out []float32
	for _, v := range vertices {
		p := s.vertex(v)
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}
