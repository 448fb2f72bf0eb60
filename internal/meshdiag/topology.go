package meshdiag

// unionFind is a standard disjoint-set structure over vertex indices, used
// by the connected-components pass (P3).
type unionFind struct {
	parent []int32
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int32, n), rank: make([]uint8, n)}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

func (uf *unionFind) find(x int32) int32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int32) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// topologyCounters holds the output of P3.
type topologyCounters struct {
	edgeCount            int
	boundaryEdgeCount    int
	nonManifoldEdgeCount int
	connectedComponents  int
	eulerCharacteristic  int
	isolatedVertexCount  int
}

// computeTopology classifies every edge in s.edgeFaces by incidence count,
// computes connected components via union-find over used vertices, and
// derives the Euler characteristic (P3). Requires s.edgeFaces to already be
// built (P1).
func (s *state) computeTopology() topologyCounters {
	var c topologyCounters
	c.edgeCount = len(s.edgeFaces)

	for _, tris := range s.edgeFaces {
		switch len(tris) {
		case 1:
			c.boundaryEdgeCount++
		case 2:
			// interior manifold edge
		default:
			c.nonManifoldEdgeCount++
		}
	}

	uf := newUnionFind(s.v)
	used := make([]bool, s.v)
	for t := range s.t {
		a, b, cc := s.triVerts(t)
		used[a], used[b], used[cc] = true, true, true
		uf.union(int32(a), int32(b))
		uf.union(int32(b), int32(cc))
	}

	roots := make(map[int32]bool)
	usedCount := 0
	for v := range s.v {
		if used[v] {
			usedCount++
			roots[uf.find(int32(v))] = true
		}
	}
	c.connectedComponents = len(roots)
	c.isolatedVertexCount = s.v - usedCount
	c.eulerCharacteristic = usedCount - c.edgeCount + s.t

	return c
}
