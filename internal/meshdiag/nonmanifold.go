package meshdiag

// linkGraph builds the link graph of vertex v: a node per "other" vertex of
// each triangle incident on v, with an edge between a triangle's two other
// vertices. Returns the adjacency and the ordered node list.
func (s *state) linkGraph(v uint32, incident []int32) (adj map[uint32][]uint32, nodes []uint32) {
	adj = make(map[uint32][]uint32)
	seen := make(map[uint32]bool)
	for _, t := range incident {
		a, b, c := s.triVerts(int(t))
		var other [2]uint32
		i := 0
		for _, idx := range [3]uint32{a, b, c} {
			if idx == v {
				i++
			}
		}
		if i != 1 {
			// v appears zero or more than once among this triangle's
			// corners: not a valid fan contribution, so it contributes no
			// link-graph edge.
			continue
		}
		i = 0
		for _, idx := range [3]uint32{a, b, c} {
			if idx != v {
				other[i] = idx
				i++
			}
		}
		x, y := other[0], other[1]
		adj[x] = append(adj[x], y)
		adj[y] = append(adj[y], x)
		if !seen[x] {
			seen[x] = true
			nodes = append(nodes, x)
		}
		if !seen[y] {
			seen[y] = true
			nodes = append(nodes, y)
		}
	}
	return adj, nodes
}

// isNonManifoldVertex reports whether v's incident faces form two or more
// disjoint fans around it: true iff a BFS over its link graph, started
// from any one node, fails to reach every node.
func (s *state) isNonManifoldVertex(v uint32, incident []int32) bool {
	adj, nodes := s.linkGraph(v, incident)
	if len(nodes) == 0 {
		return false
	}
	visited := make(map[uint32]bool, len(nodes))
	queue := []uint32{nodes[0]}
	visited[nodes[0]] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, nb := range adj[n] {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) != len(nodes)
}

// nonManifoldVertices returns the indices of every non-manifold vertex
// (P4). Vertices with zero or one incident triangle are never counted.
func (s *state) nonManifoldVertices() []uint32 {
	var result []uint32
	for v := range s.v {
		incident := s.vertexTris[v]
		if len(incident) < 2 {
			continue
		}
		if s.isNonManifoldVertex(uint32(v), incident) {
			result = append(result, uint32(v))
		}
	}
	return result
}
