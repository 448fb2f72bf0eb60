package meshdiag

// valenceHistogram builds the valence -> vertex-count histogram (P8),
// omitting valence 0. Requires s.vertexTris to already be built.
func (s *state) valenceHistogram() map[int]int {
	hist := make(map[int]int)
	for v := range s.v {
		valence := len(s.vertexTris[v])
		if valence == 0 {
			continue
		}
		hist[valence]++
	}
	if len(hist) == 0 {
		return nil
	}
	return hist
}
