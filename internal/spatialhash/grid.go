// Package spatialhash implements a uniform hash grid shared by every
// analysis pass that needs approximate proximity queries (duplicate
// vertices, self-intersection broad phase, T-junctions, thin walls,
// coincident faces). Cell size and bounds are chosen by the caller per
// pass; the grid itself is agnostic to what it stores.
package spatialhash

// cellKey is a canonical integer cell coordinate.
type cellKey struct {
	x, y, z int64
}

// Grid buckets arbitrary payload values (identified by an int, typically a
// vertex or triangle index) into cells of a fixed size.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]int
}

// NewGrid creates an empty grid with the given cell size. cellSize must be
// positive; callers are responsible for clamping degenerate (near-zero)
// sizes before calling.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{cellSize: cellSize, cells: make(map[cellKey][]int)}
}

func (g *Grid) cellOf(x, y, z float64) cellKey {
	return cellKey{
		floorDiv(x, g.cellSize),
		floorDiv(y, g.cellSize),
		floorDiv(z, g.cellSize),
	}
}

func floorDiv(v, size float64) int64 {
	q := v / size
	i := int64(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// Insert places id into the single cell containing point (x,y,z).
func (g *Grid) Insert(x, y, z float64, id int) {
	k := g.cellOf(x, y, z)
	g.cells[k] = append(g.cells[k], id)
}

// InsertAABB places id into every cell overlapped by the axis-aligned box
// [min, max]. Used by passes that index a triangle's bounding box rather
// than a single point (self-intersection broad phase).
func (g *Grid) InsertAABB(minX, minY, minZ, maxX, maxY, maxZ float64, id int) {
	lo := g.cellOf(minX, minY, minZ)
	hi := g.cellOf(maxX, maxY, maxZ)
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				k := cellKey{x, y, z}
				g.cells[k] = append(g.cells[k], id)
			}
		}
	}
}

// QueryCell returns every id previously inserted into the single cell
// containing point (x,y,z), with no neighbor expansion. Used by the
// duplicate-vertex pass, which by design probes only the owning cell.
func (g *Grid) QueryCell(x, y, z float64) []int {
	return g.cells[g.cellOf(x, y, z)]
}

// QueryNeighborhood returns every id in the cell containing (x,y,z) and its
// 26 neighboring cells (a 3x3x3 block), used by passes that need to catch
// candidates straddling a cell boundary (T-junctions, thin walls).
func (g *Grid) QueryNeighborhood(x, y, z float64) []int {
	center := g.cellOf(x, y, z)
	var result []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				k := cellKey{center.x + dx, center.y + dy, center.z + dz}
				result = append(result, g.cells[k]...)
			}
		}
	}
	return result
}

// QueryAABB returns every id in any cell overlapped by the axis-aligned box
// [min, max], deduplicated. Used by the self-intersection broad phase to
// find candidate triangles for a query triangle's bounding box.
func (g *Grid) QueryAABB(minX, minY, minZ, maxX, maxY, maxZ float64) []int {
	lo := g.cellOf(minX, minY, minZ)
	hi := g.cellOf(maxX, maxY, maxZ)
	seen := make(map[int]bool)
	var result []int
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				for _, id := range g.cells[cellKey{x, y, z}] {
					if !seen[id] {
						seen[id] = true
						result = append(result, id)
					}
				}
			}
		}
	}
	return result
}
