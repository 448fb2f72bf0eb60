package spatialhash

import "testing"

func TestInsertAndQueryCell(t *testing.T) {
	g := NewGrid(1.0)
	g.Insert(0.1, 0.1, 0.1, 42)
	g.Insert(0.9, 0.9, 0.9, 43)
	g.Insert(1.5, 0.1, 0.1, 99)

	got := g.QueryCell(0.5, 0.5, 0.5)
	if len(got) != 2 {
		t.Fatalf("QueryCell() = %v, want 2 ids in cell (0,0,0)", got)
	}
}

func TestQueryCellIgnoresNeighbors(t *testing.T) {
	g := NewGrid(1.0)
	g.Insert(0.9, 0.5, 0.5, 1)
	g.Insert(1.1, 0.5, 0.5, 2)

	got := g.QueryCell(0.9, 0.5, 0.5)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("QueryCell() = %v, want only [1] (own-cell only)", got)
	}
}

func TestQueryNeighborhoodCatchesAdjacentCell(t *testing.T) {
	g := NewGrid(1.0)
	g.Insert(0.9, 0.5, 0.5, 1)
	g.Insert(1.1, 0.5, 0.5, 2)

	got := g.QueryNeighborhood(0.9, 0.5, 0.5)
	if len(got) != 2 {
		t.Errorf("QueryNeighborhood() = %v, want both ids", got)
	}
}

func TestInsertAABBSpansMultipleCells(t *testing.T) {
	g := NewGrid(1.0)
	g.InsertAABB(0.5, 0.5, 0.5, 2.5, 0.5, 0.5, 7)

	if got := g.QueryCell(0.5, 0.5, 0.5); len(got) != 1 {
		t.Errorf("QueryCell(low) = %v, want [7]", got)
	}
	if got := g.QueryCell(2.5, 0.5, 0.5); len(got) != 1 {
		t.Errorf("QueryCell(high) = %v, want [7]", got)
	}
}

func TestQueryAABBDeduplicates(t *testing.T) {
	g := NewGrid(1.0)
	g.Insert(0.1, 0.1, 0.1, 5)
	g.InsertAABB(0, 0, 0, 2, 0, 0, 5)

	got := g.QueryAABB(0, 0, 0, 2, 0, 0)
	count := 0
	for _, id := range got {
		if id == 5 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("QueryAABB() contained id 5 %d times, want 1 (deduplicated)", count)
	}
}

func TestFloorDivNegative(t *testing.T) {
	tests := []struct {
		v, size float64
		want    int64
	}{
		{-0.5, 1.0, -1},
		{-1.0, 1.0, -1},
		{-1.5, 1.0, -2},
		{0.5, 1.0, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.v, tt.size); got != tt.want {
			t.Errorf("floorDiv(%v, %v) = %d, want %d", tt.v, tt.size, got, tt.want)
		}
	}
}
