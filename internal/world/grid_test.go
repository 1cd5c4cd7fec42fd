package world

import (
	"slices"
	"testing"
)

func testGrid() *Grid {
	return NewGrid(LatLng{Lat: 10, Lng: 20}, 0.5)
}

func TestGridCellOf(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name string
		pos  LatLng
		want Cell
	}{
		{"origin", LatLng{10, 20}, Cell{0, 0}},
		{"inside first cell", LatLng{10.25, 20.4}, Cell{0, 0}},
		{"next row", LatLng{10.5, 20}, Cell{1, 0}},
		{"south-west", LatLng{9.9, 19.9}, Cell{-1, -1}},
		{"far", LatLng{12.6, 17.1}, Cell{5, -6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.CellOf(tc.pos); got != tc.want {
				t.Errorf("CellOf(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestGridCenterRoundTrip(t *testing.T) {
	g := NewGrid(LatLng{Lat: 36.98949379578401, Lng: -122.06277128548504}, 1e-4)
	for i := -50; i <= 50; i += 7 {
		for j := -50; j <= 50; j += 9 {
			c := Cell{i, j}
			if got := g.CellOf(g.Center(c)); got != c {
				t.Fatalf("CellOf(Center(%v)) = %v", c, got)
			}
			if got := g.Snap(g.Center(c)); got != g.Center(c) {
				t.Fatalf("Snap(Center(%v)) moved the point", c)
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := testGrid()
	b := g.Bounds(Cell{2, -1})

	want := Bounds{Min: LatLng{11, 19.5}, Max: LatLng{11.5, 20}}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
	if g.CellOf(b.Min) != (Cell{2, -1}) {
		t.Error("Bounds.Min should lie in its own cell")
	}
}

func TestGridCells(t *testing.T) {
	g := testGrid()
	view := Bounds{Min: g.Center(Cell{-1, 0}), Max: g.Center(Cell{0, 2})}

	got := slices.Collect(g.Cells(view))
	want := []Cell{
		{0, 0}, {0, 1}, {0, 2},
		{-1, 0}, {-1, 1}, {-1, 2},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Cells = %v, want %v", got, want)
	}

	// The sequence is restartable.
	again := slices.Collect(g.Cells(view))
	if !slices.Equal(again, got) {
		t.Error("second iteration differs from first")
	}
}

func TestGridCellsOnCellEdges(t *testing.T) {
	g := testGrid()
	view := Bounds{Min: g.Bounds(Cell{-1, 0}).Min, Max: g.Bounds(Cell{0, 2}).Max}

	got := slices.Collect(g.Cells(view))
	want := []Cell{
		{0, 0}, {0, 1}, {0, 2},
		{-1, 0}, {-1, 1}, {-1, 2},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Cells = %v, want %v (cells touching the north and east edges left out)", got, want)
	}

	// A point view on a grid corner still yields the cell it starts.
	corner := g.Bounds(Cell{1, 1}).Min
	got = slices.Collect(g.Cells(Bounds{Min: corner, Max: corner}))
	if !slices.Equal(got, []Cell{{1, 1}}) {
		t.Errorf("Cells(point) = %v, want [{1 1}]", got)
	}
}

func TestGridCellsStopsEarly(t *testing.T) {
	g := testGrid()
	view := Bounds{Min: g.Center(Cell{-5, -5}), Max: g.Center(Cell{5, 5})}

	n := 0
	for range g.Cells(view) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d cells, want 3", n)
	}
}

func TestGridSetCellSizeKeepsIndices(t *testing.T) {
	g := testGrid()
	g.SetCellSize(0.25)
	if g.CellSize() != 0.25 {
		t.Errorf("CellSize = %v, want 0.25", g.CellSize())
	}
	if got := g.CellOf(LatLng{10.5, 20}); got != (Cell{2, 0}) {
		t.Errorf("CellOf after resize = %v, want 2,0", got)
	}

	g.SetCellSize(0)
	if g.CellSize() != 0.25 {
		t.Error("non-positive size should be ignored")
	}
}
