package world

import (
	"iter"
	"math"
)

// LatLng is a position in world space, in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Bounds is an axis-aligned region of world space.
// Min is the south-west corner, Max the north-east corner.
type Bounds struct {
	Min LatLng
	Max LatLng
}

// Grid maps between world positions and cells.
// Cell (i, j) covers [origin.Lat + i*size, origin.Lat + (i+1)*size) by
// [origin.Lng + j*size, origin.Lng + (j+1)*size); rows grow northward.
type Grid struct {
	origin LatLng
	size   float64
}

// NewGrid creates a grid anchored at origin with square cells of size degrees.
func NewGrid(origin LatLng, size float64) *Grid {
	return &Grid{origin: origin, size: size}
}

// Origin returns the world position of the south-west corner of cell (0, 0).
func (g *Grid) Origin() LatLng {
	return g.origin
}

// CellSize returns the cell edge length in degrees.
func (g *Grid) CellSize() float64 {
	return g.size
}

// SetCellSize changes the cell edge length. Cells are identified by index
// only, so tokens already stored keep their coordinates.
func (g *Grid) SetCellSize(size float64) {
	if size > 0 {
		g.size = size
	}
}

// CellOf returns the cell containing pos.
func (g *Grid) CellOf(pos LatLng) Cell {
	return Cell{
		I: int(math.Floor((pos.Lat - g.origin.Lat) / g.size)),
		J: int(math.Floor((pos.Lng - g.origin.Lng) / g.size)),
	}
}

// Center returns the world position at the centre of c.
func (g *Grid) Center(c Cell) LatLng {
	return LatLng{
		Lat: g.origin.Lat + (float64(c.I)+0.5)*g.size,
		Lng: g.origin.Lng + (float64(c.J)+0.5)*g.size,
	}
}

// Snap returns the centre of the cell containing pos.
func (g *Grid) Snap(pos LatLng) LatLng {
	return g.Center(g.CellOf(pos))
}

// Bounds returns the world region covered by c.
func (g *Grid) Bounds(c Cell) Bounds {
	return Bounds{
		Min: LatLng{
			Lat: g.origin.Lat + float64(c.I)*g.size,
			Lng: g.origin.Lng + float64(c.J)*g.size,
		},
		Max: LatLng{
			Lat: g.origin.Lat + float64(c.I+1)*g.size,
			Lng: g.origin.Lng + float64(c.J+1)*g.size,
		},
	}
}

// Cells yields every cell overlapping view, northernmost row first and
// west to east within a row. Cells that only touch the north or east edge
// of view are left out. The sequence can be ranged over repeatedly.
func (g *Grid) Cells(view Bounds) iter.Seq[Cell] {
	lo := g.CellOf(view.Min)
	hi := Cell{
		I: max(lo.I, g.lastIndex(view.Max.Lat-g.origin.Lat)),
		J: max(lo.J, g.lastIndex(view.Max.Lng-g.origin.Lng)),
	}
	return func(yield func(Cell) bool) {
		for i := hi.I; i >= lo.I; i-- {
			for j := lo.J; j <= hi.J; j++ {
				if !yield(Cell{I: i, J: j}) {
					return
				}
			}
		}
	}
}

// lastIndex returns the index of the last cell starting before offset.
// An offset on a grid line belongs to the cell below it.
func (g *Grid) lastIndex(offset float64) int {
	return int(math.Ceil(offset/g.size)) - 1
}
