package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell addresses one grid cell by row I and column J.
type Cell struct {
	I, J int
}

// Key returns the canonical "i,j" form used as a storage key.
func (c Cell) Key() string {
	return strconv.Itoa(c.I) + "," + strconv.Itoa(c.J)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return c.Key()
}

// Add returns the cell offset by the given rows and columns.
func (c Cell) Add(dI, dJ int) Cell {
	return Cell{I: c.I + dI, J: c.J + dJ}
}

// compareCells orders cells by row, then column.
func compareCells(a, b Cell) int {
	if a.I != b.I {
		return a.I - b.I
	}
	return a.J - b.J
}

// ParseCell parses the canonical "i,j" key.
func ParseCell(key string) (Cell, error) {
	is, js, ok := strings.Cut(key, ",")
	if !ok {
		return Cell{}, fmt.Errorf("world: malformed cell key %q", key)
	}
	i, err := strconv.Atoi(strings.TrimSpace(is))
	if err != nil {
		return Cell{}, fmt.Errorf("world: malformed cell row in %q: %w", key, err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(js))
	if err != nil {
		return Cell{}, fmt.Errorf("world: malformed cell column in %q: %w", key, err)
	}
	return Cell{I: i, J: j}, nil
}
