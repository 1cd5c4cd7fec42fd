package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// TokenStore holds the token in each occupied cell and the set of cells
// that have ever handed a token to the player.
type TokenStore struct {
	tokens map[Cell]int
	picked mapset.Set[Cell]
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[Cell]int),
		picked: mapset.New[Cell](),
	}
}

// Get returns the token in c, if any.
func (s *TokenStore) Get(c Cell) (int, bool) {
	v, ok := s.tokens[c]
	return v, ok
}

// Put stores value in c, replacing any existing token.
func (s *TokenStore) Put(c Cell, value int) {
	s.tokens[c] = value
}

// Remove deletes the token in c.
func (s *TokenStore) Remove(c Cell) {
	delete(s.tokens, c)
}

// Len returns the number of occupied cells.
func (s *TokenStore) Len() int {
	return len(s.tokens)
}

// MarkPicked records that c gave its token to the player.
func (s *TokenStore) MarkPicked(c Cell) {
	s.picked.Put(c)
}

// Unpick forgets that c was picked.
func (s *TokenStore) Unpick(c Cell) {
	s.picked.Remove(c)
}

// Picked reports whether c is in the picked set.
func (s *TokenStore) Picked(c Cell) bool {
	return s.picked.Has(c)
}

// PickedCount returns the size of the picked set.
func (s *TokenStore) PickedCount() int {
	return s.picked.Size()
}

// Tokens returns the occupied cells ordered by row, then column.
func (s *TokenStore) Tokens() []Cell {
	cells := make([]Cell, 0, len(s.tokens))
	for c := range s.tokens {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

// PickedCells returns the picked set ordered by row, then column.
func (s *TokenStore) PickedCells() []Cell {
	cells := make([]Cell, 0, s.picked.Size())
	s.picked.Each(func(c Cell) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, compareCells)
	return cells
}

// Clear empties both the tokens and the picked set.
func (s *TokenStore) Clear() {
	s.tokens = make(map[Cell]int)
	s.picked = mapset.New[Cell]()
}
