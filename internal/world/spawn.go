package world

import (
	"math"

	"github.com/vovakirdan/worldofbits/internal/config"
)

// valueDrawSuffix separates the value draw of a cell from its existence draw.
const valueDrawSuffix = ",initialValue"

// Spawner decides which cells start out holding a token.
type Spawner struct {
	Probability   float64
	ExponentRange int
}

// NewSpawner builds a spawner from the game rules.
func NewSpawner(r config.Rules) Spawner {
	return Spawner{
		Probability:   r.SpawnProbability,
		ExponentRange: r.ValueExponentRange,
	}
}

// Peek returns the token an untouched cell would hold, without storing it.
func (s Spawner) Peek(c Cell) (int, bool) {
	key := c.Key()
	if Luck(key) >= s.Probability {
		return 0, false
	}
	exp := 1 + int(math.Floor(Luck(key+valueDrawSuffix)*float64(s.ExponentRange)))
	return 1 << exp, true
}

// EnsureSpawned stores the spawned token of c unless the cell already holds
// a token or was picked. It reports whether a token was created.
func (s Spawner) EnsureSpawned(store *TokenStore, c Cell) bool {
	if _, ok := store.Get(c); ok || store.Picked(c) {
		return false
	}
	value, ok := s.Peek(c)
	if !ok {
		return false
	}
	store.Put(c, value)
	return true
}
