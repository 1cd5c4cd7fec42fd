package world

import "testing"

// spawningCell returns the first cell near the origin that spawns a token.
func spawningCell(t *testing.T, sp Spawner) Cell {
	t.Helper()
	for i := -30; i <= 30; i++ {
		for j := -30; j <= 30; j++ {
			c := Cell{i, j}
			if _, ok := sp.Peek(c); ok {
				return c
			}
		}
	}
	t.Fatal("no spawning cell found")
	return Cell{}
}

// barrenCell returns the first cell near the origin that never spawns.
func barrenCell(t *testing.T, sp Spawner) Cell {
	t.Helper()
	for i := -30; i <= 30; i++ {
		for j := -30; j <= 30; j++ {
			c := Cell{i, j}
			if _, ok := sp.Peek(c); !ok {
				return c
			}
		}
	}
	t.Fatal("no barren cell found")
	return Cell{}
}

func TestSpawnIsDeterministic(t *testing.T) {
	sp := Spawner{Probability: 0.1, ExponentRange: 3}

	for i := -10; i <= 10; i++ {
		for j := -10; j <= 10; j++ {
			c := Cell{i, j}
			a, b := NewTokenStore(), NewTokenStore()
			sp.EnsureSpawned(a, c)
			sp.EnsureSpawned(b, c)

			va, oka := a.Get(c)
			vb, okb := b.Get(c)
			if va != vb || oka != okb {
				t.Fatalf("cell %v spawned (%d,%v) then (%d,%v)", c, va, oka, vb, okb)
			}
		}
	}
}

func TestSpawnValues(t *testing.T) {
	sp := Spawner{Probability: 1, ExponentRange: 3}
	seen := map[int]bool{}

	for i := range 40 {
		for j := range 40 {
			v, ok := sp.Peek(Cell{i, j})
			if !ok {
				t.Fatalf("probability 1 should always spawn, cell %d,%d did not", i, j)
			}
			if v != 2 && v != 4 && v != 8 {
				t.Fatalf("range 3 spawned %d", v)
			}
			seen[v] = true
		}
	}
	if len(seen) != 3 {
		t.Errorf("saw values %v, want all of 2, 4, 8", seen)
	}
}

func TestSpawnProbabilityZero(t *testing.T) {
	sp := Spawner{Probability: 0, ExponentRange: 3}
	store := NewTokenStore()
	for i := range 30 {
		for j := range 30 {
			if sp.EnsureSpawned(store, Cell{i, j}) {
				t.Fatalf("probability 0 spawned at %d,%d", i, j)
			}
		}
	}
	if store.Len() != 0 {
		t.Errorf("store has %d tokens, want 0", store.Len())
	}
}

func TestEnsureSpawnedIsIdempotent(t *testing.T) {
	sp := Spawner{Probability: 0.1, ExponentRange: 3}
	c := spawningCell(t, sp)
	store := NewTokenStore()

	if !sp.EnsureSpawned(store, c) {
		t.Fatal("first EnsureSpawned should create a token")
	}
	first, _ := store.Get(c)
	if sp.EnsureSpawned(store, c) {
		t.Error("second EnsureSpawned should be a no-op")
	}
	second, _ := store.Get(c)
	if first != second || store.Len() != 1 {
		t.Errorf("store changed: %d -> %d, len %d", first, second, store.Len())
	}
}

func TestEnsureSpawnedKeepsExistingToken(t *testing.T) {
	sp := Spawner{Probability: 1, ExponentRange: 3}
	store := NewTokenStore()
	c := Cell{1, 1}
	store.Put(c, 512)

	sp.EnsureSpawned(store, c)
	if v, _ := store.Get(c); v != 512 {
		t.Errorf("token = %d, want 512 kept", v)
	}
}

func TestPickedCellsNeverRespawn(t *testing.T) {
	sp := Spawner{Probability: 0.1, ExponentRange: 3}
	c := spawningCell(t, sp)
	store := NewTokenStore()

	sp.EnsureSpawned(store, c)
	store.Remove(c)
	store.MarkPicked(c)

	for range 3 {
		if sp.EnsureSpawned(store, c) {
			t.Fatal("picked cell respawned")
		}
	}
	if _, ok := store.Get(c); ok {
		t.Error("picked cell holds a token")
	}
}
