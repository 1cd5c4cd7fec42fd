package world

import "testing"

func TestReachable(t *testing.T) {
	origin := Cell{0, 0}

	tests := []struct {
		name      string
		cell      Cell
		radius    int
		inclusive bool
		want      bool
	}{
		{"own cell", Cell{0, 0}, 4, false, true},
		{"diagonal inside", Cell{3, 3}, 4, false, true},
		{"row on boundary", Cell{4, 0}, 4, false, false},
		{"column on boundary", Cell{0, -4}, 4, false, false},
		{"row on boundary inclusive", Cell{4, 0}, 4, true, true},
		{"corner inclusive", Cell{-4, 4}, 4, true, true},
		{"outside inclusive", Cell{5, 0}, 4, true, false},
		{"square not circle", Cell{7, 7}, 8, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reachable(tc.cell, origin, tc.radius, tc.inclusive); got != tc.want {
				t.Errorf("Reachable(%v, R=%d, inclusive=%v) = %v, want %v",
					tc.cell, tc.radius, tc.inclusive, got, tc.want)
			}
		})
	}
}

func TestReachableRelativeToPlayer(t *testing.T) {
	player := Cell{10, -10}
	if !Reachable(Cell{13, -7}, player, 4, false) {
		t.Error("(13,-7) should be reachable from (10,-10)")
	}
	if Reachable(Cell{3, 3}, player, 4, false) {
		t.Error("(3,3) should not be reachable from (10,-10)")
	}
}
