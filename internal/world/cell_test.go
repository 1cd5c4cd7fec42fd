package world

import "testing"

func TestCellKey(t *testing.T) {
	tests := []struct {
		cell Cell
		key  string
	}{
		{Cell{0, 0}, "0,0"},
		{Cell{3, -7}, "3,-7"},
		{Cell{-120, 45}, "-120,45"},
	}

	for _, tc := range tests {
		if got := tc.cell.Key(); got != tc.key {
			t.Errorf("%v.Key() = %q, want %q", tc.cell, got, tc.key)
		}
		parsed, err := ParseCell(tc.key)
		if err != nil {
			t.Fatalf("ParseCell(%q) failed: %v", tc.key, err)
		}
		if parsed != tc.cell {
			t.Errorf("ParseCell(%q) = %v, want %v", tc.key, parsed, tc.cell)
		}
	}
}

func TestParseCellErrors(t *testing.T) {
	for _, key := range []string{"", "1", "a,1", "1,b", "1;2", "1,2,3"} {
		if _, err := ParseCell(key); err == nil {
			t.Errorf("ParseCell(%q) should fail", key)
		}
	}
}

func TestCellAdd(t *testing.T) {
	if got := (Cell{1, 2}).Add(-3, 4); got != (Cell{-2, 6}) {
		t.Errorf("Add = %v, want -2,6", got)
	}
}
