package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/worldofbits/internal/storage"
)

type fakeWinsSource struct {
	wins []storage.WinEntry
	err  error
}

func (f fakeWinsSource) RecentWins(limit int) ([]storage.WinEntry, error) {
	return f.wins, f.err
}

func TestWinRows(t *testing.T) {
	at := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
	rows := WinRows([]storage.WinEntry{
		{Slot: "ssh:alice", Moves: 412, TokensLeft: 30, CreatedAt: at},
		{Slot: "local", Moves: 999, TokensLeft: 2, CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("WinRows() returned %d rows", len(rows))
	}
	if rows[0][1] != "alice" || rows[0][2] != "412" || rows[0][4] != "Mar 04 15:30" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][1] != "local" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestWinsModelEmpty(t *testing.T) {
	m := NewWinsModel(fakeWinsSource{}, 80, 24)
	if !strings.Contains(m.View(), "Nobody has made 2048 yet") {
		t.Error("empty board should say so")
	}
}

func TestWinsModelError(t *testing.T) {
	m := NewWinsModel(fakeWinsSource{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("board should show the load error")
	}
}

func TestWinsModelQuit(t *testing.T) {
	m := NewWinsModel(fakeWinsSource{wins: []storage.WinEntry{{Slot: "local", Moves: 1}}}, 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if next.(WinsModel).View() != "" {
		t.Error("quitting board should render nothing")
	}
}
