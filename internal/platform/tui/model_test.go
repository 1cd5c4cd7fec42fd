package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/worldofbits/internal/core"
)

type fakeGame struct {
	steps   []core.Action
	ticks   int
	w, h    int
	holding int
}

func (f *fakeGame) Resize(w, h int) { f.w, f.h = w, h }

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	for a := range in.Actions {
		f.steps = append(f.steps, a)
		if a == core.ActionInteract {
			f.holding = 2
		}
	}
	return core.StepResult{State: f.State(), Changed: true}
}

func (f *fakeGame) Tick() { f.ticks++ }

func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "MAP") }

func (f *fakeGame) State() core.GameState { return core.GameState{Holding: f.holding} }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStepsOnKeys(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runeKey(' '))
	m, _ = update(t, m, runeKey('z'))

	if len(g.steps) != 2 || g.steps[0] != core.ActionUp || g.steps[1] != core.ActionInteract {
		t.Errorf("steps = %v", g.steps)
	}
	if m.State().Holding != 2 {
		t.Errorf("State() = %+v", m.State())
	}
}

func TestModelTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})

	_, cmd := update(t, m, TickMsg{})
	if g.ticks != 1 {
		t.Errorf("ticks = %d", g.ticks)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelLayoutLeavesRoomForHelp(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})

	if g.w != 60 || g.h != 19 {
		t.Errorf("game size = %dx%d, want 60x19", g.w, g.h)
	}

	m, _ = update(t, m, runeKey('?'))
	if g.h >= 19 {
		t.Errorf("full help should take more rows, game height %d", g.h)
	}

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.w != 100 || g.h >= 40 {
		t.Errorf("after resize game size = %dx%d", g.w, g.h)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})

	view := m.View()
	if !strings.Contains(view, "MAP") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help bar")
	}
}
