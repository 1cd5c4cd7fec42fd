// Package game adapts a world session to the terminal platform: it maps
// input frames onto session operations, keeps the aiming cursor and the
// status line, and draws the map around the player.
package game

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/worldofbits/internal/config"
	"github.com/vovakirdan/worldofbits/internal/core"
	"github.com/vovakirdan/worldofbits/internal/telemetry"
	"github.com/vovakirdan/worldofbits/internal/world"
)

// WinRecorder stores finished games.
type WinRecorder interface {
	RecordWin(slot string, moves, tokensLeft int) (string, error)
}

// Options configures a new game.
type Options struct {
	Config  config.Config
	Variant string // Shown in the HUD, may be empty

	// Persister and Slot select where the world is saved.
	Persister world.Persister
	Slot      string

	Wins   WinRecorder
	Logger *log.Logger

	// StartAt, when set, places the player at a world position after loading,
	// as a location fix would.
	StartAt *world.LatLng
}

// Game implements World of Bits on top of a world.Session.
type Game struct {
	session *world.Session
	cfg     config.Config
	variant string
	slot    string
	wins    WinRecorder
	logger  *log.Logger
	tracer  trace.Tracer

	// Screen dimensions
	screenW int
	screenH int

	aiming bool
	aimRow int // Cursor offset from the player cell while aiming
	aimCol int

	message      string
	messageColor core.Color
	messageTicks int

	confirmRestart bool
	winRecorded    bool
}

// New creates a game, restoring the saved world of opts.Slot if there is one.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := world.NewSession(world.Options{
		Config:    opts.Config,
		Persister: opts.Persister,
		Slot:      opts.Slot,
		Logger:    logger,
	})
	if opts.StartAt != nil {
		s.SetPlayerPosition(*opts.StartAt)
	}

	g := &Game{
		session: s,
		cfg:     opts.Config,
		variant: opts.Variant,
		slot:    opts.Slot,
		wins:    opts.Wins,
		logger:  logger,
		tracer:  telemetry.Tracer("game"),
		screenW: core.DefaultConfig().ScreenW,
		screenH: core.DefaultConfig().ScreenH,
		// A world restored in the won state was already recorded.
		winRecorded: s.Outcome() == world.OutcomeWon,
	}
	if _, holding := s.Holding(); holding || s.Moves() > 0 {
		g.say("Welcome back", core.ColorCyan)
	}
	return g
}

// Session exposes the underlying world session.
func (g *Game) Session() *world.Session {
	return g.session
}

// Close flushes the pending save.
func (g *Game) Close() {
	g.session.Close()
}

// Resize updates the screen dimensions.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Target returns the cell the next interaction applies to.
func (g *Game) Target() world.Cell {
	p := g.session.PlayerCell()
	if !g.aiming {
		return p
	}
	return p.Add(g.aimRow, g.aimCol)
}

// Aiming reports whether the arrows move the cursor instead of the player.
func (g *Game) Aiming() bool {
	return g.aiming
}

// Message returns the current status message, empty once it expired.
func (g *Game) Message() string {
	return g.message
}

// Tick advances message expiry by one frame.
func (g *Game) Tick() {
	if g.messageTicks == 0 {
		return
	}
	g.messageTicks--
	if g.messageTicks == 0 {
		g.message = ""
		g.confirmRestart = false
	}
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		return core.StepResult{State: g.State(), Changed: g.requestRestart()}
	}
	g.confirmRestart = false

	changed := false

	if in.Has(core.ActionAim) {
		g.aiming = !g.aiming
		g.aimRow, g.aimCol = 0, 0
		if g.aiming {
			g.say("Aiming: arrows move the cursor, tab to walk again", core.ColorGray)
		} else {
			g.say("Walking", core.ColorGray)
		}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		dRow, dCol, _ := a.Direction()
		if g.aiming {
			g.moveCursor(dRow, dCol)
		} else if g.move(dRow, dCol) {
			changed = true
		}
	}

	if in.Has(core.ActionInteract) && g.interact() {
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// requestRestart restarts immediately after a win, otherwise only when asked twice.
func (g *Game) requestRestart() bool {
	if g.session.Outcome() != world.OutcomeWon && !g.confirmRestart {
		g.confirmRestart = true
		g.say("Press r again to wipe this world and start over", core.ColorBrightRed)
		return false
	}

	g.session.Restart()
	g.aiming = false
	g.aimRow, g.aimCol = 0, 0
	g.confirmRestart = false
	g.winRecorded = false
	g.say("A fresh world", core.ColorCyan)
	g.logger.Info("restart", "slot", g.slot)
	return true
}

// moveCursor shifts the aiming cursor, keeping it within the neighborhood.
func (g *Game) moveCursor(dRow, dCol int) {
	r := g.cfg.Rules.NeighborhoodRadius
	g.aimRow = core.Clamp(g.aimRow+dRow, -r, r)
	g.aimCol = core.Clamp(g.aimCol+dCol, -r, r)
}

func (g *Game) move(dRow, dCol int) bool {
	_, span := g.tracer.Start(context.Background(), "session.move")
	defer span.End()

	if g.session.Outcome() == world.OutcomeWon {
		g.say("You already won. Press r for a new world", core.ColorBrightYellow)
		span.SetAttributes(attribute.Bool("frozen", true))
		return false
	}

	g.session.MovePlayer(dRow, dCol)
	span.SetAttributes(
		attribute.String("cell", g.session.PlayerCell().Key()),
		attribute.Int("moves", g.session.Moves()),
	)
	return true
}

func (g *Game) interact() bool {
	target := g.Target()

	_, span := g.tracer.Start(context.Background(), "session.interact")
	defer span.End()

	before, _ := g.session.Holding()
	res := g.session.Interact(target)
	span.SetAttributes(
		attribute.String("cell", target.Key()),
		attribute.String("result", res.String()),
	)

	g.announce(res, target, before)
	if g.session.Outcome() == world.OutcomeWon {
		g.recordWin()
	}
	return res.Changed()
}

// announce sets the status message for an interaction result.
func (g *Game) announce(res world.Result, target world.Cell, before int) {
	holding, _ := g.session.Holding()
	switch res {
	case world.ResultPickup:
		g.say(fmt.Sprintf("Picked up %d", holding), core.ColorGreen)
	case world.ResultMerge:
		v := g.session.CellState(target).Value
		g.say(fmt.Sprintf("Merged into %d", v), tokenColor(v))
	case world.ResultPlace:
		g.say(fmt.Sprintf("Placed %d", before), core.ColorGreen)
	case world.ResultRefused:
		v := g.session.CellState(target).Value
		g.say(fmt.Sprintf("Can't put %d on %d", before, v), core.ColorRed)
	case world.ResultUnreachable:
		g.say("Too far away", core.ColorRed)
	case world.ResultFrozen:
		g.say("You already won. Press r for a new world", core.ColorBrightYellow)
	case world.ResultIgnored:
		g.say("Nothing here", core.ColorGray)
	}
}

// recordWin stores the win once per game.
func (g *Game) recordWin() {
	if g.winRecorded {
		return
	}
	g.winRecorded = true

	g.say(fmt.Sprintf("You made %d in %d moves! Press r for a new world", g.cfg.Rules.WinValue, g.session.Moves()), core.ColorBrightYellow)
	if g.wins == nil {
		return
	}
	id, err := g.wins.RecordWin(g.slot, g.session.Moves(), g.session.TokenCount())
	if err != nil {
		g.logger.Error("cannot record win", "slot", g.slot, "error", err)
		return
	}
	g.logger.Info("win recorded", "slot", g.slot, "win_id", id, "moves", g.session.Moves())
}

func (g *Game) say(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
	g.messageTicks = g.cfg.Display.MessageTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	holding, _ := g.session.Holding()
	return core.GameState{
		Holding: holding,
		Moves:   g.session.Moves(),
		Tokens:  g.session.TokenCount(),
		Won:     g.session.Outcome() == world.OutcomeWon,
	}
}
