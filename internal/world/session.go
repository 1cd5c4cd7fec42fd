package world

import (
	"fmt"
	"io"
	"iter"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/worldofbits/internal/config"
)

// Outcome is the terminal status of a session.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
)

// String returns the persisted name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress", "":
		*o = OutcomeInProgress
	case "won":
		*o = OutcomeWon
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

// Result tells the caller which transition an interaction took.
type Result int

const (
	ResultIgnored     Result = iota // empty hands, empty cell
	ResultUnreachable               // cell outside the neighborhood
	ResultFrozen                    // game already won
	ResultPickup
	ResultMerge
	ResultPlace
	ResultRefused // holding a different value than the cell
)

// String returns a short name for the result.
func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultUnreachable:
		return "unreachable"
	case ResultFrozen:
		return "frozen"
	case ResultPickup:
		return "pickup"
	case ResultMerge:
		return "merge"
	case ResultPlace:
		return "place"
	case ResultRefused:
		return "refused"
	default:
		return "unknown"
	}
}

// Changed reports whether the transition modified the session.
func (r Result) Changed() bool {
	return r == ResultPickup || r == ResultMerge || r == ResultPlace
}

// CellState is a read-only view of one cell for rendering.
type CellState struct {
	Cell      Cell
	HasToken  bool
	Value     int
	Reachable bool
	Picked    bool
}

// Options configures a new session.
type Options struct {
	Config config.Config

	// Persister, when set, restores the session from Slot and receives a
	// snapshot after every state change.
	Persister Persister
	Slot      string

	Logger *log.Logger
}

// Session owns all mutable game state: tokens, the picked set, the player's
// hand and position, and the outcome. Methods are the only mutators.
type Session struct {
	cfg     config.Config
	grid    *Grid
	store   *TokenStore
	spawner Spawner
	logger  *log.Logger
	saver   *Autosaver

	holding int // 0 means empty hands
	outcome Outcome
	player  LatLng
	moves   int
}

// NewSession creates a session, restoring the saved state of opts.Slot when
// one exists. Missing or unreadable saves start a fresh game.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:     opts.Config,
		store:   NewTokenStore(),
		spawner: NewSpawner(opts.Config.Rules),
		logger:  logger,
	}
	s.grid = NewGrid(s.startOrigin(), opts.Config.Grid.CellDegrees)
	s.player = s.grid.Center(Cell{})

	if opts.Persister != nil {
		s.load(opts.Persister, opts.Slot)
		s.saver = NewAutosaver(opts.Persister, opts.Slot, logger)
	}
	return s
}

// load restores a saved snapshot, ignoring any failure.
func (s *Session) load(p Persister, slot string) {
	data, err := p.LoadSnapshot(slot)
	if err != nil {
		s.logger.Debug("no save restored", "slot", slot, "error", err)
		return
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Debug("discarding unreadable save", "slot", slot, "error", err)
		return
	}
	if err := s.Restore(snap); err != nil {
		s.logger.Debug("discarding unreadable save", "slot", slot, "error", err)
		return
	}
	s.logger.Debug("save restored", "slot", slot, "tokens", s.store.Len(), "picked", s.store.PickedCount())
}

// startOrigin returns the configured origin, or a random one when asked for.
func (s *Session) startOrigin() LatLng {
	g := s.cfg.Grid
	if g.RandomOrigin {
		return LatLng{
			Lat: rand.Float64()*180 - 90,
			Lng: rand.Float64()*360 - 180,
		}
	}
	return LatLng{Lat: g.Origin.Lat, Lng: g.Origin.Lng}
}

// Close flushes pending saves.
func (s *Session) Close() {
	if s.saver != nil {
		s.saver.Close()
	}
}

// Rules returns the rules the session plays by.
func (s *Session) Rules() config.Rules {
	return s.cfg.Rules
}

// Grid returns the coordinate mapper of the session.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Holding returns the value in the player's hand.
func (s *Session) Holding() (int, bool) {
	return s.holding, s.holding != 0
}

// Outcome returns whether the game is still running.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Moves returns how many cells the player has walked.
func (s *Session) Moves() int {
	return s.moves
}

// TokenCount returns how many tokens are currently stored.
func (s *Session) TokenCount() int {
	return s.store.Len()
}

// PlayerPosition returns the player's world position.
func (s *Session) PlayerPosition() LatLng {
	return s.player
}

// PlayerCell returns the cell the player stands in.
func (s *Session) PlayerCell() Cell {
	return s.grid.CellOf(s.player)
}

// IsReachable reports whether the player can interact with c.
func (s *Session) IsReachable(c Cell) bool {
	r := s.cfg.Rules
	return Reachable(c, s.PlayerCell(), r.NeighborhoodRadius, r.InclusiveBoundary)
}

// EnsureSpawned materializes the spawned token of c, if it has one.
func (s *Session) EnsureSpawned(c Cell) {
	s.spawner.EnsureSpawned(s.store, c)
}

// VisibleCells yields the cells intersecting view. It does not touch game state.
func (s *Session) VisibleCells(view Bounds) iter.Seq[Cell] {
	return s.grid.Cells(view)
}

// CellState returns what is known about c without changing anything.
func (s *Session) CellState(c Cell) CellState {
	v, ok := s.store.Get(c)
	return CellState{
		Cell:      c,
		HasToken:  ok,
		Value:     v,
		Reachable: s.IsReachable(c),
		Picked:    s.store.Picked(c),
	}
}

// Interact applies the pickup, merge or place transition to c.
func (s *Session) Interact(c Cell) Result {
	if s.outcome == OutcomeWon {
		return ResultFrozen
	}
	if !s.IsReachable(c) {
		return ResultUnreachable
	}

	s.EnsureSpawned(c)
	value, hasToken := s.store.Get(c)

	var res Result
	switch {
	case hasToken && s.holding == 0:
		s.store.Remove(c)
		s.store.MarkPicked(c)
		s.holding = value
		s.checkWin(value)
		res = ResultPickup
	case hasToken && s.holding == value:
		merged := value * 2
		s.store.Put(c, merged)
		s.holding = 0
		s.checkWin(merged)
		res = ResultMerge
	case hasToken:
		return ResultRefused
	case s.holding != 0:
		s.store.Put(c, s.holding)
		s.store.Unpick(c)
		s.holding = 0
		res = ResultPlace
	default:
		return ResultIgnored
	}

	s.logger.Debug("interact", "cell", c, "result", res, "holding", s.holding, "outcome", s.outcome)
	s.save()
	return res
}

// checkWin latches the won outcome when value reaches the win value.
func (s *Session) checkWin(value int) bool {
	if s.outcome == OutcomeWon || value != s.cfg.Rules.WinValue {
		return false
	}
	s.outcome = OutcomeWon
	s.logger.Info("game won", "value", value, "moves", s.moves)
	return true
}

// MovePlayer walks the player by whole cells and centres them in the new cell.
func (s *Session) MovePlayer(dRow, dCol int) {
	if s.outcome == OutcomeWon || (dRow == 0 && dCol == 0) {
		return
	}
	s.player = s.grid.Center(s.PlayerCell().Add(dRow, dCol))
	s.moves++
	s.save()
}

// SetPlayerPosition moves the player to an arbitrary world position, as a
// location sensor would.
func (s *Session) SetPlayerPosition(pos LatLng) {
	if s.outcome == OutcomeWon || pos == s.player {
		return
	}
	s.player = pos
	s.save()
}

// Restart clears all state and starts a new game.
func (s *Session) Restart() {
	s.store.Clear()
	s.holding = 0
	s.outcome = OutcomeInProgress
	s.moves = 0
	s.grid = NewGrid(s.startOrigin(), s.grid.CellSize())
	s.player = s.grid.Center(Cell{})
	s.logger.Debug("restart", "origin", s.grid.Origin())
	s.save()
}

// Snapshot captures the persisted state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tokens:         make([]TokenEntry, 0, s.store.Len()),
		Picked:         make([]string, 0, s.store.PickedCount()),
		PlayerPosition: pointOf(s.player),
		Outcome:        s.outcome,
		Moves:          s.moves,
	}
	if s.holding != 0 {
		h := s.holding
		snap.Holding = &h
	}
	origin := pointOf(s.grid.Origin())
	snap.Origin = &origin

	for _, c := range s.store.Tokens() {
		v, _ := s.store.Get(c)
		snap.Tokens = append(snap.Tokens, TokenEntry{Key: c.Key(), Value: v})
	}
	for _, c := range s.store.PickedCells() {
		snap.Picked = append(snap.Picked, c.Key())
	}
	return snap
}

// Restore replaces the session state with snap. On error the session is unchanged.
func (s *Session) Restore(snap Snapshot) error {
	store, holding, err := snap.decodeState()
	if err != nil {
		return err
	}

	s.store = store
	s.holding = holding
	s.outcome = snap.Outcome
	s.moves = snap.Moves
	if snap.Origin != nil {
		s.grid = NewGrid(snap.Origin.latLng(), s.grid.CellSize())
	}
	s.player = snap.PlayerPosition.latLng()
	return nil
}

// save hands the current snapshot to the autosaver, if any.
func (s *Session) save() {
	if s.saver == nil {
		return
	}
	data, err := s.Snapshot().Encode()
	if err != nil {
		s.logger.Debug("encode snapshot", "error", err)
		return
	}
	s.saver.Submit(data)
}
