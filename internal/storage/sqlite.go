// Package storage provides SQLite-based persistence for saved games and wins.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSave is returned by LoadSnapshot when the slot has never been saved.
var ErrNoSave = errors.New("storage: no save in slot")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SaveInfo describes one save slot.
type SaveInfo struct {
	Slot      string
	UpdatedAt time.Time
}

// WinEntry represents a single finished game.
type WinEntry struct {
	ID         int64
	WinID      string
	Slot       string
	Moves      int
	TokensLeft int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Autosaves of concurrent SSH sessions queue on a single connection
	// instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS wins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			win_id TEXT NOT NULL UNIQUE,
			slot TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			tokens_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_wins_slot ON wins(slot);
		CREATE INDEX IF NOT EXISTS idx_wins_best ON wins(slot, moves ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot stores the encoded state of a slot, replacing any previous save.
func (s *Store) SaveSnapshot(slot string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, state, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		slot, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %q: %w", slot, err)
	}
	return nil
}

// LoadSnapshot returns the encoded state of a slot.
// Returns ErrNoSave if the slot is empty.
func (s *Store) LoadSnapshot(slot string) ([]byte, error) {
	var state string
	err := s.db.QueryRow("SELECT state FROM saves WHERE slot = ?", slot).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %q: %w", slot, err)
	}
	return []byte(state), nil
}

// DeleteSnapshot removes the save of a slot.
// Reports whether there was anything to delete.
func (s *Store) DeleteSnapshot(slot string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete slot %q: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// Slots lists all saved slots, most recently updated first.
func (s *Store) Slots() ([]SaveInfo, error) {
	rows, err := s.db.Query("SELECT slot, updated_at FROM saves ORDER BY updated_at DESC, slot ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var slots []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// RecordWin records a finished game and returns its generated win ID.
func (s *Store) RecordWin(slot string, moves, tokensLeft int) (string, error) {
	winID := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO wins (win_id, slot, moves, tokens_left) VALUES (?, ?, ?, ?)",
		winID, slot, moves, tokensLeft,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record win: %w", err)
	}
	return winID, nil
}

// RecentWins retrieves the latest N wins across all slots, newest first.
func (s *Store) RecentWins(limit int) ([]WinEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, win_id, slot, moves, tokens_left, created_at
		 FROM wins
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var entries []WinEntry
	for rows.Next() {
		var e WinEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.WinID, &e.Slot, &e.Moves, &e.TokensLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// WinCount returns how many games were won in a slot.
func (s *Store) WinCount(slot string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM wins WHERE slot = ?", slot).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return n, nil
}

// BestWin returns the win of a slot with the fewest moves.
// Returns nil if the slot has no wins.
func (s *Store) BestWin(slot string) (*WinEntry, error) {
	var e WinEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, win_id, slot, moves, tokens_left, created_at
		 FROM wins
		 WHERE slot = ?
		 ORDER BY moves ASC, id ASC
		 LIMIT 1`,
		slot,
	).Scan(&e.ID, &e.WinID, &e.Slot, &e.Moves, &e.TokensLeft, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best win: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// parseTime converts a scanned datetime - handles both time.Time and string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
