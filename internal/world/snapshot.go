package world

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/worldofbits/internal/config"
)

// ErrCorruptSnapshot is wrapped by every snapshot decoding failure.
var ErrCorruptSnapshot = errors.New("world: corrupt snapshot")

// Snapshot is the persisted form of a session.
type Snapshot struct {
	Holding        *int         `json:"holding"`
	Tokens         []TokenEntry `json:"tokens"`
	Picked         []string     `json:"picked"`
	PlayerPosition Point        `json:"playerPosition"`
	Origin         *Point       `json:"origin,omitempty"`
	Outcome        Outcome      `json:"outcome"`
	Moves          int          `json:"moves"`
}

// Point is a world position as stored on disk: X is longitude, Y latitude.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func pointOf(p LatLng) Point {
	return Point{X: p.Lng, Y: p.Lat}
}

func (p Point) latLng() LatLng {
	return LatLng{Lat: p.Y, Lng: p.X}
}

// TokenEntry is one stored token. It is encoded as a two-element array
// ["i,j", value].
type TokenEntry struct {
	Key   string
	Value int
}

// MarshalJSON implements json.Marshaler.
func (e TokenEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Key, e.Value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *TokenEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("token entry has %d elements, want 2", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Key); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Value)
}

// Encode serializes the snapshot to JSON.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses and validates a persisted snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if _, _, err := snap.decodeState(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// decodeState converts the stored keys back into a token store.
func (s Snapshot) decodeState() (*TokenStore, int, error) {
	store := NewTokenStore()
	for _, e := range s.Tokens {
		c, err := ParseCell(e.Key)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		if !config.IsPowerOfTwo(e.Value) || e.Value < 2 {
			return nil, 0, fmt.Errorf("%w: token %s has value %d", ErrCorruptSnapshot, e.Key, e.Value)
		}
		store.Put(c, e.Value)
	}
	for _, key := range s.Picked {
		c, err := ParseCell(key)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		store.MarkPicked(c)
	}

	holding := 0
	if s.Holding != nil {
		holding = *s.Holding
		if !config.IsPowerOfTwo(holding) || holding < 2 {
			return nil, 0, fmt.Errorf("%w: holding %d", ErrCorruptSnapshot, holding)
		}
	}
	if s.Outcome != OutcomeInProgress && s.Outcome != OutcomeWon {
		return nil, 0, fmt.Errorf("%w: outcome %d", ErrCorruptSnapshot, s.Outcome)
	}
	return store, holding, nil
}
