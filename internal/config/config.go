// Package config provides YAML-based configuration loading for World of Bits.
package config

import (
	"errors"
	"fmt"
	"math/bits"
)

// Config contains all configuration for a World of Bits session.
type Config struct {
	Rules   Rules   `yaml:"rules"`
	Grid    Grid    `yaml:"grid"`
	Display Display `yaml:"display"`
}

// Rules are the gameplay parameters that differed between iterations of the game.
type Rules struct {
	NeighborhoodRadius int     `yaml:"neighborhood_radius"`
	InclusiveBoundary  bool    `yaml:"inclusive_boundary"` // false: |d| < R, true: |d| <= R
	SpawnProbability   float64 `yaml:"spawn_probability"`
	ValueExponentRange int     `yaml:"value_exponent_range"` // spawned values are 2^(1..range), below WinValue
	WinValue           int     `yaml:"win_value"`
}

// Grid defines how world positions map onto cells.
type Grid struct {
	CellDegrees  float64 `yaml:"cell_degrees"`
	Origin       LatLng  `yaml:"origin"`
	RandomOrigin bool    `yaml:"random_origin"`
}

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Display defines terminal presentation parameters.
type Display struct {
	CellWidth    int `yaml:"cell_width"`
	CellHeight   int `yaml:"cell_height"`
	TickRate     int `yaml:"tick_rate"`
	MessageTicks int `yaml:"message_ticks"` // how long status messages stay on screen
}

// Validate reports the first configuration value the game cannot run with.
func (c Config) Validate() error {
	r := c.Rules
	switch {
	case r.NeighborhoodRadius <= 0:
		return fmt.Errorf("config: neighborhood_radius must be positive, got %d", r.NeighborhoodRadius)
	case r.SpawnProbability < 0 || r.SpawnProbability > 1:
		return fmt.Errorf("config: spawn_probability must be within [0,1], got %g", r.SpawnProbability)
	case !IsPowerOfTwo(r.WinValue) || r.WinValue < 4:
		return fmt.Errorf("config: win_value must be a power of two >= 4, got %d", r.WinValue)
	case r.ValueExponentRange < 1:
		return fmt.Errorf("config: value_exponent_range must be at least 1, got %d", r.ValueExponentRange)
	case r.ValueExponentRange >= bits.TrailingZeros(uint(r.WinValue)):
		// Spawned tokens must stay below the win value.
		return fmt.Errorf("config: value_exponent_range %d spawns tokens up to 2^%d, must be below win_value %d",
			r.ValueExponentRange, r.ValueExponentRange, r.WinValue)
	}

	if c.Grid.CellDegrees <= 0 {
		return errors.New("config: cell_degrees must be positive")
	}

	d := c.Display
	if d.CellWidth < 3 || d.CellHeight < 1 {
		return fmt.Errorf("config: cells must be at least 3x1 characters, got %dx%d", d.CellWidth, d.CellHeight)
	}
	if d.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", d.TickRate)
	}
	if d.MessageTicks < 0 {
		return fmt.Errorf("config: message_ticks must not be negative, got %d", d.MessageTicks)
	}
	return nil
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
