package config

import (
	_ "embed"
)

//go:embed defaults/bits.yaml
var defaultBitsYAML []byte

// DefaultRules returns the rules of the classic game.
func DefaultRules() Rules {
	return Rules{
		NeighborhoodRadius: 8,
		InclusiveBoundary:  false,
		SpawnProbability:   0.1,
		ValueExponentRange: 3,
		WinValue:           2048,
	}
}

// Default returns the default World of Bits configuration.
func Default() Config {
	return Config{
		Rules: DefaultRules(),
		Grid: Grid{
			CellDegrees: 1e-4,
			Origin: LatLng{
				Lat: 36.98949379578401,
				Lng: -122.06277128548504,
			},
		},
		Display: Display{
			CellWidth:    7,
			CellHeight:   3,
			TickRate:     30,
			MessageTicks: 60,
		},
	}
}
