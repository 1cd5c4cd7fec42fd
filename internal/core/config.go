package core

// RuntimeConfig contains the terminal parameters the platform passes to the game.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState summarizes the game for the platform.
type GameState struct {
	Holding int  // Value in the player's hand, 0 when empty
	Moves   int  // Cells walked
	Tokens  int  // Tokens currently on the map
	Won     bool // Whether the win value was reached
}

// StepResult is returned by Game.Step() after each input or tick.
type StepResult struct {
	State   GameState
	Changed bool // Whether the input changed the game
}
