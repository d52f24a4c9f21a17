package core

// Tick rate bounds. 2048 only redraws on input, so the platform never needs
// more than a modest refresh rate.
const (
	MinTickRate = 1
	MaxTickRate = 120
)

// RuntimeConfig holds the per-session settings the platform passes to a mode.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Redraws per second
	Seed     int64 // RNG seed for tile spawns, 0 picks one from the clock
}

// DefaultConfig returns the settings used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Normalized fills unset sizes from DefaultConfig and clamps TickRate.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	switch {
	case c.TickRate <= 0:
		c.TickRate = def.TickRate
	case c.TickRate > MaxTickRate:
		c.TickRate = MaxTickRate
	}
	return c
}

// GameState is the status a mode reports back to the platform.
type GameState struct {
	Score    int
	Best     int  // Best score known to the game
	Moves    int  // Accepted moves in the current game
	Won      bool // Target reached at least once this game
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Event is a short message for the status line, empty if nothing happened.
	Event string
}
