package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won" // Target reached, waiting for continue
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Challenge int // Challenge ID, 0 if none
	Target    int // 0 in endless
	Score     int
	Best      int
	Moves     int
	Grid      string // engine.Grid.String() form
	MaxTile   int
	Undo      int // Snapshots available to undo
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.sess.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case st.Over:
		state = StateGameOver
	case g.sess.AwaitingContinue():
		state = StateWon
	}

	challenge := 0
	if g.challenge != nil && g.mode == ModeClassic {
		challenge = g.challenge.ID
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Challenge: challenge,
		Target:    g.sess.Rules().WinValue,
		Score:     st.Score,
		Best:      st.BestScore,
		Moves:     st.Moves,
		Grid:      st.Grid.String(),
		MaxTile:   st.Grid.MaxTile(),
		Undo:      st.History,
		State:     state,
	}
}
