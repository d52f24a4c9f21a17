// Package session runs a single 2048 game on top of the engine: it spawns
// tiles, keeps score and move count, tracks the win and game-over flags and
// keeps an undo history. Persistence is reached through the Recorder
// interface so the session has no storage dependency.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

var (
	ErrGameOver         = errors.New("session: game is over")
	ErrAwaitingContinue = errors.New("session: win reached, continue or restart")
	ErrNothingToUndo    = errors.New("session: nothing to undo")
	ErrNotWon           = errors.New("session: game has not been won")
	ErrInvalidRules     = errors.New("session: invalid rules")
)

// Rules are the per-game parameters of a session.
type Rules struct {
	Size              int
	WinValue          int // 0 disables winning (endless)
	Spawn4Probability float64
	InitialTiles      int
	HistoryLimit      int  // max undo snapshots kept, 0 = unbounded
	NoUndo            bool // disables undo entirely
}

// DefaultRules returns classic 4x4 rules with a 2048 target.
func DefaultRules() Rules {
	return Rules{
		Size:              engine.DefaultSize,
		WinValue:          engine.DefaultWinValue,
		Spawn4Probability: engine.DefaultSpawn4Probability,
		InitialTiles:      2,
	}
}

// Validate checks the rules for values the engine cannot play.
func (r Rules) Validate() error {
	if r.Size < 2 {
		return fmt.Errorf("%w: size %d", ErrInvalidRules, r.Size)
	}
	if r.WinValue < 0 || (r.WinValue > 0 && (r.WinValue < 4 || r.WinValue&(r.WinValue-1) != 0)) {
		return fmt.Errorf("%w: win value %d", ErrInvalidRules, r.WinValue)
	}
	if r.Spawn4Probability < 0 || r.Spawn4Probability > 1 {
		return fmt.Errorf("%w: spawn4 probability %v", ErrInvalidRules, r.Spawn4Probability)
	}
	if r.InitialTiles < 0 || r.InitialTiles > r.Size*r.Size {
		return fmt.Errorf("%w: initial tiles %d", ErrInvalidRules, r.InitialTiles)
	}
	if r.HistoryLimit < 0 {
		return fmt.Errorf("%w: history limit %d", ErrInvalidRules, r.HistoryLimit)
	}
	return nil
}

// Result describes a finished game for persistence.
type Result struct {
	Won      bool
	Moves    int
	BestTile int
	Score    int
}

// Recorder persists best score and completed games.
// Implementations may fail; the session logs failures and keeps playing.
type Recorder interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
	RecordGame(result Result) error
}

// Options configure a new session. Rand, Recorder and Logger are optional.
type Options struct {
	Rules    Rules
	Rand     *rand.Rand
	Recorder Recorder
	Logger   *log.Logger
}

// Outcome reports what a single Move did.
type Outcome struct {
	Moved      bool
	ScoreDelta int
	Spawned    engine.Cell
	DidSpawn   bool
	NewBest    bool
	JustWon    bool
	GameOver   bool
}

// State is a read-only copy of the session, used for rendering and replay checks.
type State struct {
	Grid      engine.Grid
	Score     int
	BestScore int
	Moves     int
	Won       bool
	Continued bool
	Over      bool
	History   int
}

type snapshot struct {
	grid      engine.Grid
	score     int
	moves     int
	won       bool
	continued bool
	over      bool
}

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	rules    Rules
	spawner  *engine.Spawner
	recorder Recorder
	logger   *log.Logger

	grid      engine.Grid
	score     int
	bestScore int
	moves     int
	won       bool
	continued bool
	over      bool
	recorded  bool
	history   []snapshot
}

// New validates the rules, loads the best score and starts a fresh game.
func New(opts Options) (*Session, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		rules:    opts.Rules,
		spawner:  engine.NewSpawner(rng, opts.Rules.Spawn4Probability),
		recorder: opts.Recorder,
		logger:   logger,
	}

	if s.recorder != nil {
		best, err := s.recorder.BestScore()
		if err != nil {
			s.logger.Warn("could not load best score", "error", err)
		}
		s.bestScore = best
	}

	s.start()
	return s, nil
}

// start resets the per-game state and spawns the initial tiles.
func (s *Session) start() {
	s.grid = engine.MustNew(s.rules.Size)
	for range s.rules.InitialTiles {
		s.grid, _, _ = s.spawner.Spawn(s.grid)
	}
	s.score = 0
	s.moves = 0
	s.won = false
	s.continued = false
	s.over = !engine.CanMove(s.grid)
	s.recorded = false
	s.history = s.history[:0]
}

// Move applies one move. A move that changes nothing returns a zero Outcome
// and leaves the session untouched.
func (s *Session) Move(dir engine.Direction) (Outcome, error) {
	if s.over {
		return Outcome{}, ErrGameOver
	}
	if s.awaitingContinue() {
		return Outcome{}, ErrAwaitingContinue
	}

	res, err := engine.Move(s.grid, dir)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Moved {
		return Outcome{}, nil
	}

	s.pushHistory()

	out := Outcome{Moved: true, ScoreDelta: res.Score}
	s.grid, out.Spawned, out.DidSpawn = s.spawner.Spawn(res.Grid)
	s.score = engine.AddScore(s.score, res.Score)
	s.moves++

	if s.score > s.bestScore {
		s.bestScore = s.score
		out.NewBest = true
		if s.recorder != nil {
			if err := s.recorder.SaveBestScore(s.bestScore); err != nil {
				s.logger.Warn("could not save best score", "score", s.bestScore, "error", err)
			}
		}
	}

	if !s.won && engine.HasWon(s.grid, s.rules.WinValue) {
		s.won = true
		out.JustWon = true
		s.logger.Debug("win reached", "score", s.score, "moves", s.moves)
	}

	if !engine.CanMove(s.grid) {
		s.over = true
		out.GameOver = true
		s.record()
	}

	return out, nil
}

func (s *Session) awaitingContinue() bool {
	return s.won && !s.continued && s.rules.WinValue > 0
}

func (s *Session) pushHistory() {
	if s.rules.NoUndo {
		return
	}
	if limit := s.rules.HistoryLimit; limit > 0 && len(s.history) >= limit {
		s.history = append(s.history[:0], s.history[len(s.history)-limit+1:]...)
	}
	s.history = append(s.history, snapshot{
		grid:      s.grid,
		score:     s.score,
		moves:     s.moves,
		won:       s.won,
		continued: s.continued,
		over:      s.over,
	})
}

// Undo restores the state before the last accepted move. Best score and
// recorded statistics are not rolled back.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.grid = last.grid
	s.score = last.score
	s.moves = last.moves
	s.won = last.won
	s.continued = last.continued
	s.over = last.over
	return nil
}

// Continue lets play go on after the win tile has been reached.
func (s *Session) Continue() error {
	if !s.won {
		return ErrNotWon
	}
	s.continued = true
	return nil
}

// Restart leaves the current game and starts a new one. The best score is
// kept.
func (s *Session) Restart() {
	s.Finish()
	s.start()
}

// Finish records the current game if it reached an end: the board locked
// or the win tile was reached. Abandoned games in progress are not counted.
func (s *Session) Finish() {
	if s.moves > 0 && (s.over || s.won) {
		s.record()
	}
}

func (s *Session) record() {
	if s.recorded {
		return
	}
	s.recorded = true

	result := Result{
		Won:      s.won,
		Moves:    s.moves,
		BestTile: s.grid.MaxTile(),
		Score:    s.score,
	}
	s.logger.Debug("game finished",
		"score", result.Score,
		"moves", result.Moves,
		"best_tile", result.BestTile,
		"won", result.Won,
	)

	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordGame(result); err != nil {
		s.logger.Warn("could not record game", "error", err)
	}
}

func (s *Session) Grid() engine.Grid { return s.grid }
func (s *Session) Rules() Rules      { return s.rules }
func (s *Session) Score() int        { return s.score }
func (s *Session) BestScore() int    { return s.bestScore }
func (s *Session) Moves() int        { return s.moves }
func (s *Session) Won() bool         { return s.won }
func (s *Session) Continued() bool   { return s.continued }
func (s *Session) Over() bool        { return s.over }
func (s *Session) HistoryLen() int   { return len(s.history) }
func (s *Session) CanUndo() bool     { return len(s.history) > 0 }

// AwaitingContinue reports whether moves are blocked until Continue or Restart.
func (s *Session) AwaitingContinue() bool { return s.awaitingContinue() }

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return State{
		Grid:      s.grid,
		Score:     s.score,
		BestScore: s.bestScore,
		Moves:     s.moves,
		Won:       s.won,
		Continued: s.continued,
		Over:      s.over,
		History:   len(s.history),
	}
}
