package t2048

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game implements registry.Game for 2048 on top of a session.
type Game struct {
	mode      Mode
	cfg       config.T2048Config
	challenge *Challenge
	recorder  session.Recorder
	logger    *log.Logger

	sess *session.Session
	tick uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	event    string // Last status message
	fresh    bool   // event was set during the current Step
	newTile  engine.Cell
	hasNew   bool
}

// Package-level config applied to games created afterwards.
var defaultConfig = config.DefaultT2048Config()

// SetConfig sets the config used by New and NewEndless.
// Call it once at startup, before any game is created.
func SetConfig(cfg config.T2048Config) {
	defaultConfig = cfg
}

// New creates a classic 2048 game.
func New() *Game {
	return &Game{mode: ModeClassic, cfg: defaultConfig}
}

// NewEndless creates an endless 2048 game with no target tile.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, cfg: defaultConfig}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// SetChallenge plays the challenge with the given ID from the next Reset.
// 0 clears it. Unknown IDs are ignored. Endless games have no challenges.
func (g *Game) SetChallenge(id int) {
	g.challenge = GetChallenge(id)
}

// Challenge returns the active challenge, nil if none.
func (g *Game) Challenge() *Challenge {
	return g.challenge
}

// UseRecorder sets where best score and finished games are persisted.
func (g *Game) UseRecorder(r session.Recorder) {
	g.recorder = r
}

// UseLogger sets the logger handed to the session.
func (g *Game) UseLogger(l *log.Logger) {
	g.logger = l
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Rules returns the rules the next Reset will use.
func (g *Game) Rules() session.Rules {
	return RulesFor(g.cfg, g.mode, g.challenge)
}

// Session exposes the running session, nil before the first Reset.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Reset starts a new game. A previous game that was won is recorded first.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Finish()

	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	rules := g.Rules()
	opts := session.Options{
		Rules:    rules,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		Recorder: g.recorder,
		Logger:   g.logger,
	}
	sess, err := session.New(opts)
	if err != nil {
		g.logger.Error("invalid rules, falling back to defaults", "error", err)
		opts.Rules = session.DefaultRules()
		if sess, err = session.New(opts); err != nil {
			panic(fmt.Sprintf("t2048: default rules rejected: %v", err))
		}
	}

	g.sess = sess
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.event = ""
	g.fresh = false
	g.hasNew = false
	g.checkScreenSize()
}

// Finish records the current game if it has unrecorded moves.
func (g *Game) Finish() {
	if g.sess != nil {
		g.sess.Finish()
	}
}

// Resize updates the screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board and HUD.
func (g *Game) checkScreenSize() {
	n := g.Rules().Size
	if g.sess != nil {
		n = g.sess.Grid().Size()
	}
	minW := n*cellWidth + 1
	minH := n*cellHeight + 1 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step handles one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.fresh = false
	switch {
	case in.Has(core.ActionRestart):
		g.sess.Restart()
		g.hasNew = false
		g.say("New game")
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionContinue):
		if err := g.sess.Continue(); err == nil {
			g.say("Keep going!")
		}
	default:
		if dir, ok := direction(in); ok {
			g.move(dir)
		}
	}

	res := core.StepResult{State: g.State()}
	if g.fresh {
		res.Event = g.event
	}
	return res
}

func (g *Game) say(msg string) {
	g.event = msg
	g.fresh = true
}

func direction(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// move applies dir and turns the outcome into a status message.
func (g *Game) move(dir engine.Direction) {
	out, err := g.sess.Move(dir)
	switch {
	case errors.Is(err, session.ErrAwaitingContinue):
		g.say("C to keep going, R for a new game")
		return
	case err != nil:
		return
	case !out.Moved:
		return
	}

	g.newTile, g.hasNew = out.Spawned, out.DidSpawn
	switch {
	case out.GameOver:
		g.say("No moves left")
	case out.JustWon:
		g.say(fmt.Sprintf("%d reached!", g.sess.Rules().WinValue))
	case out.NewBest:
		g.say("New best score!")
	default:
		g.event = ""
	}
}

func (g *Game) undo() {
	err := g.sess.Undo()
	switch {
	case err == nil:
		g.hasNew = false
		g.say("Undone")
	case g.sess.Rules().NoUndo:
		g.say("Undo is disabled")
	default:
		g.say("Nothing to undo")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.Score(),
		Best:     g.sess.BestScore(),
		Moves:    g.sess.Moves(),
		Won:      g.sess.Won(),
		GameOver: g.sess.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}
