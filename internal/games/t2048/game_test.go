package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 30,
	Seed:     42,
}

type recorder struct {
	best  int
	games []session.Result
}

func (r *recorder) BestScore() (int, error)       { return r.best, nil }
func (r *recorder) SaveBestScore(score int) error { r.best = score; return nil }
func (r *recorder) RecordGame(res session.Result) error {
	r.games = append(r.games, res)
	return nil
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

var moveCycle = []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

// tinyConfig plays on a 2x2 board where only 2s spawn.
func tinyConfig(winValue int) config.T2048Config {
	cfg := config.DefaultT2048Config()
	cfg.Grid.Size = 2
	cfg.Rules.WinValue = winValue
	cfg.Rules.Spawn4Probability = 0
	return cfg
}

// playUntil cycles through directions until done reports true.
func playUntil(t *testing.T, g *Game, done func() bool) {
	t.Helper()
	for i := 0; i < 400 && !done(); i++ {
		g.Step(press(moveCycle[i%len(moveCycle)]))
	}
	if !done() {
		t.Fatalf("condition not reached, snapshot: %+v", g.Snapshot())
	}
}

func TestRegisteredModes(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{IDClassic, "2048"},
		{IDEndless, "2048 (Endless)"},
	}

	for _, tc := range tests {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("Create(%q) = %s/%s", tc.id, g.ID(), g.Title())
		}
	}
}

func TestRulesFor(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.History.Limit = 5

	classic := RulesFor(cfg, ModeClassic, nil)
	if classic.WinValue != 2048 || classic.HistoryLimit != 5 || classic.Size != 4 {
		t.Errorf("classic rules = %+v", classic)
	}

	ch := GetChallenge(3)
	withChallenge := RulesFor(cfg, ModeClassic, ch)
	if withChallenge.WinValue != 512 || withChallenge.Spawn4Probability != ch.Spawn4 {
		t.Errorf("challenge rules = %+v", withChallenge)
	}

	endless := RulesFor(cfg, ModeEndless, ch)
	if endless.WinValue != 0 {
		t.Errorf("endless should never have a target, got %d", endless.WinValue)
	}

	cfg.History.Disabled = true
	if !RulesFor(cfg, ModeClassic, nil).NoUndo {
		t.Error("history.disabled should turn off undo")
	}
}

func TestChallenges(t *testing.T) {
	if ChallengeCount() != 10 {
		t.Errorf("ChallengeCount() = %d, want 10", ChallengeCount())
	}
	if GetChallenge(0) != nil || GetChallenge(11) != nil {
		t.Error("out of range IDs should return nil")
	}
	if c := GetChallenge(1); c.Name != "Warm-up" || c.Target != 128 {
		t.Errorf("first challenge = %+v", c)
	}

	for i, c := range Challenges {
		if c.ID != i+1 {
			t.Errorf("Challenges[%d].ID = %d", i, c.ID)
		}
		if err := RulesFor(config.DefaultT2048Config(), ModeClassic, &c).Validate(); err != nil {
			t.Errorf("challenge %d has invalid rules: %v", c.ID, err)
		}
	}
}

func TestDeterministicReset(t *testing.T) {
	g1 := New()
	g1.Reset(testRuntime)
	g2 := New()
	g2.Reset(testRuntime)

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight} {
		g1.Step(press(a))
		g2.Step(press(a))
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed should replay identically:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestStepCountsAcceptedMoves(t *testing.T) {
	g := New()
	g.Reset(testRuntime)

	playUntil(t, g, func() bool { return g.State().Moves > 0 })
	if snap := g.Snapshot(); snap.Undo != 1 || snap.State != StatePlaying {
		t.Errorf("after one move: %+v", snap)
	}

	res := g.Step(press(core.ActionUndo))
	if res.State.Moves != 0 || res.Event != "Undone" {
		t.Errorf("undo: state %+v event %q", res.State, res.Event)
	}
	res = g.Step(press(core.ActionUndo))
	if res.Event != "Nothing to undo" {
		t.Errorf("second undo event = %q", res.Event)
	}
	if res = g.Step(press(core.ActionUndo)); res.Event != "Nothing to undo" {
		t.Error("repeated messages should still be reported")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := New()
	g.Reset(testRuntime)
	before := g.Snapshot().Grid

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("P should pause")
	}
	for _, a := range moveCycle {
		g.Step(press(a))
	}
	if g.Snapshot().Grid != before || g.Snapshot().State != StatePaused {
		t.Error("moves must be ignored while paused")
	}

	if res = g.Step(press(core.ActionPause)); res.State.Paused {
		t.Error("second P should resume")
	}
}

func TestWinThenContinue(t *testing.T) {
	g := New()
	g.cfg = tinyConfig(4)
	g.Reset(testRuntime)

	playUntil(t, g, func() bool { return g.State().Won || g.State().GameOver })
	if !g.State().Won {
		t.Fatalf("expected a win on the tiny board: %+v", g.Snapshot())
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("state = %s, want won", g.Snapshot().State)
	}

	res := g.Step(press(core.ActionLeft))
	if res.Event != "C to keep going, R for a new game" {
		t.Errorf("move while awaiting continue: event %q", res.Event)
	}

	res = g.Step(press(core.ActionContinue))
	if res.Event != "Keep going!" || g.Snapshot().State == StateWon {
		t.Errorf("continue: event %q, state %s", res.Event, g.Snapshot().State)
	}
}

func TestGameOverRecordsAndRestarts(t *testing.T) {
	rec := &recorder{}
	g := NewEndless()
	g.cfg = tinyConfig(0)
	g.UseRecorder(rec)
	g.Reset(testRuntime)

	playUntil(t, g, func() bool { return g.State().GameOver })
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %s", g.Snapshot().State)
	}
	if len(rec.games) != 1 || rec.games[0].Won {
		t.Fatalf("expected one lost game recorded, got %+v", rec.games)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	res := g.Step(press(core.ActionRestart))
	if res.State.GameOver || res.State.Moves != 0 || res.Event != "New game" {
		t.Errorf("restart: %+v %q", res.State, res.Event)
	}
	if len(rec.games) != 1 {
		t.Error("an already recorded game must not be recorded again")
	}
}

func TestResetSkipsAbandonedGame(t *testing.T) {
	rec := &recorder{}
	g := New()
	g.UseRecorder(rec)
	g.Reset(testRuntime)

	playUntil(t, g, func() bool { return g.State().Moves >= 2 })
	if g.State().GameOver || g.State().Won {
		t.Fatalf("expected a game in play, got %+v", g.State())
	}
	g.Reset(testRuntime)
	g.Finish()

	if len(rec.games) != 0 {
		t.Errorf("abandoned games must not count, got %+v", rec.games)
	}
}

func TestResetFallsBackToDefaultRules(t *testing.T) {
	g := New()
	g.cfg = tinyConfig(3) // not a power of two
	g.Reset(testRuntime)

	if g.Session() == nil {
		t.Fatal("Reset should always leave a session")
	}
	if got := g.Session().Grid().Size(); got != engine.DefaultSize {
		t.Errorf("grid size = %d, expected default %d", got, engine.DefaultSize)
	}
	if g.State().Moves != 0 || g.State().GameOver {
		t.Errorf("fallback game should be fresh, got %+v", g.State())
	}
}

func TestChallengeMode(t *testing.T) {
	g := New()
	g.SetChallenge(2)
	g.Reset(testRuntime)

	snap := g.Snapshot()
	if snap.Challenge != 2 || snap.Target != 256 {
		t.Errorf("challenge snapshot = %+v", snap)
	}

	g.SetChallenge(0)
	if g.Challenge() != nil || g.Rules().WinValue != 2048 {
		t.Error("SetChallenge(0) should clear the challenge")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime)

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()

	for _, want := range []string{"2048", "Score: 0", "Best: 0", "Classic", "Target: 2048", "Moves: 0", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// Every board cell interior carries a tile color
	boardX := (80 - (4*cellWidth + 1)) / 2
	grid := g.Session().Grid()
	for row := range 4 {
		for col := range 4 {
			c := s.GetCell(boardX+col*cellWidth+1, hudHeight+row*cellHeight+1)
			if c.Color != core.TileColor(grid.At(row, col)) {
				t.Errorf("cell (%d,%d) color = %d, want %d", row, col, c.Color, core.TileColor(grid.At(row, col)))
			}
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	small := testRuntime
	small.ScreenW, small.ScreenH = 20, 8
	g.Reset(small)

	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Error("tiny window should pause the game")
	}

	s := core.NewScreen(20, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Error("too small message missing")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resizing back should unpause")
	}
}
