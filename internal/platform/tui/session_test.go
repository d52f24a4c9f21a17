package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  30,
	TickRate: 30,
	Seed:     7,
}

func memoryServices() Services {
	return NewServices(nil, "", config.DefaultT2048Config(), nil)
}

// send feeds keys to m and returns the resulting session and last command.
func send(t *testing.T, m SessionModel, keys ...string) (SessionModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		if m, ok = next.(SessionModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func tick(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(SessionModel)
}

func TestSessionStartsWithProfileSetup(t *testing.T) {
	svc := memoryServices()
	m := NewSessionModel(svc, testRuntime, "alice")

	if m.screen != screenProfile {
		t.Fatalf("screen = %v, expected profile setup", m.screen)
	}
	if !strings.Contains(m.View(), "WELCOME") {
		t.Error("setup screen should greet the player")
	}

	// Esc cannot skip setup
	m, _ = send(t, m, "esc")
	if m.screen != screenProfile {
		t.Fatal("esc should not leave setup")
	}

	m, _ = send(t, m, "enter")
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after saving", m.screen)
	}
	p, err := svc.Profiles.Get()
	if err != nil || p == nil || p.Username != "alice" {
		t.Fatalf("profile = %+v, %v", p, err)
	}
	if !strings.Contains(m.View(), "Hi, alice") {
		t.Error("menu should greet the saved player")
	}
}

func TestSessionProfileValidation(t *testing.T) {
	svc := memoryServices()
	m := NewSessionModel(svc, testRuntime, "")

	m, _ = send(t, m, "a", "!", "enter")
	if m.screen != screenProfile {
		t.Fatal("invalid name should keep the setup screen")
	}
	view := m.View()
	if !strings.Contains(view, "at least 3 characters") || !strings.Contains(view, "can only contain") {
		t.Errorf("validation errors not shown:\n%s", view)
	}
	if svc.Profiles.HasProfile() {
		t.Error("invalid name must not be saved")
	}
}

func newPlayerSession(t *testing.T) SessionModel {
	t.Helper()
	svc := memoryServices()
	if _, err := svc.Profiles.Save("tester"); err != nil {
		t.Fatal(err)
	}
	m := NewSessionModel(svc, testRuntime, "")
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}
	return m
}

func TestSessionGameAndBack(t *testing.T) {
	m := newPlayerSession(t)

	m, _ = send(t, m, "enter")
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.game.ID() != t2048.IDClassic {
		t.Errorf("game = %s, expected classic", m.game.game.ID())
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("game view should show the HUD")
	}

	// B only works once the board is paused
	m, _ = send(t, m, "b")
	m = tick(t, m)
	if m.screen != screenGame {
		t.Fatal("b while playing should stay in game")
	}

	m, _ = send(t, m, "p")
	m = tick(t, m)
	m, _ = send(t, m, "b")
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}
}

func TestSessionEndlessMode(t *testing.T) {
	m := newPlayerSession(t)

	m, _ = send(t, m, "down", "enter")
	if m.screen != screenGame || m.game.game.ID() != t2048.IDEndless {
		t.Fatalf("expected endless game, got screen %v", m.screen)
	}
}

func TestSessionChallenge(t *testing.T) {
	m := newPlayerSession(t)

	m, _ = send(t, m, "down", "down", "enter")
	if m.screen != screenChallenges {
		t.Fatalf("screen = %v, expected challenges", m.screen)
	}
	if !strings.Contains(m.View(), "Warm-up") {
		t.Error("challenge list should name the challenges")
	}

	m, _ = send(t, m, "down", "enter")
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	g, ok := m.game.game.(*t2048.Game)
	if !ok {
		t.Fatalf("game is %T", m.game.game)
	}
	if ch := g.Challenge(); ch == nil || ch.ID != 2 {
		t.Errorf("Challenge() = %+v, expected challenge 2", ch)
	}
	if g.Rules().WinValue != 256 {
		t.Errorf("WinValue = %d, expected 256", g.Rules().WinValue)
	}
}

func TestSessionLeaderboardAndScores(t *testing.T) {
	m := newPlayerSession(t)

	m, _ = send(t, m, "down", "down", "down", "enter")
	if m.screen != screenLeaderboard {
		t.Fatalf("screen = %v, expected leaderboard", m.screen)
	}
	if view := m.View(); !strings.Contains(view, "LEADERBOARD") || !strings.Contains(view, "GameMaster") {
		t.Errorf("leaderboard view missing content:\n%s", view)
	}

	m, _ = send(t, m, "right")
	if m.leaderboard.Category() != "tile" {
		t.Errorf("Category() = %s after right, expected tile", m.leaderboard.Category())
	}

	m, _ = send(t, m, "esc", "down", "down", "down", "down", "enter")
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("scores without a database should be empty")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newPlayerSession(t)

	m, cmd := send(t, m, "q")
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit the session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should send tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRecorderSavesScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	svc := NewServices(store, userNamespace("bob"), config.DefaultT2048Config(), nil)
	rec := svc.Recorder(t2048.IDEndless)

	if err := rec.RecordGame(session.Result{Moves: 40, BestTile: 128, Score: 900}); err != nil {
		t.Fatal(err)
	}
	// Empty games still count in stats but not on the score table
	if err := rec.RecordGame(session.Result{}); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores(t2048.IDEndless, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 900 {
		t.Errorf("TopScores() = %+v, expected one score of 900", scores)
	}

	st, err := svc.Stats.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, expected 2", st.GamesPlayed)
	}
	if best, _ := rec.BestScore(); best != 900 {
		t.Errorf("BestScore() = %d, expected 900", best)
	}

	// Another SSH user does not see bob's stats
	other := NewServices(store, userNamespace("eve"), config.DefaultT2048Config(), nil)
	if st, _ := other.Stats.Stats(); st.GamesPlayed != 0 {
		t.Errorf("eve GamesPlayed = %d, expected 0", st.GamesPlayed)
	}
}
