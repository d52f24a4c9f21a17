package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenChallenges
	screenGame
	screenLeaderboard
	screenScores
	screenProfile
)

// challenger is implemented by games that accept a preset challenge.
type challenger interface{ SetChallenge(id int) }

// SessionModel manages the full arcade session flow: menu -> screen -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	svc         Services
	config      core.RuntimeConfig
	suggestion  string // Username offered on first setup
	screen      screen
	menu        MenuModel
	challenges  ChallengeModel
	game        Model
	leaderboard LeaderboardModel
	scores      ScoreboardModel
	profile     ProfileModel
	quitting    bool
}

// NewSessionModel creates a session for the player behind svc. Players
// without a profile start on the username setup screen.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, suggestion string) SessionModel {
	m := SessionModel{
		svc:        svc,
		config:     cfg,
		suggestion: suggestion,
	}
	if svc.Profiles.HasProfile() {
		m.menu = NewMenuModel(svc, cfg)
	} else {
		m.screen = screenProfile
		m.profile = NewProfileModel(svc, suggestion, true, cfg.ScreenW, cfg.ScreenH)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenProfile {
		return m.profile.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenMenu:
		m.menu, cmd = update(m.menu, msg)
		if m.menu.IsQuitting() {
			return m.quit()
		}
		return m.openChoice(m.menu.Selected(), cmd)

	case screenChallenges:
		m.challenges, cmd = update(m.challenges, msg)
		switch {
		case m.challenges.IsQuitting():
			return m.quit()
		case m.challenges.WantsBack():
			return m.toMenu()
		case m.challenges.Selected() > 0:
			return m.startGame(t2048.IDClassic, m.challenges.Selected())
		}

	case screenGame:
		m.game, cmd = update(m.game, msg)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			return m.toMenu()
		}

	case screenLeaderboard:
		m.leaderboard, cmd = update(m.leaderboard, msg)
		switch {
		case m.leaderboard.IsQuitting():
			return m.quit()
		case m.leaderboard.WantsBack():
			return m.toMenu()
		}

	case screenScores:
		m.scores, cmd = update(m.scores, msg)
		switch {
		case m.scores.IsQuitting():
			return m.quit()
		case m.scores.WantsBack():
			return m.toMenu()
		}

	case screenProfile:
		m.profile, cmd = update(m.profile, msg)
		switch {
		case m.profile.IsQuitting():
			return m.quit()
		case m.profile.Saved() != nil:
			m.svc.Logger.Info("profile saved", "user", m.profile.Saved().UserID, "username", m.profile.Saved().Username)
			return m.toMenu()
		case m.profile.WantsBack():
			return m.toMenu()
		}
	}

	return m, cmd
}

// update runs a screen's Update and keeps its concrete type.
func update[M tea.Model](sub M, msg tea.Msg) (M, tea.Cmd) {
	next, cmd := sub.Update(msg)
	if s, ok := next.(M); ok {
		return s, cmd
	}
	return sub, cmd
}

// openChoice leaves the menu for the selected entry.
func (m SessionModel) openChoice(choice MenuChoice, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	w, h := m.config.ScreenW, m.config.ScreenH

	switch choice {
	case ChoiceClassic:
		return m.startGame(t2048.IDClassic, 0)
	case ChoiceEndless:
		return m.startGame(t2048.IDEndless, 0)
	case ChoiceChallenges:
		m.screen = screenChallenges
		m.challenges = NewChallengeModel(w, h)
		return m, m.challenges.Init()
	case ChoiceLeaderboard:
		m.screen = screenLeaderboard
		m.leaderboard = NewLeaderboardModel(m.svc, w, h)
		return m, m.leaderboard.Init()
	case ChoiceScores:
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.svc, w, h)
		return m, m.scores.Init()
	case ChoiceProfile:
		m.screen = screenProfile
		m.profile = NewProfileModel(m.svc, m.suggestion, false, w, h)
		return m, m.profile.Init()
	}

	return m, cmd
}

// startGame creates the game and hands the terminal to it.
func (m SessionModel) startGame(id string, challenge int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		// Shouldn't happen since both modes register themselves
		m.svc.Logger.Error("could not create game", "game", id, "error", err)
		return m.toMenu()
	}
	if c, ok := game.(challenger); ok && challenge > 0 {
		c.SetChallenge(challenge)
	}

	m.svc.Logger.Debug("game started", "game", id, "challenge", challenge)
	m.screen = screenGame
	m.game = NewModel(game, m.svc, m.config)
	m.game.embedded = true
	return m, m.game.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.svc, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenChallenges:
		return m.challenges.View()
	case screenGame:
		return m.game.View()
	case screenLeaderboard:
		return m.leaderboard.View()
	case screenScores:
		return m.scores.View()
	case screenProfile:
		return m.profile.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven arcade in the local terminal.
func RunSession(svc Services, cfg core.RuntimeConfig, suggestion string) error {
	p := tea.NewProgram(
		NewSessionModel(svc, cfg, suggestion),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
