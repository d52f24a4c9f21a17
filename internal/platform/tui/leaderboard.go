package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

// LeaderboardModel shows the player rankings, one category per tab.
type LeaderboardModel struct {
	board    *leaderboard.Board
	category int
	entries  []leaderboard.Entry
	err      error
	table    table.Model
	help     help.Model
	keys     TabKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewLeaderboardModel loads the leaderboard for the player behind svc.
func NewLeaderboardModel(svc Services, width, height int) LeaderboardModel {
	m := LeaderboardModel{
		keys:   DefaultTabKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.board, m.err = svc.Leaderboard()
	if m.err != nil {
		svc.Logger.Warn("could not load leaderboard", "error", m.err)
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *LeaderboardModel) createTable() table.Model {
	return newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: min(20, max(10, m.width-36))},
		{Title: m.Category().Label(), Width: 12},
		{Title: "Games", Width: 6},
	}, m.height)
}

// Category returns the category of the active tab.
func (m LeaderboardModel) Category() leaderboard.Category {
	return leaderboard.Categories[m.category]
}

// load fetches the entries of the active category.
func (m *LeaderboardModel) load() {
	m.entries = nil
	if m.board != nil {
		m.entries, m.err = m.board.Top(m.Category(), 0)
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		name := e.Username
		if e.IsCurrentUser {
			name = "* " + name
		}
		rows[i] = table.Row{fmt.Sprintf("#%d", e.Rank), name, e.Value, fmt.Sprint(e.GamesPlayed)}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *LeaderboardModel) switchTab(delta int) {
	n := len(leaderboard.Categories)
	m.category = (m.category + delta + n) % n
	m.table = m.createTable()
	m.load()
}

// Init initializes the model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	titles := make([]string, len(leaderboard.Categories))
	for i, c := range leaderboard.Categories {
		titles[i] = c.Label()
	}
	b.WriteString(renderTabs(titles, m.category, m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.rankLine(), m.width)))
	b.WriteString("\n")

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render("Could not load leaderboard: " + m.err.Error())
	case len(m.entries) == 0:
		content = emptyStyle.Render("Nobody qualifies for this ranking yet.")
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(content)))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// rankLine describes where the current player stands.
func (m LeaderboardModel) rankLine() string {
	if m.board == nil {
		return ""
	}
	rank, total, ok := m.board.UserRank(m.Category())
	if !ok {
		return "You are not ranked here yet"
	}
	return fmt.Sprintf("Your rank: #%d of %d", rank, total)
}

// WantsBack returns true if user wants to go back to menu.
func (m LeaderboardModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}
