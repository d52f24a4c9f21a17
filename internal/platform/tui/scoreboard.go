package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Scoreboard layout constants
const (
	tableChrome = 9   // Title, tabs, summary, borders and help
	maxScores   = 100 // Max scores to load
)

// scoreTab is one game mode shown on the scoreboard.
type scoreTab struct {
	ID    string
	Title string
}

var scoreTabs = []scoreTab{
	{ID: t2048.IDClassic, Title: "Classic"},
	{ID: t2048.IDEndless, Title: "Endless"},
}

// TabKeyMap defines the key bindings of tabbed table screens.
type TabKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TabKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TabKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultTabKeyMap returns default key bindings.
func DefaultTabKeyMap() TabKeyMap {
	return TabKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// newTable builds a focused table with the shared styles.
func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, height-tableChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// renderTabs draws a tab bar, falling back to "< current >" when narrow.
func renderTabs(titles []string, active, width int) string {
	tabs := make([]string, len(titles))
	for i, t := range titles {
		if i == active {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > width-4 {
		line = fmt.Sprintf("< %s >", titles[active])
	}
	return centerText(line, width)
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	svc      Services
	tab      int
	scores   []storage.ScoreEntry
	summary  string
	table    table.Model
	help     help.Model
	keys     TabKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(svc Services, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		svc:    svc,
		keys:   DefaultTabKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadSummary()
	m.loadScores()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	dateWidth := min(20, max(12, m.width-30))
	return newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: dateWidth},
	}, m.height)
}

// loadSummary fills the summary line from the player's stats.
func (m *ScoreboardModel) loadSummary() {
	st, err := m.svc.Stats.Stats()
	if err != nil {
		m.svc.Logger.Warn("could not load stats", "error", err)
		return
	}
	if st.GamesPlayed == 0 {
		m.summary = "No games finished yet"
		return
	}
	m.summary = fmt.Sprintf("Played %d  |  Won %d (%.1f%%)  |  Best tile %s  |  Avg moves %.0f",
		st.GamesPlayed, st.GamesWon, st.WinRatePercent(), humanize.Comma(int64(st.BestTile)), st.AverageMoves())
}

// loadScores loads scores for the active tab.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.svc.Store != nil {
		scores, err := m.svc.Store.TopScores(scoreTabs[m.tab].ID, maxScores)
		if err != nil {
			m.svc.Logger.Warn("could not load scores", "game", scoreTabs[m.tab].ID, "error", err)
		} else {
			m.scores = scores
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(s.Score)),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.tab = (m.tab + 1) % len(scoreTabs)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(scoreTabs) - 1) % len(scoreTabs)
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	titles := make([]string, len(scoreTabs))
	for i, t := range scoreTabs {
		titles[i] = t.Title
	}
	b.WriteString(renderTabs(titles, m.tab, m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.summary, m.width)))
	b.WriteString("\n")

	content := m.table.View()
	if len(m.scores) == 0 {
		content = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(content)))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// WantsBack returns true if user wants to go back to menu.
func (m ScoreboardModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
