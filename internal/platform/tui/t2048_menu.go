package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ChallengeModel lets users pick one of the preset challenges.
type ChallengeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // 1-based challenge ID, 0 while choosing
	quitting  bool
	back      bool
}

// NewChallengeModel creates a challenge selector.
func NewChallengeModel(width, height int) ChallengeModel {
	return ChallengeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m ChallengeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ChallengeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ChallengeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < t2048.ChallengeCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = t2048.Challenges[m.cursor].ID
	case MenuActionBack:
		m.back = true
	}
	return m, nil
}

// View renders the challenge list.
func (m ChallengeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CHALLENGES"), m.width))
	b.WriteString("\n\n")

	for i, ch := range t2048.Challenges {
		line := fmt.Sprintf("%2d. %-18s target %6s  4s: %2.0f%%",
			ch.ID, ch.Name, humanize.Comma(int64(ch.Target)), ch.Spawn4*100)
		if i == m.cursor {
			b.WriteString(centerText(cursorStyle.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen challenge ID, or 0 if still choosing.
func (m ChallengeModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ChallengeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ChallengeModel) WantsBack() bool {
	return m.back
}
