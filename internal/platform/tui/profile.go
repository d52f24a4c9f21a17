package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/profile"
)

// ProfileModel edits the player's username. In setup mode there is no way
// back: a valid name has to be saved first.
type ProfileModel struct {
	profiles *profile.Repository
	input    textinput.Model
	setup    bool
	errs     []string
	width    int
	height   int
	saved    *profile.Profile
	quitting bool
	back     bool
}

// NewProfileModel creates the username editor. suggestion prefills the
// input when no profile exists yet.
func NewProfileModel(svc Services, suggestion string, setup bool, width, height int) ProfileModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = profile.UsernameMaxLength
	ti.Width = profile.UsernameMaxLength + 1
	ti.Focus()

	if p, err := svc.Profiles.Get(); err == nil && p.Complete() {
		ti.SetValue(p.Username)
	} else if profile.ValidateUsername(suggestion).Valid {
		ti.SetValue(suggestion)
	}

	return ProfileModel{
		profiles: svc.Profiles,
		input:    ti,
		setup:    setup,
		width:    width,
		height:   height,
	}
}

// Init starts the cursor blinking.
func (m ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, nil
		case "esc":
			if !m.setup {
				m.back = true
			}
			return m, nil
		case "enter":
			p, err := m.profiles.UpdateUsername(m.input.Value())
			if err != nil {
				var verr *profile.ValidationError
				if errors.As(err, &verr) {
					m.errs = verr.Messages
				} else {
					m.errs = []string{err.Error()}
				}
				return m, nil
			}
			m.saved = p
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.errs != nil {
		m.errs = profile.ValidateUsername(m.input.Value()).Errors
	}
	return m, cmd
}

// View renders the editor.
func (m ProfileModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	title := "PROFILE"
	if m.setup {
		title = "WELCOME TO 2048"
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a username for the leaderboard", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")

	for _, e := range m.errs {
		b.WriteString(centerText(errorStyle.Render(e), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Enter: Save  |  Esc: Back"
	if m.setup {
		hint = "Enter: Save  |  Ctrl+C: Quit"
	}
	b.WriteString(dimStyle.Render(centerText(hint, m.width)))

	return b.String()
}

// Saved returns the stored profile once the user confirmed a valid name.
func (m ProfileModel) Saved() *profile.Profile {
	return m.saved
}

// WantsBack returns true if user left without saving.
func (m ProfileModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit.
func (m ProfileModel) IsQuitting() bool {
	return m.quitting
}
