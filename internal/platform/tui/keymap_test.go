package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// keyMsg builds a key message the way Bubble Tea reports it.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"s", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"enter", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"u", core.ActionUndo, false},
		{"backspace", core.ActionUndo, false},
		{"c", core.ActionContinue, false},
		{"b", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("u"), &frame) {
		t.Error("undo should not quit")
	}
	if !frame.Has(core.ActionUndo) {
		t.Error("frame should hold undo")
	}

	frame.Clear()
	if km.MapKeyToFrame(keyMsg("x"), &frame); !frame.Empty() {
		t.Error("unmapped key should leave the frame empty")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]MenuAction{
		"up":     MenuActionUp,
		"j":      MenuActionDown,
		"left":   MenuActionLeft,
		"tab":    MenuActionRight,
		"enter":  MenuActionSelect,
		" ":      MenuActionSelect,
		"esc":    MenuActionBack,
		"b":      MenuActionBack,
		"q":      MenuActionQuit,
		"ctrl+c": MenuActionQuit,
		"z":      MenuActionNone,
	}

	for k, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(k)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", k, got, want)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "Score")
	s.DrawTextColor(0, 1, "2048", core.ColorTile2048)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() returned %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "Score") || !strings.Contains(lines[1], "2048") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestTickInterval(t *testing.T) {
	tests := map[int]time.Duration{
		0:    time.Second,
		30:   time.Second / 30,
		5000: time.Second / time.Duration(core.MaxTickRate),
	}
	for rate, want := range tests {
		if got := tickInterval(rate); got != want {
			t.Errorf("tickInterval(%d) = %v, expected %v", rate, got, want)
		}
	}
}
