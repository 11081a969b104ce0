package testfixtures

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of color codes across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// WindowSize returns the canonical window size message.
func WindowSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: TestTermWidth, Height: TestTermHeight}
}

// Key press messages for the navigation keys.
var (
	KeyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	KeyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	KeyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	KeyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	KeyUp       = tea.KeyPressMsg{Code: tea.KeyUp}
	KeyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	KeyCtrlC    = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
)

// Rune returns the key press for a printable character.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Type returns one key press per character of s.
func Type(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, Rune(r))
	}
	return msgs
}

// IsQuit reports whether cmd produces tea.QuitMsg.
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
