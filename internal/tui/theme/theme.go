package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is built from these hex strings
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var current = NewCatppuccinMocha()

// Current returns the active theme.
func Current() *Theme {
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	return &Styles{
		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Secondary)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		Description: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)),
		Label: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)),
		OptionSelected: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		OptionNormal: lipgloss.NewStyle().
			Foreground(c(t.FgBase)),
		Amount: lipgloss.NewStyle().
			Foreground(c(t.Success)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(c(t.Error)),
		Warning: lipgloss.NewStyle().
			Foreground(c(t.Warning)),
		Info: lipgloss.NewStyle().
			Foreground(c(t.Info)),
		HintKey: lipgloss.NewStyle().
			Foreground(c(t.FgBright)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(c(t.BgSurface2)),
		ProgressEmpty: lipgloss.NewStyle().
			Foreground(c(t.BgSurface1)),
		ButtonNormal: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Background(c(t.BgMantle)).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Secondary)).
			Bold(true).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
	}
}
