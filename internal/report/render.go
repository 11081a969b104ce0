package report

import (
	"strings"

	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/ansi"
)

// MaxWidth caps the rendered width for readability.
const MaxWidth = 120

// Render renders markdown for the terminal using glamour.
// Falls back to plain word-wrapped text if rendering fails.
func Render(md string, width int) string {
	if width <= 0 || width > MaxWidth {
		width = MaxWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return ansi.Wordwrap(md, width, "")
	}

	rendered, err := r.Render(md)
	if err != nil {
		return ansi.Wordwrap(md, width, "")
	}

	return trimTrailingBlankLines(rendered)
}

// trimTrailingBlankLines drops the padding lines glamour appends, which hold
// only spaces and style resets.
func trimTrailingBlankLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for len(lines) > 1 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
