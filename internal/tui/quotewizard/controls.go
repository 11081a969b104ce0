package quotewizard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/report"
	"github.com/mark3labs/quoter/internal/tui/theme"
	"github.com/mark3labs/quoter/internal/wizard"
)

var (
	errNotNumber   = errors.New("enter a number")
	errNotWhole    = errors.New("enter a whole number")
	errNegative    = errors.New("must be zero or more")
	errUnsupported = errors.New("value out of range")
)

// parseLength parses a length in feet. Empty text means zero.
func parseLength(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errNotNumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errUnsupported
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}

// maxCount keeps parsed counts well inside int range.
const maxCount = 1e9

// parseCount parses a whole-number count. Empty text means zero. Numbers
// written with a decimal point or exponent are accepted when they are whole,
// so "2.0" and "1e2" parse as 2 and 100.
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0, errNegative
		}
		return n, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errNotNumber
	}
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxCount:
		return 0, errUnsupported
	case v < 0:
		return 0, errNegative
	case v != math.Trunc(v):
		return 0, errNotWhole
	}
	return int(v), nil
}

// control is one input on a step. Controls write through to the session as
// the user edits them.
type control interface {
	Field() wizard.Field
	Focus() tea.Cmd
	Blur()
	Update(msg tea.KeyPressMsg, s *wizard.Session) tea.Cmd
	View(focused bool, width int) string
	Err() string
}

// numberControl is a free-text numeric input for a length or a count.
type numberControl struct {
	field   wizard.Field
	label   string
	unit    string
	integer bool
	input   textinput.Model
	err     string
}

func newNumberControl(field wizard.Field, label, unit string, integer bool, current float64) *numberControl {
	t := theme.Current()
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Prompt = "› "
	ti.CharLimit = 12
	ti.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	ti.SetWidth(20)
	if current != 0 {
		ti.SetValue(report.Feet(current))
	}

	return &numberControl{
		field:   field,
		label:   label,
		unit:    unit,
		integer: integer,
		input:   ti,
	}
}

func (c *numberControl) Field() wizard.Field { return c.field }
func (c *numberControl) Focus() tea.Cmd      { return c.input.Focus() }
func (c *numberControl) Blur()               { c.input.Blur() }
func (c *numberControl) Err() string         { return c.err }

// Update edits the text and commits it when it parses. Rejected text leaves
// the session at its previous value.
func (c *numberControl) Update(msg tea.KeyPressMsg, s *wizard.Session) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.commit(s)
	return cmd
}

func (c *numberControl) commit(s *wizard.Session) {
	var (
		v   any
		err error
	)
	if c.integer {
		v, err = parseCount(c.input.Value())
	} else {
		v, err = parseLength(c.input.Value())
	}
	if err == nil {
		err = s.Set(c.field, v)
	}
	if err != nil {
		c.err = err.Error()
		return
	}
	c.err = ""
}

func (c *numberControl) View(focused bool, width int) string {
	s := theme.Current().S()
	c.input.SetWidth(min(20, max(width-4, 5)))

	var b strings.Builder
	b.WriteString(s.Label.Render(c.label))
	b.WriteString("\n")
	b.WriteString(c.input.View())
	if c.unit != "" {
		b.WriteString(" " + s.Muted.Render(c.unit))
	}
	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render("✗ " + c.err))
	}
	return b.String()
}

// choiceControl picks one of a fixed option set.
type choiceControl struct {
	field   wizard.Field
	label   string
	options []quote.Option
	idx     int
}

func newChoiceControl(field wizard.Field, label string, options []quote.Option, current string) *choiceControl {
	c := &choiceControl{field: field, label: label, options: options}
	for i, o := range options {
		if o.Value == current {
			c.idx = i
		}
	}
	return c
}

func (c *choiceControl) Field() wizard.Field { return c.field }
func (c *choiceControl) Focus() tea.Cmd      { return nil }
func (c *choiceControl) Blur()               {}
func (c *choiceControl) Err() string         { return "" }

// Selected returns the highlighted option value.
func (c *choiceControl) Selected() string {
	return c.options[c.idx].Value
}

func (c *choiceControl) Update(msg tea.KeyPressMsg, s *wizard.Session) tea.Cmd {
	prev := c.idx
	switch msg.String() {
	case "up", "k":
		if c.idx > 0 {
			c.idx--
		}
	case "down", "j":
		if c.idx < len(c.options)-1 {
			c.idx++
		}
	default:
		return nil
	}
	if c.idx == prev {
		return nil
	}
	if err := s.Set(c.field, c.Selected()); err != nil {
		// Options come from the same tables the session validates against.
		c.idx = prev
	}
	return nil
}

func (c *choiceControl) View(focused bool, width int) string {
	s := theme.Current().S()

	var b strings.Builder
	b.WriteString(s.Label.Render(c.label))
	for i, o := range c.options {
		b.WriteString("\n")
		marker, style := "  ○ ", s.OptionNormal
		if i == c.idx {
			marker = "  ● "
			if focused {
				marker = "› ● "
			}
			style = s.OptionSelected
		}
		line := style.Render(marker+o.Label) + " " + s.Muted.Render(fmt.Sprintf("×%.2f", o.Multiplier))
		b.WriteString(line)
		if o.Description != "" && width > 40 {
			b.WriteString("\n      " + s.Description.Render(o.Description))
		}
	}
	return b.String()
}
