// Package quotewizard is the interactive terminal questionnaire. It collects
// raw keystrokes, turns them into typed values and drives a wizard.Session.
package quotewizard

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/quoter/internal/logger"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/report"
	"github.com/mark3labs/quoter/internal/state"
	"github.com/mark3labs/quoter/internal/tui/theme"
	"github.com/mark3labs/quoter/internal/wizard"
)

// ErrCancelled is returned by Run when the user leaves without finishing.
var ErrCancelled = errors.New("quote cancelled by user")

// Config holds what the wizard needs from the application config.
type Config struct {
	PricePerFoot float64
	Company      string
	DataDir      string // UI preferences live here; empty disables persistence
}

// Result holds the finished quote.
type Result struct {
	Inputs        quote.Inputs
	Values        quote.Values
	ShowBreakdown bool
}

// Model is the BubbleTea model for the quote wizard.
type Model struct {
	cfg      Config
	session  *wizard.Session
	controls []control
	focus    int    // Index of the focused control
	notice   string // Why the last advance was refused

	showBreakdown bool
	results       viewport.Model

	cancelled bool
	done      bool
	width     int
	height    int
}

// New creates a wizard model at the first step.
func New(cfg Config) *Model {
	if cfg.PricePerFoot <= 0 {
		cfg.PricePerFoot = quote.DefaultPricePerFoot
	}

	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := &Model{
		cfg:     cfg,
		session: wizard.New(cfg.PricePerFoot),
		results: vp,
		width:   80,
		height:  24,
	}
	if cfg.DataDir != "" {
		m.showBreakdown = state.Load(cfg.DataDir).Results.ShowBreakdown
	}
	m.enterStep()
	return m
}

// Run creates a standalone BubbleTea program, runs it and returns the
// finished quote. Returns ErrCancelled if the user quits early.
func Run(cfg Config) (*Result, error) {
	m := New(cfg)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wm, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wm.cancelled || !wm.done {
		return nil, ErrCancelled
	}
	return wm.Result(), nil
}

// Result returns the current quote.
func (m *Model) Result() *Result {
	return &Result{
		Inputs:        m.session.Inputs(),
		Values:        m.session.Values(),
		ShowBreakdown: m.showBreakdown,
	}
}

// Session exposes the underlying state machine.
func (m *Model) Session() *wizard.Session {
	return m.session
}

// Init focuses the first input.
func (m *Model) Init() tea.Cmd {
	return m.focusControl(0)
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshResults()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.session.IsComplete() {
			return m, m.updateResults(msg)
		}
		return m, m.updateStep(msg)
	}

	if m.session.IsComplete() {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateStep(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.advance()
	case "tab":
		if m.focus < len(m.controls)-1 {
			return m.focusControl(m.focus + 1)
		}
		return m.advance()
	case "shift+tab":
		if m.focus > 0 {
			return m.focusControl(m.focus - 1)
		}
		return m.retreat()
	case "esc":
		if m.session.CurrentStep() == 0 {
			m.cancelled = true
			return tea.Quit
		}
		return m.retreat()
	}

	if len(m.controls) == 0 {
		return nil
	}
	m.notice = ""
	return m.controls[m.focus].Update(msg, m.session)
}

func (m *Model) updateResults(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "b":
		m.showBreakdown = !m.showBreakdown
		m.savePreferences()
		m.refreshResults()
		return nil
	case "n":
		logger.Info("Starting a new quote")
		m.session.Reset()
		return m.enterStep()
	case "q", "enter":
		m.done = true
		return tea.Quit
	case "esc", "shift+tab":
		return m.retreat()
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return cmd
}

// advance moves forward when every control holds a committed value and the
// step's rule is satisfied.
func (m *Model) advance() tea.Cmd {
	for _, c := range m.controls {
		if c.Err() != "" {
			m.notice = "Fix the highlighted value to continue"
			return nil
		}
	}
	if !m.session.Advance() {
		m.notice = requirement(m.session.CurrentStep())
		return nil
	}
	return m.enterStep()
}

func (m *Model) retreat() tea.Cmd {
	if !m.session.Retreat() {
		return nil
	}
	return m.enterStep()
}

// enterStep rebuilds the controls for the current step from the session.
func (m *Model) enterStep() tea.Cmd {
	m.notice = ""
	m.controls = controlsFor(m.session.CurrentStep(), m.session.Inputs())
	if m.session.IsComplete() {
		m.refreshResults()
		return nil
	}
	return m.focusControl(0)
}

func (m *Model) focusControl(i int) tea.Cmd {
	if len(m.controls) == 0 {
		m.focus = 0
		return nil
	}
	for _, c := range m.controls {
		c.Blur()
	}
	m.focus = min(max(i, 0), len(m.controls)-1)
	return m.controls[m.focus].Focus()
}

func (m *Model) savePreferences() {
	if m.cfg.DataDir == "" {
		return
	}
	if err := state.SaveShowBreakdown(m.cfg.DataDir, m.showBreakdown); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}
}

// modalWidth is the outer width of the wizard box.
func (m *Model) modalWidth() int {
	return min(max(m.width-10, 60), 100)
}

// contentWidth is the usable width inside the box border and padding.
func (m *Model) contentWidth() int {
	return m.modalWidth() - 6
}

func (m *Model) refreshResults() {
	width := m.contentWidth()
	m.results.SetWidth(width)
	m.results.SetHeight(max(m.height-16, 5))
	if !m.session.IsComplete() {
		return
	}

	md := report.Markdown(m.session.Inputs(), m.session.Values(), report.Options{
		Breakdown: m.showBreakdown,
		Company:   m.cfg.Company,
	})
	m.results.SetContent(report.Render(md, width))
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	centered := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.render())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// render draws the modal for the current step.
func (m *Model) render() string {
	s := theme.Current().S()
	step := m.session.CurrentStep()
	info := m.session.Step()
	width := m.contentWidth()

	title := s.ModalTitle.Render(fmt.Sprintf("Cabinet Quote - Step %d of %d: %s",
		step+1, wizard.TotalSteps, info.Title))
	progress := renderProgress(m.session.Progress(), min(width-6, 40))

	var body, hint string
	var buttons []Button
	if m.session.IsComplete() {
		body = m.results.View()
		toggle := "show breakdown"
		if m.showBreakdown {
			toggle = "hide breakdown"
		}
		buttons = []Button{
			{Label: "← Back", State: ButtonNormal},
			{Label: "New Quote", State: ButtonNormal},
			{Label: "Finish", State: ButtonFocused},
		}
		hint = renderHintBar("↑↓", "scroll", "b", toggle, "n", "new quote", "q/enter", "finish", "esc", "back")
	} else {
		body = m.renderStepBody(width)
		nextLabel := "Next →"
		if step == wizard.ResultsStep-1 {
			nextLabel = "Get Quote"
		}
		buttons = navButtons(step == 0, m.session.CanAdvance(), nextLabel)
		hint = m.stepHint()
	}

	bar := NewButtonBar(buttons)
	bar.SetWidth(width)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		progress,
		"",
		body,
		"",
		bar.Render(),
		"",
		hint,
	)
	return s.ModalContainer.Width(m.modalWidth()).Render(content)
}

func (m *Model) renderStepBody(width int) string {
	s := theme.Current().S()
	info := m.session.Step()

	var b strings.Builder
	b.WriteString(s.Description.Render(info.Description))
	b.WriteString("\n\n")

	if len(m.controls) == 0 && m.session.CurrentStep() == wizard.StepPanelType {
		b.WriteString(s.Info.Render("Panel type only applies to center panel doors."))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("Solid slab doors skip this choice. Press enter to continue."))
	}
	for i, c := range m.controls {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(c.View(i == m.focus, width))
	}

	for _, a := range m.session.Advisories() {
		b.WriteString("\n\n")
		b.WriteString(s.Warning.Render("⚠ " + a.Message))
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Error.Render(m.notice))
	}

	v := m.session.Values()
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render("Running estimate: "))
	b.WriteString(s.Amount.Render(report.Currency(v.LowEstimate) + " - " + report.Currency(v.HighEstimate)))
	return b.String()
}

func (m *Model) stepHint() string {
	if len(m.controls) > 0 {
		if _, ok := m.controls[m.focus].(*choiceControl); ok {
			return renderHintBar("↑↓/j/k", "choose", "tab", "next", "enter", "continue", "esc", "back")
		}
	}
	back := "back"
	if m.session.CurrentStep() == 0 {
		back = "cancel"
	}
	return renderHintBar("type", "value", "tab", "next", "enter", "continue", "esc", back)
}
