package quotewizard

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/state"
	"github.com/mark3labs/quoter/internal/tui/testfixtures"
	"github.com/mark3labs/quoter/internal/wizard"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(Config{PricePerFoot: 1000, Company: testfixtures.FixedCompany, DataDir: t.TempDir()})
	_ = m.Init()
	m.Update(testfixtures.WindowSize())
	return m
}

func typeText(m *Model, s string) {
	for _, k := range testfixtures.Type(s) {
		m.Update(k)
	}
}

func screen(m *Model) string {
	return ansi.Strip(m.render())
}

// fillRequired enters base and wall lengths so every later step can advance.
func fillRequired(t *testing.T, m *Model) {
	t.Helper()
	typeText(m, "10")
	m.Update(testfixtures.KeyEnter)
	typeText(m, "8")
	m.Update(testfixtures.KeyEnter)
	require.Equal(t, wizard.StepWallCabinetHeight, m.session.CurrentStep())
}

func TestWizard_StartsAtFirstStep(t *testing.T) {
	m := newTestModel(t)

	require.Equal(t, 0, m.session.CurrentStep())
	out := screen(m)
	require.Contains(t, out, "Step 1 of 10: Base Cabinet Length")
	require.Contains(t, out, "Running estimate: $0 - $0")
	require.Contains(t, out, "Cancel")
}

func TestWizard_EnterBlockedUntilValid(t *testing.T) {
	m := newTestModel(t)

	m.Update(testfixtures.KeyEnter)
	require.Equal(t, 0, m.session.CurrentStep())
	require.Contains(t, screen(m), "Enter a base cabinet length greater than 0")

	typeText(m, "12.5")
	require.Equal(t, 12.5, m.session.Inputs().BaseCabinetLength)
	require.Empty(t, m.notice, "typing clears the notice")

	m.Update(testfixtures.KeyEnter)
	require.Equal(t, wizard.StepWallCabinetLength, m.session.CurrentStep())
}

func TestWizard_InvalidTextKeepsPreviousValue(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "4")
	require.Equal(t, 4.0, m.session.Inputs().BaseCabinetLength)

	typeText(m, "x")
	require.Equal(t, 4.0, m.session.Inputs().BaseCabinetLength)
	require.Contains(t, screen(m), "enter a number")

	m.Update(testfixtures.KeyEnter)
	require.Equal(t, 0, m.session.CurrentStep(), "cannot advance past invalid text")
	require.Contains(t, screen(m), "Fix the highlighted value")
}

func TestWizard_NegativeRejected(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "-3")
	require.Zero(t, m.session.Inputs().BaseCabinetLength)
	require.Contains(t, screen(m), "must be zero or more")
}

func TestWizard_ChoiceStepSetsOption(t *testing.T) {
	m := newTestModel(t)
	fillRequired(t, m)

	m.Update(testfixtures.KeyDown)
	require.Equal(t, quote.WallHeight36, m.session.Inputs().WallCabinetHeight)
	m.Update(testfixtures.Rune('j'))
	require.Equal(t, quote.WallHeight40, m.session.Inputs().WallCabinetHeight)
	m.Update(testfixtures.KeyUp)
	require.Equal(t, quote.WallHeight36, m.session.Inputs().WallCabinetHeight)

	require.Equal(t, 22000.0, m.session.Values().FinalTotal, "(10000 + 8000*1.25) * 1.10")
}

func TestWizard_TabCyclesControlsThenAdvances(t *testing.T) {
	m := newTestModel(t)
	fillRequired(t, m)
	m.Update(testfixtures.KeyEnter) // height
	m.Update(testfixtures.KeyEnter) // tall cabinets
	require.Equal(t, wizard.StepIslandPeninsula, m.session.CurrentStep())

	typeText(m, "6")
	m.Update(testfixtures.KeyTab)
	require.Equal(t, 1, m.focus)
	typeText(m, "3.5")

	in := m.session.Inputs()
	require.Equal(t, 6.0, in.IslandLength)
	require.Equal(t, 3.5, in.IslandWidth)

	m.Update(testfixtures.KeyShiftTab)
	require.Equal(t, 0, m.focus)
	m.Update(testfixtures.KeyTab)
	m.Update(testfixtures.KeyTab)
	require.Equal(t, wizard.StepCabinetFinish, m.session.CurrentStep())
}

func TestWizard_PanelStepPassThrough(t *testing.T) {
	m := newTestModel(t)
	fillRequired(t, m)
	for m.session.CurrentStep() < wizard.StepPanelType {
		m.Update(testfixtures.KeyEnter)
	}

	require.Empty(t, m.controls)
	require.Contains(t, screen(m), "Panel type only applies to center panel doors")
	m.Update(testfixtures.KeyEnter)
	require.Equal(t, wizard.StepDoorProfile, m.session.CurrentStep())

	// Back to the finish step, switch to center panel doors.
	m.Update(testfixtures.KeyEsc)
	m.Update(testfixtures.KeyEsc)
	require.Equal(t, wizard.StepCabinetFinish, m.session.CurrentStep())
	m.Update(testfixtures.KeyTab)
	m.Update(testfixtures.KeyDown)
	require.Equal(t, quote.DoorCenterPanel, m.session.Inputs().DoorType)

	m.Update(testfixtures.KeyEnter)
	require.Equal(t, wizard.StepPanelType, m.session.CurrentStep())
	require.Len(t, m.controls, 1)
	m.Update(testfixtures.KeyUp)
	require.Equal(t, quote.PanelFlat, m.session.Inputs().PanelType)
}

func TestWizard_AdvisoryDoesNotBlock(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "1500")
	require.Contains(t, screen(m), "⚠")
	m.Update(testfixtures.KeyEnter)
	require.Equal(t, wizard.StepWallCabinetLength, m.session.CurrentStep())
}

func TestWizard_EscOnFirstStepCancels(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(testfixtures.KeyEsc)
	require.True(t, m.cancelled)
	require.True(t, testfixtures.IsQuit(cmd))
}

func TestWizard_CtrlCCancelsAnywhere(t *testing.T) {
	m := newTestModel(t)
	fillRequired(t, m)

	_, cmd := m.Update(testfixtures.KeyCtrlC)
	require.True(t, m.cancelled)
	require.True(t, testfixtures.IsQuit(cmd))
}

func TestWizard_RetreatKeepsValues(t *testing.T) {
	m := newTestModel(t)
	fillRequired(t, m)

	m.Update(testfixtures.KeyEsc)
	require.Equal(t, wizard.StepWallCabinetLength, m.session.CurrentStep())
	require.Contains(t, screen(m), "8")

	m.Update(testfixtures.KeyEnter)
	require.Equal(t, wizard.StepWallCabinetHeight, m.session.CurrentStep())
}

func walkToResults(t *testing.T, m *Model) {
	t.Helper()
	fillRequired(t, m)
	for !m.session.IsComplete() {
		before := m.session.CurrentStep()
		m.Update(testfixtures.KeyEnter)
		require.Equal(t, before+1, m.session.CurrentStep())
	}
}

func TestWizard_ResultsAndFinish(t *testing.T) {
	m := newTestModel(t)
	walkToResults(t, m)

	out := screen(m)
	require.Contains(t, out, "Step 10 of 10: Quote Results")
	require.Contains(t, out, "Your Cabinet Quote")
	require.Contains(t, out, "100%")

	_, cmd := m.Update(testfixtures.Rune('q'))
	require.True(t, m.done)
	require.True(t, testfixtures.IsQuit(cmd))

	res := m.Result()
	require.Equal(t, 10.0, res.Inputs.BaseCabinetLength)
	require.Equal(t, 19800.0, res.Values.FinalTotal, "(10000 + 8000) * 1.10 painted")
}

func TestWizard_BreakdownTogglePersists(t *testing.T) {
	dir := t.TempDir()
	m := New(Config{PricePerFoot: 1000, DataDir: dir})
	m.Update(testfixtures.WindowSize())
	walkToResults(t, m)

	require.False(t, m.showBreakdown)
	m.Update(testfixtures.Rune('b'))
	require.True(t, m.showBreakdown)
	require.True(t, state.Load(dir).Results.ShowBreakdown)

	again := New(Config{PricePerFoot: 1000, DataDir: dir})
	require.True(t, again.showBreakdown)
}

func TestWizard_NewQuoteResets(t *testing.T) {
	m := newTestModel(t)
	walkToResults(t, m)

	m.Update(testfixtures.Rune('n'))
	require.Equal(t, 0, m.session.CurrentStep())
	require.Equal(t, quote.DefaultInputs(1000), m.session.Inputs())
	require.False(t, m.done)
}

func TestWizard_BackFromResults(t *testing.T) {
	m := newTestModel(t)
	walkToResults(t, m)

	m.Update(testfixtures.KeyEsc)
	require.Equal(t, wizard.StepGlassDoors, m.session.CurrentStep())
	typeText(m, "2")
	require.Equal(t, 2, m.session.Inputs().GlassDoorsCount)
	m.Update(testfixtures.KeyEnter)
	require.True(t, m.session.IsComplete())
	require.Equal(t, 20300.0, m.session.Values().FinalTotal, "19800 + 2 glass doors")
}

func TestNew_DefaultRate(t *testing.T) {
	m := New(Config{})
	require.Equal(t, quote.DefaultPricePerFoot, m.session.Inputs().PricePerFoot)
}
