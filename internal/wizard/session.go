package wizard

import (
	"fmt"

	"github.com/mark3labs/quoter/internal/logger"
	"github.com/mark3labs/quoter/internal/quote"
)

// Session is the state of one questionnaire run: the current step and the
// inputs collected so far, with the derived values kept in step with every
// input change. A Session is owned by a single caller and is not safe for
// concurrent use.
type Session struct {
	step   int
	rate   float64
	inputs quote.Inputs
	values quote.Values
}

// New starts a session at the first step with default inputs.
func New(pricePerFoot float64) *Session {
	s := &Session{rate: pricePerFoot}
	s.Reset()
	return s
}

// Reset returns to the first step with default inputs, keeping the
// session's price per foot.
func (s *Session) Reset() {
	s.step = StepBaseCabinetLength
	s.inputs = quote.DefaultInputs(s.rate)
	s.recalculate()
	logger.Debug("Quote session reset (price per foot %.2f)", s.rate)
}

// CurrentStep returns the current step index.
func (s *Session) CurrentStep() int {
	return s.step
}

// Step returns the catalog entry of the current step.
func (s *Session) Step() StepInfo {
	return Steps[s.step]
}

// Inputs returns a copy of the current inputs.
func (s *Session) Inputs() quote.Inputs {
	return s.inputs
}

// Values returns a copy of the values derived from the current inputs.
func (s *Session) Values() quote.Values {
	return s.values
}

// CanAdvance reports whether Advance would move forward.
func (s *Session) CanAdvance() bool {
	return s.step < ResultsStep && CanAdvance(s.step, s.inputs)
}

// CanRetreat reports whether Retreat would move back.
func (s *Session) CanRetreat() bool {
	return s.step > 0
}

// IsComplete reports whether the session is on the results step.
func (s *Session) IsComplete() bool {
	return s.step == ResultsStep
}

// Progress returns the completion percentage of the current step.
func (s *Session) Progress() int {
	return Progress(s.step)
}

// PanelStepSkipped reports whether the panel-type step is a pass-through
// for the current inputs.
func (s *Session) PanelStepSkipped() bool {
	return PanelStepSkipped(s.inputs)
}

// Advisories returns the soft warnings for the current step.
func (s *Session) Advisories() []Advisory {
	return Advisories(s.step, s.inputs)
}

// Advance moves to the next step when the current one is complete.
// It reports whether the step changed.
func (s *Session) Advance() bool {
	if !s.CanAdvance() {
		logger.Debug("Advance blocked at step %d (%s)", s.step, Steps[s.step].ID)
		return false
	}
	s.step++
	logger.Debug("Advanced to step %d (%s)", s.step, Steps[s.step].ID)
	return true
}

// Retreat moves to the previous step. It reports whether the step changed.
func (s *Session) Retreat() bool {
	if !s.CanRetreat() {
		return false
	}
	s.step--
	logger.Debug("Retreated to step %d (%s)", s.step, Steps[s.step].ID)
	return true
}

// Set assigns one input field. Numbers may be given as int or float64 and
// options as their typed value or token string. Negative or NaN numbers,
// unknown tokens and mismatched types are rejected and the field keeps its
// previous value. The step index never changes.
func (s *Session) Set(f Field, v any) error {
	next := s.inputs
	if err := assign(&next, f, v); err != nil {
		return fmt.Errorf("setting %s: %w", f, err)
	}
	s.apply(next)
	return nil
}

// SetPricePerFoot sets the base rate.
func (s *Session) SetPricePerFoot(v float64) error {
	return s.Set(FieldPricePerFoot, v)
}

// SetBaseCabinetLength sets the base cabinet run in feet.
func (s *Session) SetBaseCabinetLength(v float64) error {
	return s.Set(FieldBaseCabinetLength, v)
}

// SetWallCabinetLength sets the wall cabinet run in feet.
func (s *Session) SetWallCabinetLength(v float64) error {
	return s.Set(FieldWallCabinetLength, v)
}

// SetWallCabinetHeight sets the wall cabinet height.
func (s *Session) SetWallCabinetHeight(v quote.WallHeight) error {
	return s.Set(FieldWallCabinetHeight, v)
}

// SetTallCabinetsCount sets the number of tall cabinets.
func (s *Session) SetTallCabinetsCount(v int) error {
	return s.Set(FieldTallCabinetsCount, v)
}

// SetIslandLength sets the island or peninsula length in feet.
func (s *Session) SetIslandLength(v float64) error {
	return s.Set(FieldIslandLength, v)
}

// SetIslandWidth sets the island or peninsula width in feet.
func (s *Session) SetIslandWidth(v float64) error {
	return s.Set(FieldIslandWidth, v)
}

// SetCabinetFinish sets the finish.
func (s *Session) SetCabinetFinish(v quote.Finish) error {
	return s.Set(FieldCabinetFinish, v)
}

// SetDoorType sets the door construction.
func (s *Session) SetDoorType(v quote.DoorType) error {
	return s.Set(FieldDoorType, v)
}

// SetPanelType sets the center panel style.
func (s *Session) SetPanelType(v quote.PanelType) error {
	return s.Set(FieldPanelType, v)
}

// SetDoorProfile sets the door profile.
func (s *Session) SetDoorProfile(v quote.DoorProfile) error {
	return s.Set(FieldDoorProfile, v)
}

// SetGlassDoorsCount sets the number of glass doors.
func (s *Session) SetGlassDoorsCount(v int) error {
	return s.Set(FieldGlassDoorsCount, v)
}

// Load replaces every input at once, keeping the current step. The inputs
// are validated first; on error nothing changes.
func (s *Session) Load(in quote.Inputs) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}
	s.apply(in)
	return nil
}

// Preview returns the values the inputs would produce after edit is applied,
// without changing the session.
func (s *Session) Preview(edit func(*quote.Inputs)) (quote.Values, error) {
	in := s.inputs
	if edit != nil {
		edit(&in)
	}
	if err := in.Validate(); err != nil {
		return quote.Values{}, fmt.Errorf("preview: %w", err)
	}
	return quote.Calculate(in), nil
}

func (s *Session) apply(in quote.Inputs) {
	s.inputs = in
	s.rate = in.PricePerFoot
	s.recalculate()
}

func (s *Session) recalculate() {
	s.values = quote.Calculate(s.inputs)
}
