// Package wizard holds the questionnaire flow: the static step catalog, the
// per-step completion rules and the Session that moves between steps.
package wizard

import "math"

// Step indices in catalog order.
const (
	StepBaseCabinetLength = iota
	StepWallCabinetLength
	StepWallCabinetHeight
	StepTallCabinets
	StepIslandPeninsula
	StepCabinetFinish
	StepPanelType
	StepDoorProfile
	StepGlassDoors
	StepResults
)

// TotalSteps is the number of screens including the results screen.
const TotalSteps = StepResults + 1

// ResultsStep is the terminal step index.
const ResultsStep = StepResults

// StepInfo describes one screen for progress display.
type StepInfo struct {
	ID          string
	Title       string
	Description string
}

// Steps is the step catalog, indexed by step number.
var Steps = [TotalSteps]StepInfo{
	{ID: "base-cabinet-length", Title: "Base Cabinet Length", Description: "Total length of wall for base cabinets"},
	{ID: "wall-cabinet-length", Title: "Wall Cabinet Length", Description: "Total length of wall for wall cabinets"},
	{ID: "wall-cabinet-height", Title: "Wall Cabinet Height", Description: "How tall will the wall cabinets be?"},
	{ID: "tall-cabinets", Title: "Tall Cabinets", Description: "Number of tall cabinets (pantry, etc.)"},
	{ID: "island-peninsula", Title: "Island/Peninsula", Description: "Size of island or peninsula"},
	{ID: "cabinet-finish", Title: "Cabinet Finish", Description: "Painted or clear/stain finish, and door construction"},
	{ID: "panel-type", Title: "Panel Type", Description: "Raised or flat center panel"},
	{ID: "door-profile", Title: "Door Profile", Description: "Style of door profile"},
	{ID: "glass-doors", Title: "Glass Doors", Description: "Number of glass cabinet doors"},
	{ID: "quote-results", Title: "Quote Results", Description: "Your estimated quote range"},
}

// StepByID returns the index of the step with the given id.
func StepByID(id string) (int, bool) {
	for i, s := range Steps {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Progress returns how far through the flow a step is, as a whole percentage.
func Progress(step int) int {
	if step <= 0 {
		return 0
	}
	if step >= ResultsStep {
		return 100
	}
	return int(math.Round(float64(step) * 100 / float64(ResultsStep)))
}
