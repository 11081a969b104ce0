package wizard

import (
	"fmt"

	"github.com/mark3labs/quoter/internal/quote"
)

// Soft limits. Exceeding one surfaces an advisory; it never blocks a step.
const (
	maxPlausibleRunLength    = 1000.0
	maxPlausibleIslandLength = 50.0
	maxPlausibleCount        = 50
)

// CanAdvance reports whether the inputs satisfy the completion rule of step.
// The results step and indices outside the catalog never advance.
func CanAdvance(step int, in quote.Inputs) bool {
	switch step {
	case StepBaseCabinetLength:
		return positive(in.BaseCabinetLength)
	case StepWallCabinetLength:
		return positive(in.WallCabinetLength)
	case StepWallCabinetHeight:
		return in.WallCabinetHeight.Valid()
	case StepTallCabinets:
		return in.TallCabinetsCount >= 0
	case StepIslandPeninsula:
		return in.IslandLength >= 0 && in.IslandWidth >= 0
	case StepCabinetFinish:
		return in.CabinetFinish.Valid() && in.DoorType.Valid()
	case StepPanelType:
		if PanelStepSkipped(in) {
			return true
		}
		return in.PanelType.Valid()
	case StepDoorProfile:
		return in.DoorProfile.Valid()
	case StepGlassDoors:
		return in.GlassDoorsCount >= 0
	}
	return false
}

// PanelStepSkipped reports whether the panel-type step is a pass-through for
// these inputs. Only center-panel doors have a panel to choose.
func PanelStepSkipped(in quote.Inputs) bool {
	return in.DoorType != quote.DoorCenterPanel
}

// positive is false for NaN.
func positive(v float64) bool {
	return v > 0
}

// Advisory is a soft warning about an implausible value.
type Advisory struct {
	Field   Field
	Message string
}

// Advisories returns the soft warnings for the fields shown on step.
func Advisories(step int, in quote.Inputs) []Advisory {
	var out []Advisory
	switch step {
	case StepBaseCabinetLength:
		if in.BaseCabinetLength > maxPlausibleRunLength {
			out = append(out, Advisory{FieldBaseCabinetLength, "Length seems unusually long. Please verify the measurement."})
		}
	case StepWallCabinetLength:
		if in.WallCabinetLength > maxPlausibleRunLength {
			out = append(out, Advisory{FieldWallCabinetLength, "Length seems unusually long. Please verify the measurement."})
		}
	case StepTallCabinets:
		if in.TallCabinetsCount > maxPlausibleCount {
			out = append(out, Advisory{FieldTallCabinetsCount, fmt.Sprintf("More than %d tall cabinets is unusual. Please verify the count.", maxPlausibleCount)})
		}
	case StepIslandPeninsula:
		if in.IslandLength > maxPlausibleIslandLength {
			out = append(out, Advisory{FieldIslandLength, "That seems unusually long for an island/peninsula."})
		}
	case StepGlassDoors:
		if in.GlassDoorsCount > maxPlausibleCount {
			out = append(out, Advisory{FieldGlassDoorsCount, fmt.Sprintf("More than %d glass doors is unusual. Please verify the count.", maxPlausibleCount)})
		}
	}
	return out
}
