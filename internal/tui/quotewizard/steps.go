package quotewizard

import (
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/wizard"
)

// controlsFor builds the inputs shown on a step, pre-filled from in.
// The panel step has no controls when the door type makes it irrelevant.
func controlsFor(step int, in quote.Inputs) []control {
	switch step {
	case wizard.StepBaseCabinetLength:
		return []control{
			newNumberControl(wizard.FieldBaseCabinetLength, "Base cabinet length", "ft", false, in.BaseCabinetLength),
		}
	case wizard.StepWallCabinetLength:
		return []control{
			newNumberControl(wizard.FieldWallCabinetLength, "Wall cabinet length", "ft", false, in.WallCabinetLength),
		}
	case wizard.StepWallCabinetHeight:
		return []control{
			newChoiceControl(wizard.FieldWallCabinetHeight, "Wall cabinet height", quote.WallHeightOptions(), string(in.WallCabinetHeight)),
		}
	case wizard.StepTallCabinets:
		return []control{
			newNumberControl(wizard.FieldTallCabinetsCount, "Tall cabinets", "cabinets", true, float64(in.TallCabinetsCount)),
		}
	case wizard.StepIslandPeninsula:
		return []control{
			newNumberControl(wizard.FieldIslandLength, "Island length (0 for none)", "ft", false, in.IslandLength),
			newNumberControl(wizard.FieldIslandWidth, "Island width (3 ft or more doubles the cost)", "ft", false, in.IslandWidth),
		}
	case wizard.StepCabinetFinish:
		return []control{
			newChoiceControl(wizard.FieldCabinetFinish, "Finish", quote.FinishOptions(), string(in.CabinetFinish)),
			newChoiceControl(wizard.FieldDoorType, "Door type", quote.DoorTypeOptions(), string(in.DoorType)),
		}
	case wizard.StepPanelType:
		if wizard.PanelStepSkipped(in) {
			return nil
		}
		return []control{
			newChoiceControl(wizard.FieldPanelType, "Panel type", quote.PanelTypeOptions(), string(in.PanelType)),
		}
	case wizard.StepDoorProfile:
		return []control{
			newChoiceControl(wizard.FieldDoorProfile, "Door profile", quote.DoorProfileOptions(), string(in.DoorProfile)),
		}
	case wizard.StepGlassDoors:
		return []control{
			newNumberControl(wizard.FieldGlassDoorsCount, "Glass doors", "doors", true, float64(in.GlassDoorsCount)),
		}
	}
	return nil
}

// requirement explains what a step needs before it can advance.
func requirement(step int) string {
	switch step {
	case wizard.StepBaseCabinetLength:
		return "Enter a base cabinet length greater than 0 to continue"
	case wizard.StepWallCabinetLength:
		return "Enter a wall cabinet length greater than 0 to continue"
	}
	return "Complete this step to continue"
}
