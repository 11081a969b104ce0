package quote

import "fmt"

// islandWideThreshold is the island width (feet) at which the island is
// priced as a double-wide run. The boundary is inclusive.
const islandWideThreshold = 3.0

// HeightMultiplier returns the wall cabinet cost factor for a wall height.
func HeightMultiplier(h WallHeight) float64 {
	switch h {
	case WallHeight30:
		return 1.0
	case WallHeight36:
		return 1.25
	case WallHeight40:
		return 1.5
	case WallHeight42Plus:
		return 2.0
	}
	panic(fmt.Sprintf("quote: no height multiplier for %q", string(h)))
}

// ProfileMultiplier returns the cost factor for a door profile.
func ProfileMultiplier(p DoorProfile) float64 {
	switch p {
	case ProfileShaker:
		return 1.0
	case ProfileProfile:
		return 1.10
	case ProfileSkinnyShaker:
		return 1.15
	}
	panic(fmt.Sprintf("quote: no profile multiplier for %q", string(p)))
}

// FinishMultiplier returns the cost factor for a cabinet finish.
func FinishMultiplier(f Finish) float64 {
	switch f {
	case FinishPainted:
		return 1.10
	case FinishClearStain:
		return 1.0
	}
	panic(fmt.Sprintf("quote: no finish multiplier for %q", string(f)))
}

// DoorTypeMultiplier returns the cost factor for a door construction.
func DoorTypeMultiplier(d DoorType) float64 {
	switch d {
	case DoorCenterPanel:
		return 1.10
	case DoorSolidSlab:
		return 1.0
	}
	panic(fmt.Sprintf("quote: no door type multiplier for %q", string(d)))
}

// PanelTypeMultiplier returns 1.05 for a raised panel on a center-panel door
// and 1.0 for every other combination. A slab door has no panel, so the
// panel type it carries is ignored.
func PanelTypeMultiplier(d DoorType, p PanelType) float64 {
	switch d {
	case DoorSolidSlab:
		return 1.0
	case DoorCenterPanel:
		switch p {
		case PanelRaised:
			return 1.05
		case PanelFlat:
			return 1.0
		}
		panic(fmt.Sprintf("quote: no panel multiplier for %q", string(p)))
	}
	panic(fmt.Sprintf("quote: no door type %q", string(d)))
}

// IslandWidthMultiplier is a step function: islands narrower than 3 ft
// price as one run, 3 ft and wider as two.
func IslandWidthMultiplier(width float64) float64 {
	if width < islandWideThreshold {
		return 1
	}
	return 2
}
