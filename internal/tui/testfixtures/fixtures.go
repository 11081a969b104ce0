package testfixtures

import (
	"github.com/mark3labs/quoter/internal/quote"
)

// FixedCompany is the company name used across UI tests.
const FixedCompany = "Acme Cabinets"

// FullKitchen returns a quote touching every line of the pipeline.
// It prices to 50811.80 with a 45730.62 - 58433.57 range.
func FullKitchen() quote.Inputs {
	return quote.Inputs{
		PricePerFoot:      1000,
		BaseCabinetLength: 10,
		WallCabinetLength: 8,
		WallCabinetHeight: quote.WallHeight36,
		TallCabinetsCount: 1,
		IslandLength:      5,
		IslandWidth:       3,
		CabinetFinish:     quote.FinishPainted,
		DoorType:          quote.DoorCenterPanel,
		PanelType:         quote.PanelRaised,
		DoorProfile:       quote.ProfileProfile,
		GlassDoorsCount:   2,
	}
}

// BaseOnly returns one foot of base cabinets in clear stain, which prices
// to exactly the base rate.
func BaseOnly() quote.Inputs {
	in := quote.DefaultInputs(1000)
	in.BaseCabinetLength = 1
	in.CabinetFinish = quote.FinishClearStain
	return in
}
