package quote

import "math"

// Rate factors that are not tied to an option set.
const (
	tallCabinetFactor = 6.0
	glassDoorFactor   = 0.25
	lowEstimateRatio  = 0.90
	highEstimateRatio = 1.15
)

// Values is the full set of amounts derived from Inputs. The letters in the
// field comments are the line keys used in the breakdown.
type Values struct {
	BaseCost         float64 `json:"baseCost" yaml:"base_cost"`                 // B
	WallBaseCost     float64 `json:"wallBaseCost" yaml:"wall_base_cost"`        // C
	WallAdjustedCost float64 `json:"wallAdjustedCost" yaml:"wall_adjusted_cost"` // D
	TallCost         float64 `json:"tallCost" yaml:"tall_cost"`                 // E
	IslandLengthCost float64 `json:"islandLengthCost" yaml:"island_length_cost"` // F
	IslandTotalCost  float64 `json:"islandTotalCost" yaml:"island_total_cost"`   // G
	Subtotal         float64 `json:"subtotal" yaml:"subtotal"`                  // H
	AfterFinish      float64 `json:"afterFinish" yaml:"after_finish"`           // I
	AfterDoorType    float64 `json:"afterDoorType" yaml:"after_door_type"`      // J
	AfterPanelType   float64 `json:"afterPanelType" yaml:"after_panel_type"`    // K
	AfterProfile     float64 `json:"afterProfile" yaml:"after_profile"`         // L
	GlassDoorCost    float64 `json:"glassDoorCost" yaml:"glass_door_cost"`      // M
	FinalTotal       float64 `json:"finalTotal" yaml:"final_total"`             // N

	LowEstimate  float64 `json:"lowEstimate" yaml:"low_estimate"`
	HighEstimate float64 `json:"highEstimate" yaml:"high_estimate"`
}

// Line is one named amount of the subtotal chain.
type Line struct {
	Key    string
	Label  string
	Amount float64
}

// Calculate folds the inputs into every subtotal and the estimate range.
// Each amount is rounded to cents as soon as it is computed and the rounded
// amount is what later steps consume. Inputs are expected to be valid; see
// Inputs.Validate.
func Calculate(in Inputs) Values {
	rate := in.PricePerFoot

	var v Values
	v.BaseCost = Round2(in.BaseCabinetLength * rate)
	v.WallBaseCost = Round2(in.WallCabinetLength * rate)
	v.WallAdjustedCost = Round2(v.WallBaseCost * HeightMultiplier(in.WallCabinetHeight))
	v.TallCost = Round2(float64(in.TallCabinetsCount) * rate * tallCabinetFactor)
	v.IslandLengthCost = Round2(in.IslandLength * rate)
	v.IslandTotalCost = Round2(IslandWidthMultiplier(in.IslandWidth) * v.IslandLengthCost)
	v.Subtotal = Round2(v.BaseCost + v.WallAdjustedCost + v.TallCost + v.IslandTotalCost)
	v.AfterFinish = Round2(v.Subtotal * FinishMultiplier(in.CabinetFinish))
	v.AfterDoorType = Round2(v.AfterFinish * DoorTypeMultiplier(in.DoorType))
	v.AfterPanelType = Round2(v.AfterDoorType * PanelTypeMultiplier(in.DoorType, in.PanelType))
	v.AfterProfile = Round2(v.AfterPanelType * ProfileMultiplier(in.DoorProfile))
	v.GlassDoorCost = Round2(float64(in.GlassDoorsCount) * rate * glassDoorFactor)
	v.FinalTotal = Round2(v.AfterProfile + v.GlassDoorCost)

	v.LowEstimate = Round2(v.FinalTotal * lowEstimateRatio)
	v.HighEstimate = Round2(v.FinalTotal * highEstimateRatio)
	return v
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Average returns the midpoint of the estimate range.
func (v Values) Average() float64 {
	return (v.LowEstimate + v.HighEstimate) / 2
}

// Lines returns the subtotal chain in pipeline order.
func (v Values) Lines() []Line {
	return []Line{
		{"B", "Base cabinets", v.BaseCost},
		{"C", "Wall cabinets base", v.WallBaseCost},
		{"D", "Wall cabinets adjusted", v.WallAdjustedCost},
		{"E", "Tall cabinets", v.TallCost},
		{"F", "Island length", v.IslandLengthCost},
		{"G", "Island total", v.IslandTotalCost},
		{"H", "Subtotal", v.Subtotal},
		{"I", "After finish", v.AfterFinish},
		{"J", "After door type", v.AfterDoorType},
		{"K", "After panel type", v.AfterPanelType},
		{"L", "After profile", v.AfterProfile},
		{"M", "Glass doors", v.GlassDoorCost},
		{"N", "Total", v.FinalTotal},
	}
}
