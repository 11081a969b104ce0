package quote

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidValue is returned for numeric inputs that are negative or NaN.
var ErrInvalidValue = errors.New("invalid value")

// DefaultPricePerFoot is the base rate used when no deployment rate is configured.
const DefaultPricePerFoot = 1000.0

// Inputs holds every value the questionnaire collects. Lengths are in feet.
type Inputs struct {
	PricePerFoot      float64     `json:"pricePerFoot" yaml:"price_per_foot"`
	BaseCabinetLength float64     `json:"baseCabinetLength" yaml:"base_cabinet_length"`
	WallCabinetLength float64     `json:"wallCabinetLength" yaml:"wall_cabinet_length"`
	WallCabinetHeight WallHeight  `json:"wallCabinetHeight" yaml:"wall_cabinet_height"`
	TallCabinetsCount int         `json:"tallCabinetsCount" yaml:"tall_cabinets_count"`
	IslandLength      float64     `json:"islandLength" yaml:"island_length"`
	IslandWidth       float64     `json:"islandWidth" yaml:"island_width"`
	CabinetFinish     Finish      `json:"cabinetFinish" yaml:"cabinet_finish"`
	DoorType          DoorType    `json:"doorType" yaml:"door_type"`
	PanelType         PanelType   `json:"panelType" yaml:"panel_type"`
	DoorProfile       DoorProfile `json:"doorProfile" yaml:"door_profile"`
	GlassDoorsCount   int         `json:"glassDoorsCount" yaml:"glass_doors_count"`
}

// DefaultInputs returns the starting inputs of a new quote: every length and
// count at zero, 30in walls, painted finish, slab doors, raised panels and a
// shaker profile.
func DefaultInputs(pricePerFoot float64) Inputs {
	return Inputs{
		PricePerFoot:      pricePerFoot,
		WallCabinetHeight: WallHeight30,
		CabinetFinish:     FinishPainted,
		DoorType:          DoorSolidSlab,
		PanelType:         PanelRaised,
		DoorProfile:       ProfileShaker,
	}
}

// Validate checks that numeric fields are non-negative numbers and that
// every option field holds a declared member.
func (in Inputs) Validate() error {
	nums := []struct {
		name string
		v    float64
	}{
		{"price per foot", in.PricePerFoot},
		{"base cabinet length", in.BaseCabinetLength},
		{"wall cabinet length", in.WallCabinetLength},
		{"tall cabinets count", float64(in.TallCabinetsCount)},
		{"island length", in.IslandLength},
		{"island width", in.IslandWidth},
		{"glass doors count", float64(in.GlassDoorsCount)},
	}
	for _, n := range nums {
		if err := CheckAmount(n.v); err != nil {
			return fmt.Errorf("%s: %w", n.name, err)
		}
	}

	if !in.WallCabinetHeight.Valid() {
		return fmt.Errorf("wall cabinet height %q: %w", string(in.WallCabinetHeight), ErrUnknownOption)
	}
	if !in.CabinetFinish.Valid() {
		return fmt.Errorf("cabinet finish %q: %w", string(in.CabinetFinish), ErrUnknownOption)
	}
	if !in.DoorType.Valid() {
		return fmt.Errorf("door type %q: %w", string(in.DoorType), ErrUnknownOption)
	}
	if !in.PanelType.Valid() {
		return fmt.Errorf("panel type %q: %w", string(in.PanelType), ErrUnknownOption)
	}
	if !in.DoorProfile.Valid() {
		return fmt.Errorf("door profile %q: %w", string(in.DoorProfile), ErrUnknownOption)
	}
	return nil
}

// CheckAmount rejects NaN, infinite and negative numbers.
func CheckAmount(v float64) error {
	switch {
	case math.IsNaN(v):
		return fmt.Errorf("not a number: %w", ErrInvalidValue)
	case math.IsInf(v, 0):
		return fmt.Errorf("infinite: %w", ErrInvalidValue)
	case v < 0:
		return fmt.Errorf("negative (%g): %w", v, ErrInvalidValue)
	}
	return nil
}
