package wizard

import (
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/quoter/internal/quote"
)

// ErrUnknownField is returned by ParseField and Session.Set for names that
// are not input fields.
var ErrUnknownField = errors.New("unknown field")

// ErrWrongType is returned by Session.Set when a value cannot be coerced to
// the field's type.
var ErrWrongType = errors.New("wrong value type")

// Field names one input of the questionnaire.
type Field string

const (
	FieldPricePerFoot      Field = "price_per_foot"
	FieldBaseCabinetLength Field = "base_cabinet_length"
	FieldWallCabinetLength Field = "wall_cabinet_length"
	FieldWallCabinetHeight Field = "wall_cabinet_height"
	FieldTallCabinetsCount Field = "tall_cabinets_count"
	FieldIslandLength      Field = "island_length"
	FieldIslandWidth       Field = "island_width"
	FieldCabinetFinish     Field = "cabinet_finish"
	FieldDoorType          Field = "door_type"
	FieldPanelType         Field = "panel_type"
	FieldDoorProfile       Field = "door_profile"
	FieldGlassDoorsCount   Field = "glass_doors_count"
)

// Fields lists every input field in pipeline order.
var Fields = []Field{
	FieldPricePerFoot,
	FieldBaseCabinetLength,
	FieldWallCabinetLength,
	FieldWallCabinetHeight,
	FieldTallCabinetsCount,
	FieldIslandLength,
	FieldIslandWidth,
	FieldCabinetFinish,
	FieldDoorType,
	FieldPanelType,
	FieldDoorProfile,
	FieldGlassDoorsCount,
}

// ParseField maps a field name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownField)
}

// assign coerces v into the field f of in. in is left untouched on error.
func assign(in *quote.Inputs, f Field, v any) error {
	switch f {
	case FieldPricePerFoot:
		return setAmount(&in.PricePerFoot, v)
	case FieldBaseCabinetLength:
		return setAmount(&in.BaseCabinetLength, v)
	case FieldWallCabinetLength:
		return setAmount(&in.WallCabinetLength, v)
	case FieldIslandLength:
		return setAmount(&in.IslandLength, v)
	case FieldIslandWidth:
		return setAmount(&in.IslandWidth, v)
	case FieldTallCabinetsCount:
		return setCount(&in.TallCabinetsCount, v)
	case FieldGlassDoorsCount:
		return setCount(&in.GlassDoorsCount, v)
	case FieldWallCabinetHeight:
		return setOption(&in.WallCabinetHeight, v, quote.ParseWallHeight)
	case FieldCabinetFinish:
		return setOption(&in.CabinetFinish, v, quote.ParseFinish)
	case FieldDoorType:
		return setOption(&in.DoorType, v, quote.ParseDoorType)
	case FieldPanelType:
		return setOption(&in.PanelType, v, quote.ParsePanelType)
	case FieldDoorProfile:
		return setOption(&in.DoorProfile, v, quote.ParseDoorProfile)
	}
	return fmt.Errorf("%q: %w", string(f), ErrUnknownField)
}

func setAmount(dst *float64, v any) error {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return fmt.Errorf("%T for amount: %w", v, ErrWrongType)
	}
	if err := quote.CheckAmount(f); err != nil {
		return err
	}
	*dst = f
	return nil
}

// maxCount bounds float counts so the int conversion is exact.
const maxCount = 1e9

func setCount(dst *int, v any) error {
	var n int
	switch c := v.(type) {
	case int:
		n = c
	case int64:
		n = int(c)
	case float64:
		if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > maxCount {
			return fmt.Errorf("count %g is out of range: %w", c, quote.ErrInvalidValue)
		}
		if c != math.Trunc(c) {
			return fmt.Errorf("count %g is not a whole number: %w", c, quote.ErrInvalidValue)
		}
		n = int(c)
	default:
		return fmt.Errorf("%T for count: %w", v, ErrWrongType)
	}
	if n < 0 {
		return fmt.Errorf("negative count (%d): %w", n, quote.ErrInvalidValue)
	}
	*dst = n
	return nil
}

// setOption accepts either the option type itself or its string token.
func setOption[T ~string](dst *T, v any, parse func(string) (T, error)) error {
	var s string
	switch o := v.(type) {
	case T:
		s = string(o)
	case string:
		s = o
	default:
		return fmt.Errorf("%T for option: %w", v, ErrWrongType)
	}
	parsed, err := parse(s)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}
