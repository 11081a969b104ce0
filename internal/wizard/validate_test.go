package wizard

import (
	"math"
	"testing"

	"github.com/mark3labs/quoter/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAdvance(t *testing.T) {
	t.Parallel()

	defaults := quote.DefaultInputs(1000)
	with := func(edit func(*quote.Inputs)) quote.Inputs {
		in := defaults
		edit(&in)
		return in
	}

	tests := []struct {
		name string
		step int
		in   quote.Inputs
		want bool
	}{
		{"base zero", StepBaseCabinetLength, defaults, false},
		{"base positive", StepBaseCabinetLength, with(func(in *quote.Inputs) { in.BaseCabinetLength = 0.5 }), true},
		{"base nan", StepBaseCabinetLength, with(func(in *quote.Inputs) { in.BaseCabinetLength = math.NaN() }), false},
		{"wall zero", StepWallCabinetLength, defaults, false},
		{"wall positive", StepWallCabinetLength, with(func(in *quote.Inputs) { in.WallCabinetLength = 8 }), true},
		{"height default", StepWallCabinetHeight, defaults, true},
		{"height undeclared", StepWallCabinetHeight, with(func(in *quote.Inputs) { in.WallCabinetHeight = "h50" }), false},
		{"tall zero", StepTallCabinets, defaults, true},
		{"island none", StepIslandPeninsula, defaults, true},
		{"island sized", StepIslandPeninsula, with(func(in *quote.Inputs) { in.IslandLength = 6; in.IslandWidth = 3 }), true},
		{"finish default", StepCabinetFinish, defaults, true},
		{"finish without door type", StepCabinetFinish, with(func(in *quote.Inputs) { in.DoorType = "" }), false},
		{"panel skipped for slab", StepPanelType, with(func(in *quote.Inputs) { in.PanelType = "" }), true},
		{"panel required for center panel", StepPanelType, with(func(in *quote.Inputs) { in.DoorType = quote.DoorCenterPanel; in.PanelType = "" }), false},
		{"panel chosen", StepPanelType, with(func(in *quote.Inputs) { in.DoorType = quote.DoorCenterPanel; in.PanelType = quote.PanelFlat }), true},
		{"profile default", StepDoorProfile, defaults, true},
		{"glass zero", StepGlassDoors, defaults, true},
		{"results terminal", StepResults, defaults, false},
		{"below range", -1, defaults, false},
		{"above range", TotalSteps, defaults, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAdvance(tt.step, tt.in))
		})
	}
}

func TestAdvisories(t *testing.T) {
	t.Parallel()

	in := quote.DefaultInputs(1000)
	in.BaseCabinetLength = 1000
	require.Empty(t, Advisories(StepBaseCabinetLength, in), "limit is inclusive")

	in.BaseCabinetLength = 1000.5
	in.WallCabinetLength = 2000
	in.IslandLength = 51
	in.GlassDoorsCount = 51
	in.TallCabinetsCount = 60

	require.Len(t, Advisories(StepBaseCabinetLength, in), 1)
	require.Len(t, Advisories(StepWallCabinetLength, in), 1)
	require.Len(t, Advisories(StepIslandPeninsula, in), 1)
	require.Len(t, Advisories(StepGlassDoors, in), 1)
	require.Len(t, Advisories(StepTallCabinets, in), 1)
	require.Empty(t, Advisories(StepResults, in))

	for step := StepBaseCabinetLength; step < StepResults; step++ {
		if step == StepBaseCabinetLength || step == StepWallCabinetLength {
			continue
		}
		require.Equal(t, CanAdvance(step, quote.DefaultInputs(1000)), CanAdvance(step, in), "step %d", step)
	}
}

func TestStepsCatalog(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10, TotalSteps)
	require.Equal(t, "quote-results", Steps[ResultsStep].ID)

	seen := map[string]bool{}
	for _, s := range Steps {
		require.NotEmpty(t, s.Title)
		require.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}

	i, ok := StepByID("panel-type")
	require.True(t, ok)
	require.Equal(t, StepPanelType, i)
	_, ok = StepByID("door-type")
	require.False(t, ok)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Progress(0))
	assert.Equal(t, 11, Progress(1))
	assert.Equal(t, 56, Progress(5))
	assert.Equal(t, 89, Progress(8))
	assert.Equal(t, 100, Progress(ResultsStep))
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := ParseField("door_type")
	require.NoError(t, err)
	require.Equal(t, FieldDoorType, f)

	_, err = ParseField("doorType")
	require.ErrorIs(t, err, ErrUnknownField)
	require.Len(t, Fields, 12)
}
