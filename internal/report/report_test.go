package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullKitchen() (quote.Inputs, quote.Values) {
	in := quote.Inputs{
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
	return in, quote.Calculate(in)
}

func baseOnly() (quote.Inputs, quote.Values) {
	in := quote.DefaultInputs(1000)
	in.BaseCabinetLength = 1
	in.CabinetFinish = quote.FinishClearStain
	return in, quote.Calculate(in)
}

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.49, "$999"},
		{1000, "$1,000"},
		{45730.62, "$45,731"},
		{52082.095, "$52,082"},
		{1234567.5, "$1,234,568"},
		{-1500, "-$1,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "Currency(%v)", tt.in)
	}
}

func TestCurrencyCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0.00", CurrencyCents(0))
	assert.Equal(t, "$50,811.80", CurrencyCents(50811.8))
	assert.Equal(t, "$45,730.62", CurrencyCents(45730.62))
	assert.Equal(t, "$7.05", CurrencyCents(7.05))
	assert.Equal(t, "-$12.50", CurrencyCents(-12.5))
}

func TestFeet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10", Feet(10))
	assert.Equal(t, "3.5", Feet(3.5))
	assert.Equal(t, "0", Feet(0))
}

func TestMarkdown_Headline(t *testing.T) {
	t.Parallel()

	in, v := fullKitchen()
	md := Markdown(in, v, Options{Company: "Acme Cabinets"})

	assert.Contains(t, md, "# Your Cabinet Quote")
	assert.Contains(t, md, "_Acme Cabinets_")
	assert.Contains(t, md, "## $45,731 - $58,434")
	assert.Contains(t, md, "**Average:** $52,082")
	assert.Contains(t, md, "Quote based on $1,000/ft base rate")
	assert.Contains(t, md, "| Base Cabinets | 10 ft | $10,000 |")
	assert.Contains(t, md, "| Wall Cabinets | 8 ft | $10,000 |")
	assert.Contains(t, md, "| Special Features | 4 items | $16,500 |")
	assert.Contains(t, md, "Delivery and installation not included")
	assert.NotContains(t, md, "Calculation Breakdown")
}

func TestMarkdown_Breakdown(t *testing.T) {
	t.Parallel()

	in, v := fullKitchen()
	md := Markdown(in, v, Options{Breakdown: true})

	for _, want := range []string{
		"| A. Price per foot | $1,000 |",
		"| B. Base cabinets (10 ft × A) | $10,000 |",
		"| E. Tall cabinets (1 × A × 6) | $6,000 |",
		"| F. Island length (5 ft × A) | $5,000 |",
		"| G. Island total (F × width 3 ft) | $10,000 |",
		"| **H. Subtotal (B + D + E + G)** | $36,000 |",
		"| K. After panel type (Raised Panel) | $45,738 |",
		"| L. After profile (Profile) | $50,312 |",
		"| M. Glass doors (2 × A × 0.25) | $500 |",
		"| **N. Total (L + M)** | $50,812 |",
		"| Low estimate (90%) | $45,731 |",
		"| High estimate (115%) | $58,434 |",
	} {
		assert.Contains(t, md, want)
	}
}

func TestMarkdown_BreakdownOmitsEmptyRows(t *testing.T) {
	t.Parallel()

	in, v := baseOnly()
	md := Markdown(in, v, Options{Breakdown: true})

	assert.Contains(t, md, "## $900 - $1,150")
	assert.Contains(t, md, "| Special Features | 0 items | $0 |")
	assert.Contains(t, md, "K. After panel type (n/a)")
	for _, absent := range []string{"E. Tall", "F. Island", "G. Island", "M. Glass"} {
		assert.NotContains(t, md, absent)
	}
}

func TestSpecialItems(t *testing.T) {
	t.Parallel()

	in := quote.DefaultInputs(1000)
	assert.Equal(t, 0, SpecialItems(in))
	in.IslandLength = 0.5
	in.TallCabinetsCount = 2
	in.GlassDoorsCount = 3
	assert.Equal(t, 6, SpecialItems(in))
}

func TestRender(t *testing.T) {
	t.Parallel()

	in, v := fullKitchen()
	out := ansi.Strip(Render(Markdown(in, v, Options{}), 80))

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Your Cabinet Quote")
	assert.Contains(t, out, "$45,731 - $58,434")
	assert.False(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(out, "\n")
	assert.NotEmpty(t, strings.TrimSpace(lines[len(lines)-1]), "no blank padding line at the end")
}

func TestTrimTrailingBlankLines(t *testing.T) {
	t.Parallel()

	padded := "  \x1b[38;5;252mtotal\x1b[m\n \x1b[m\x1b[38;5;252m \x1b[m\n\n"
	assert.Equal(t, "  \x1b[38;5;252mtotal\x1b[m", trimTrailingBlankLines(padded))
	assert.Equal(t, "", trimTrailingBlankLines("\n\n"))
}

func TestRenderTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tmpl string
		vars Variables
		want string
	}{
		{
			name: "simple substitution",
			tmpl: "{{company}}: {{low}} - {{high}}",
			vars: Variables{Company: "Acme", Low: "$1", High: "$2"},
			want: "Acme: $1 - $2",
		},
		{
			name: "empty optional lines",
			tmpl: "A\n{{tall}}{{island}}{{glass}}B",
			want: "A\nB",
		},
		{
			name: "unknown placeholder kept",
			tmpl: "{{sink}}",
			want: "{{sink}}",
		},
		{
			name: "placeholder text in a value is not expanded",
			tmpl: "{{company}} quotes {{low}}",
			vars: Variables{Company: "{{low}} Cabinets", Low: "$900"},
			want: "{{low}} Cabinets quotes $900",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repeat to catch order-dependent substitution
			for range 20 {
				assert.Equal(t, tt.want, RenderTemplate(tt.tmpl, tt.vars))
			}
		})
	}
}

func TestSummary_Default(t *testing.T) {
	t.Parallel()

	in, v := fullKitchen()
	got, err := Summary("Acme Cabinets", in, v, "")
	require.NoError(t, err)

	want := `Quote request for Acme Cabinets
Base Cabinets: 10 ft
Wall Cabinets: 8 ft (36 inches)
Tall Cabinets: 1
Island: 5 × 3 ft
Finish: Painted Finish, Door: Center Panel, Panel: Raised Panel, Profile: Profile
Glass Doors: 2
Estimated Range: $45,731 - $58,434
Average: $52,082
`
	require.Equal(t, want, got)
}

func TestSummary_SlabHidesPanel(t *testing.T) {
	t.Parallel()

	in, v := baseOnly()
	got, err := Summary("Acme", in, v, "")
	require.NoError(t, err)
	require.Contains(t, got, "Door: Solid Slab, Panel: n/a")
	require.NotContains(t, got, "Tall Cabinets")
	require.NotContains(t, got, "Island")
}

func TestSummary_CustomTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, os.WriteFile(path, []byte("{{company}} {{average}}"), 0644))

	in, v := baseOnly()
	got, err := Summary("Acme", in, v, path)
	require.NoError(t, err)
	require.Equal(t, "Acme $1,025", got)

	_, err = Summary("Acme", in, v, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
