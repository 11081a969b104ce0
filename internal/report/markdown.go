package report

import (
	"fmt"
	"strings"

	"github.com/mark3labs/quoter/internal/quote"
)

// Options controls which sections Markdown includes.
type Options struct {
	// Breakdown adds the lettered calculation table.
	Breakdown bool
	// Company is shown under the headline when set.
	Company string
}

// Markdown renders the results sheet for a priced quote.
func Markdown(in quote.Inputs, v quote.Values, opts Options) string {
	var sb strings.Builder

	sb.WriteString("# Your Cabinet Quote\n\n")
	if opts.Company != "" {
		fmt.Fprintf(&sb, "_%s_\n\n", opts.Company)
	}
	fmt.Fprintf(&sb, "## %s - %s\n\n", Currency(v.LowEstimate), Currency(v.HighEstimate))
	fmt.Fprintf(&sb, "**Average:** %s\n\n", Currency(v.Average()))
	fmt.Fprintf(&sb, "Quote based on %s/ft base rate\n\n", Currency(in.PricePerFoot))

	sb.WriteString("| | Size | Cost |\n|---|---|---|\n")
	fmt.Fprintf(&sb, "| Base Cabinets | %s ft | %s |\n", Feet(in.BaseCabinetLength), Currency(v.BaseCost))
	fmt.Fprintf(&sb, "| Wall Cabinets | %s ft | %s |\n", Feet(in.WallCabinetLength), Currency(v.WallAdjustedCost))
	fmt.Fprintf(&sb, "| Special Features | %d items | %s |\n\n",
		SpecialItems(in), Currency(v.TallCost+v.IslandTotalCost+v.GlassDoorCost))

	if opts.Breakdown {
		writeBreakdown(&sb, in, v)
	}

	sb.WriteString("### Important Notes\n\n")
	sb.WriteString("- Actual price will vary\n")
	sb.WriteString("- Delivery and installation not included\n")
	return sb.String()
}

// SpecialItems counts tall cabinets, glass doors and the island as one item.
func SpecialItems(in quote.Inputs) int {
	n := in.TallCabinetsCount + in.GlassDoorsCount
	if in.IslandLength > 0 {
		n++
	}
	return n
}

func writeBreakdown(sb *strings.Builder, in quote.Inputs, v quote.Values) {
	sb.WriteString("### Calculation Breakdown\n\n")
	sb.WriteString("| Line | Amount |\n|---|---:|\n")

	row := func(label string, amount float64) {
		fmt.Fprintf(sb, "| %s | %s |\n", label, Currency(amount))
	}

	row("A. Price per foot", in.PricePerFoot)
	row(fmt.Sprintf("B. Base cabinets (%s ft × A)", Feet(in.BaseCabinetLength)), v.BaseCost)
	row(fmt.Sprintf("C. Wall cabinets base (%s ft × A)", Feet(in.WallCabinetLength)), v.WallBaseCost)
	row(fmt.Sprintf("D. Wall cabinets adjusted (C × %s)", in.WallCabinetHeight.Label()), v.WallAdjustedCost)
	if in.TallCabinetsCount > 0 {
		row(fmt.Sprintf("E. Tall cabinets (%d × A × 6)", in.TallCabinetsCount), v.TallCost)
	}
	if in.IslandLength > 0 {
		row(fmt.Sprintf("F. Island length (%s ft × A)", Feet(in.IslandLength)), v.IslandLengthCost)
		row(fmt.Sprintf("G. Island total (F × width %s ft)", Feet(in.IslandWidth)), v.IslandTotalCost)
	}
	row("**H. Subtotal (B + D + E + G)**", v.Subtotal)
	row(fmt.Sprintf("I. After finish (%s)", in.CabinetFinish.Label()), v.AfterFinish)
	row(fmt.Sprintf("J. After door type (%s)", in.DoorType.Label()), v.AfterDoorType)
	if in.DoorType == quote.DoorCenterPanel {
		row(fmt.Sprintf("K. After panel type (%s)", in.PanelType.Label()), v.AfterPanelType)
	} else {
		row("K. After panel type (n/a)", v.AfterPanelType)
	}
	row(fmt.Sprintf("L. After profile (%s)", in.DoorProfile.Label()), v.AfterProfile)
	if in.GlassDoorsCount > 0 {
		row(fmt.Sprintf("M. Glass doors (%d × A × 0.25)", in.GlassDoorsCount), v.GlassDoorCost)
	}
	row("**N. Total (L + M)**", v.FinalTotal)
	row("Low estimate (90%)", v.LowEstimate)
	row("High estimate (115%)", v.HighEstimate)
	sb.WriteString("\n")
}
