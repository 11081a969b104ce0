package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/quoter/internal/logger"
	"github.com/mark3labs/quoter/internal/quote"
)

// DefaultSummaryTemplate is the embedded contact summary. Optional lines
// expand to nothing when the matching item is absent.
const DefaultSummaryTemplate = `Quote request for {{company}}
Base Cabinets: {{base_length}} ft
Wall Cabinets: {{wall_length}} ft ({{wall_height}})
{{tall}}{{island}}Finish: {{finish}}, Door: {{door_type}}, Panel: {{panel}}, Profile: {{profile}}
{{glass}}Estimated Range: {{low}} - {{high}}
Average: {{average}}
`

// Variables holds the data injected into summary placeholders.
type Variables struct {
	Company    string // Company receiving the request
	BaseLength string // Base cabinet run in feet
	WallLength string // Wall cabinet run in feet
	WallHeight string // Wall height label
	Tall       string // "Tall Cabinets: n\n" or empty
	Island     string // "Island: l × w ft\n" or empty
	Finish     string // Finish label
	DoorType   string // Door type label
	Panel      string // Panel label, "n/a" for slab doors
	Profile    string // Door profile label
	Glass      string // "Glass Doors: n\n" or empty
	Low        string // Low estimate
	High       string // High estimate
	Average    string // Midpoint of the range
}

// RenderTemplate replaces {{variable}} placeholders in tmpl with values in a
// single pass, so placeholder text inside a value is left as is.
func RenderTemplate(tmpl string, vars Variables) string {
	r := strings.NewReplacer(
		"{{company}}", vars.Company,
		"{{base_length}}", vars.BaseLength,
		"{{wall_length}}", vars.WallLength,
		"{{wall_height}}", vars.WallHeight,
		"{{tall}}", vars.Tall,
		"{{island}}", vars.Island,
		"{{finish}}", vars.Finish,
		"{{door_type}}", vars.DoorType,
		"{{panel}}", vars.Panel,
		"{{profile}}", vars.Profile,
		"{{glass}}", vars.Glass,
		"{{low}}", vars.Low,
		"{{high}}", vars.High,
		"{{average}}", vars.Average,
	)
	return r.Replace(tmpl)
}

// GetTemplate returns the summary template. If customPath is non-empty it is
// loaded from that file, otherwise the embedded default is returned.
func GetTemplate(customPath string) (string, error) {
	if customPath == "" {
		return DefaultSummaryTemplate, nil
	}
	data, err := os.ReadFile(customPath)
	if err != nil {
		return "", fmt.Errorf("failed to read summary template %s: %w", customPath, err)
	}
	return string(data), nil
}

// SummaryVariables formats a priced quote for template injection.
func SummaryVariables(company string, in quote.Inputs, v quote.Values) Variables {
	vars := Variables{
		Company:    company,
		BaseLength: Feet(in.BaseCabinetLength),
		WallLength: Feet(in.WallCabinetLength),
		WallHeight: in.WallCabinetHeight.Label(),
		Finish:     in.CabinetFinish.Label(),
		DoorType:   in.DoorType.Label(),
		Panel:      "n/a",
		Profile:    in.DoorProfile.Label(),
		Low:        Currency(v.LowEstimate),
		High:       Currency(v.HighEstimate),
		Average:    Currency(v.Average()),
	}
	if in.DoorType == quote.DoorCenterPanel {
		vars.Panel = in.PanelType.Label()
	}
	if in.TallCabinetsCount > 0 {
		vars.Tall = "Tall Cabinets: " + strconv.Itoa(in.TallCabinetsCount) + "\n"
	}
	if in.IslandLength > 0 {
		vars.Island = fmt.Sprintf("Island: %s × %s ft\n", Feet(in.IslandLength), Feet(in.IslandWidth))
	}
	if in.GlassDoorsCount > 0 {
		vars.Glass = "Glass Doors: " + strconv.Itoa(in.GlassDoorsCount) + "\n"
	}
	return vars
}

// Summary renders the contact summary for a priced quote using the template
// at templatePath, or the default when templatePath is empty.
func Summary(company string, in quote.Inputs, v quote.Values, templatePath string) (string, error) {
	if templatePath != "" {
		logger.Debug("Using custom summary template: %s", templatePath)
	}
	tmpl, err := GetTemplate(templatePath)
	if err != nil {
		logger.Error("Failed to get summary template: %v", err)
		return "", err
	}
	return RenderTemplate(tmpl, SummaryVariables(company, in, v)), nil
}
