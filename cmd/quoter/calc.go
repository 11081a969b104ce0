package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/report"
	"github.com/mark3labs/quoter/internal/wizard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for calc.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

var calcFlags struct {
	input     string
	format    string
	breakdown bool
	width     int
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Price a quote without the questionnaire",
	Long: `Price a quote without the questionnaire.

Inputs come from a YAML file (--input, "-" for stdin) using the same keys as
the field flags below, with underscores: base_cabinet_length,
wall_cabinet_height and so on. Field flags override the file. Anything left
unset takes the questionnaire's default.

Example:
  quoter calc --base-cabinet-length 12 --wall-cabinet-length 10 \
    --door-type center-panel --panel-type flat --breakdown`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcFlags.input, "input", "i", "", "YAML file with quote inputs")
	calcCmd.Flags().StringVarP(&calcFlags.format, "format", "f", formatText, "Output format (text, markdown, json, yaml)")
	calcCmd.Flags().BoolVarP(&calcFlags.breakdown, "breakdown", "b", false, "Include the line-by-line breakdown")
	calcCmd.Flags().IntVarP(&calcFlags.width, "width", "w", 80, "Width of text output")

	for _, f := range wizard.Fields {
		if f == wizard.FieldPricePerFoot {
			continue // --rate
		}
		calcCmd.Flags().String(flagName(f), "", fieldUsage(f))
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in := quote.DefaultInputs(cfg.PricePerFoot)
	if calcFlags.input != "" {
		in, err = readInputs(calcFlags.input, in)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("rate") {
		in.PricePerFoot = cfg.PricePerFoot
	}

	s := wizard.New(in.PricePerFoot)
	if err := s.Load(in); err != nil {
		return err
	}
	for _, f := range wizard.Fields {
		name := flagName(f)
		if f == wizard.FieldPricePerFoot || !cmd.Flags().Changed(name) {
			continue
		}
		raw, _ := cmd.Flags().GetString(name)
		if err := setFromFlag(s, f, raw); err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
	}

	return writeResult(os.Stdout, calcFlags.format, s.Inputs(), s.Values(), report.Options{
		Breakdown: calcFlags.breakdown,
		Company:   cfg.Company,
	}, calcFlags.width)
}

// flagName turns a field name into its kebab-case flag.
func flagName(f wizard.Field) string {
	return strings.ReplaceAll(string(f), "_", "-")
}

func fieldUsage(f wizard.Field) string {
	switch f {
	case wizard.FieldWallCabinetHeight:
		return "Wall cabinet height (h30, h36, h40, h42plus)"
	case wizard.FieldCabinetFinish:
		return "Cabinet finish (painted, clear-stain)"
	case wizard.FieldDoorType:
		return "Door type (solid-slab, center-panel)"
	case wizard.FieldPanelType:
		return "Panel type for center panel doors (raised, flat)"
	case wizard.FieldDoorProfile:
		return "Door profile (shaker, profile, skinny-shaker)"
	case wizard.FieldTallCabinetsCount, wizard.FieldGlassDoorsCount:
		return strings.ReplaceAll(string(f), "_", " ")
	}
	return strings.ReplaceAll(string(f), "_", " ") + " in feet"
}

// readInputs decodes YAML quote inputs from path on top of base.
func readInputs(path string, base quote.Inputs) (quote.Inputs, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return base, fmt.Errorf("failed to open input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return decodeInputs(r, base)
}

func decodeInputs(r io.Reader, base quote.Inputs) (quote.Inputs, error) {
	in := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("failed to parse input file: %w", err)
	}
	if err := in.Validate(); err != nil {
		return base, fmt.Errorf("invalid input file: %w", err)
	}
	return in, nil
}

// setFromFlag converts a raw flag value to the field's type and sets it.
func setFromFlag(s *wizard.Session, f wizard.Field, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f {
	case wizard.FieldTallCabinetsCount, wizard.FieldGlassDoorsCount:
		if n, err := strconv.Atoi(raw); err == nil {
			return s.Set(f, n)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", raw)
		}
		return s.Set(f, v)
	case wizard.FieldWallCabinetHeight, wizard.FieldCabinetFinish, wizard.FieldDoorType,
		wizard.FieldPanelType, wizard.FieldDoorProfile:
		return s.Set(f, raw)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	return s.Set(f, v)
}

// calcOutput is the machine-readable form of a priced quote.
type calcOutput struct {
	Inputs  quote.Inputs `json:"inputs" yaml:"inputs"`
	Values  quote.Values `json:"values" yaml:"values"`
	Average float64      `json:"averageEstimate" yaml:"average_estimate"`
}

func writeResult(w io.Writer, format string, in quote.Inputs, v quote.Values, opts report.Options, width int) error {
	switch format {
	case formatText:
		_, err := fmt.Fprintln(w, report.Render(report.Markdown(in, v, opts), width))
		return err
	case formatMarkdown:
		_, err := io.WriteString(w, report.Markdown(in, v, opts))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(calcOutput{Inputs: in, Values: v, Average: v.Average()})
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(calcOutput{Inputs: in, Values: v, Average: v.Average()}); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want text, markdown, json or yaml)", format)
}
