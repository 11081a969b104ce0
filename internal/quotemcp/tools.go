package quotemcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/report"
	"github.com/mark3labs/quoter/internal/wizard"
)

// Tool names.
const (
	ToolCalculateQuote = "calculate_quote"
	ToolListSteps      = "list_steps"
	ToolListOptions    = "list_options"
)

const argBreakdown = "breakdown"

// optionSets maps each option field to its members.
var optionSets = map[wizard.Field]func() []quote.Option{
	wizard.FieldWallCabinetHeight: quote.WallHeightOptions,
	wizard.FieldCabinetFinish:     quote.FinishOptions,
	wizard.FieldDoorType:          quote.DoorTypeOptions,
	wizard.FieldPanelType:         quote.PanelTypeOptions,
	wizard.FieldDoorProfile:       quote.DoorProfileOptions,
}

func optionValues(f wizard.Field) []string {
	opts := optionSets[f]()
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}

func (s *Server) registerTools() {
	calcOpts := []mcp.ToolOption{
		mcp.WithDescription("Price a cabinet quote. Every field is optional and defaults to the questionnaire's starting value; lengths are in feet."),
		mcp.WithBoolean(argBreakdown, mcp.Description("Include the line-by-line breakdown in the markdown sheet")),
	}
	for _, f := range wizard.Fields {
		desc := mcp.Description(strings.ReplaceAll(string(f), "_", " "))
		switch f {
		case wizard.FieldWallCabinetHeight, wizard.FieldCabinetFinish, wizard.FieldDoorType,
			wizard.FieldPanelType, wizard.FieldDoorProfile:
			calcOpts = append(calcOpts, mcp.WithString(string(f), desc, mcp.Enum(optionValues(f)...)))
		default:
			calcOpts = append(calcOpts, mcp.WithNumber(string(f), desc, mcp.Min(0)))
		}
	}
	s.mcpServer.AddTool(mcp.NewTool(ToolCalculateQuote, calcOpts...), s.handleCalculateQuote)

	s.mcpServer.AddTool(
		mcp.NewTool(ToolListSteps,
			mcp.WithDescription("List the questionnaire steps in order"),
		),
		s.handleListSteps,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(ToolListOptions,
			mcp.WithDescription("List the accepted values and price multipliers of every option field"),
		),
		s.handleListOptions,
	)
}

// quoteResult is the calculate_quote payload.
type quoteResult struct {
	Inputs   quote.Inputs `json:"inputs"`
	Values   quote.Values `json:"values"`
	Average  float64      `json:"averageEstimate"`
	Markdown string       `json:"markdown"`
}

// handleCalculateQuote applies the given fields to a fresh session and
// returns the priced quote. A rejected field fails the whole call.
func (s *Server) handleCalculateQuote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	for name := range args {
		if name == argBreakdown {
			continue
		}
		if _, err := wizard.ParseField(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	sess := wizard.New(s.rate)
	for _, f := range wizard.Fields {
		v, ok := args[string(f)]
		if !ok {
			continue
		}
		if err := sess.Set(f, v); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", f, err)), nil
		}
	}

	breakdown := false
	if raw, ok := args[argBreakdown]; ok {
		b, ok := raw.(bool)
		if !ok {
			return mcp.NewToolResultError("'breakdown' must be a boolean"), nil
		}
		breakdown = b
	}

	in, v := sess.Inputs(), sess.Values()
	md := report.Markdown(in, v, report.Options{
		Breakdown: breakdown,
		Company:   s.company,
	})
	return jsonResult(quoteResult{
		Inputs:   in,
		Values:   v,
		Average:  v.Average(),
		Markdown: md,
	})
}

type stepEntry struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

func (s *Server) handleListSteps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	steps := make([]stepEntry, 0, wizard.TotalSteps)
	for i, st := range wizard.Steps {
		steps = append(steps, stepEntry{
			Index:       i,
			ID:          st.ID,
			Title:       st.Title,
			Description: st.Description,
			Progress:    wizard.Progress(i),
		})
	}
	return jsonResult(steps)
}

type optionSet struct {
	Field   string         `json:"field"`
	Options []quote.Option `json:"options"`
}

func (s *Server) handleListOptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sets := make([]optionSet, 0, len(optionSets))
	for f, opts := range optionSets {
		sets = append(sets, optionSet{Field: string(f), Options: opts()})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Field < sets[j].Field })
	return jsonResult(sets)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
