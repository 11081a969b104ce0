package quotemcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/mark3labs/quoter/internal/wizard"
	"github.com/stretchr/testify/require"
)

// extractText returns the first text content of a tool result.
func extractText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestCalculateQuote_FullKitchen(t *testing.T) {
	s := New(1000, "Acme Cabinets", "test")

	result, err := s.handleCalculateQuote(context.Background(), callTool(ToolCalculateQuote, map[string]any{
		"base_cabinet_length": 20.0,
		"wall_cabinet_length": 15.0,
		"wall_cabinet_height": "h36",
		"tall_cabinets_count": 2.0,
		"island_length":       8.0,
		"island_width":        4.0,
		"cabinet_finish":      "painted",
		"door_type":           "center-panel",
		"panel_type":          "raised",
		"door_profile":        "shaker",
		"glass_doors_count":   4.0,
		"breakdown":           true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, extractText(result))

	var got quoteResult
	require.NoError(t, json.Unmarshal([]byte(extractText(result)), &got))
	require.Equal(t, quote.WallHeight36, got.Inputs.WallCabinetHeight)
	require.Equal(t, 2, got.Inputs.TallCabinetsCount)
	require.Equal(t, quote.Calculate(got.Inputs), got.Values)
	require.Equal(t, got.Values.Average(), got.Average)
	require.Contains(t, got.Markdown, "_Acme Cabinets_")
	require.Contains(t, got.Markdown, "| A. Price per foot | $1,000 |")
}

func TestCalculateQuote_DefaultsWhenEmpty(t *testing.T) {
	s := New(1250, "", "test")

	result, err := s.handleCalculateQuote(context.Background(), callTool(ToolCalculateQuote, nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got quoteResult
	require.NoError(t, json.Unmarshal([]byte(extractText(result)), &got))
	require.Equal(t, quote.DefaultInputs(1250), got.Inputs)
	require.Zero(t, got.Values.FinalTotal)
	require.NotContains(t, got.Markdown, "Calculation Breakdown")
}

func TestCalculateQuote_Rejects(t *testing.T) {
	tests := map[string]map[string]any{
		"negative length":    {"base_cabinet_length": -1.0},
		"fractional count":   {"glass_doors_count": 1.5},
		"unknown option":     {"door_profile": "cathedral"},
		"wrong type":         {"island_length": "long"},
		"unknown field":      {"drawer_count": 3.0},
		"non-bool breakdown": {"breakdown": "yes"},
	}
	s := New(1000, "", "test")
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := s.handleCalculateQuote(context.Background(), callTool(ToolCalculateQuote, args))
			require.NoError(t, err)
			require.True(t, result.IsError)
			require.NotEmpty(t, extractText(result))
		})
	}
}

func TestListSteps(t *testing.T) {
	s := New(1000, "", "test")

	result, err := s.handleListSteps(context.Background(), callTool(ToolListSteps, nil))
	require.NoError(t, err)

	var steps []stepEntry
	require.NoError(t, json.Unmarshal([]byte(extractText(result)), &steps))
	require.Len(t, steps, wizard.TotalSteps)
	require.Equal(t, "base-cabinet-length", steps[0].ID)
	require.Equal(t, "quote-results", steps[wizard.ResultsStep].ID)
	require.Equal(t, 100, steps[wizard.ResultsStep].Progress)
}

func TestListOptions(t *testing.T) {
	s := New(1000, "", "test")

	result, err := s.handleListOptions(context.Background(), callTool(ToolListOptions, nil))
	require.NoError(t, err)

	var sets []optionSet
	require.NoError(t, json.Unmarshal([]byte(extractText(result)), &sets))
	require.Len(t, sets, 5)

	byField := map[string][]quote.Option{}
	for _, set := range sets {
		byField[set.Field] = set.Options
	}
	require.Equal(t, quote.DoorTypeOptions(), byField["door_type"])
	require.Len(t, byField["wall_cabinet_height"], len(quote.WallHeights))
}

func TestServer_HandleMessageListsTools(t *testing.T) {
	s := New(1000, "", "test")

	resp := s.mcpServer.HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, ToolCalculateQuote)
	require.Contains(t, out, ToolListSteps)
	require.Contains(t, out, ToolListOptions)
}
