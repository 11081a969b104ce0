package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/quoter/internal/quotemcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve quote pricing as MCP tools over stdio",
	Long: `Serve quote pricing as MCP tools over stdio.

The mcp command speaks the Model Context Protocol on stdin/stdout so an
assistant can price kitchens with the same rules as 'quoter quote'. Tools:

  calculate_quote  price a quote from any subset of the input fields
  list_steps       the questionnaire steps in order
  list_options     accepted option values and their multipliers

The configured price_per_foot and company apply to every quote. Logs go to
log_file only; stdout carries protocol messages.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := quotemcp.New(cfg.PricePerFoot, cfg.Company, version)
	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}
