package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/mark3labs/quoter/internal/config"
	"github.com/mark3labs/quoter/internal/logger"
	"github.com/mark3labs/quoter/internal/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	logoText1 = "█▀█ █ █ █▀█ ▀█▀ █▀▀ █▀█"
	logoText2 = "▀▀█ █▄█ █▄█  █  ██▄ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

var rootFlags struct {
	rate    float64
	company string
}

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quoter",
	Short: "Interactive cabinet quote estimator",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := applyGradient(logoText1, t.Primary, t.Secondary)
	line2 := applyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

// applyGradient colors each rune of text along a gradient.
func applyGradient(text, from, to string) string {
	runes := []rune(text)
	colors := theme.Gradient(from, to, len(runes))

	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(string(r)))
	}
	return b.String()
}

// loadConfig reads the layered config with the root flags bound on top and
// points the logger at the configured level and file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	if f := cmd.Flags().Lookup("rate"); f != nil {
		if err := v.BindPFlag("price_per_foot", f); err != nil {
			return nil, fmt.Errorf("binding --rate: %w", err)
		}
	}
	if f := cmd.Flags().Lookup("company"); f != nil {
		if err := v.BindPFlag("company", f); err != nil {
			return nil, fmt.Errorf("binding --company: %w", err)
		}
	}

	cfg, err := config.LoadWith(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	logger.Debug("Config loaded: rate=%g company=%q", cfg.PricePerFoot, cfg.Company)
	return cfg, nil
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

quoter walks a customer through a short questionnaire about their kitchen
cabinets and prices it live: base and wall runs, tall cabinets, an island,
finish, door construction and glass doors. The result is a low/high estimate
range with an optional line-by-line breakdown.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./quoter.yml
Global config: ~/.config/quoter/quoter.yml`

	rootCmd.PersistentFlags().Float64Var(&rootFlags.rate, "rate", 0, "Price per linear foot (overrides price_per_foot)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.company, "company", "", "Company name shown on quotes (overrides company)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(setupCmd)
}
