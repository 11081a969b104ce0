package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/quoter/internal/config"
	"github.com/mark3labs/quoter/internal/logger"
	qnats "github.com/mark3labs/quoter/internal/nats"
	"github.com/mark3labs/quoter/internal/report"
	"github.com/mark3labs/quoter/internal/submit"
	"github.com/mark3labs/quoter/internal/tui/quotewizard"
	"github.com/spf13/cobra"
)

// publishTimeout bounds how long a submit waits for the server to flush.
const publishTimeout = 10 * time.Second

var quoteFlags struct {
	submit  bool
	name    string
	email   string
	phone   string
	address string
	prefer  string
	notes   string
	width   int
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Build a cabinet quote interactively",
	Long: `Build a cabinet quote interactively.

The quote command opens a step-by-step questionnaire in the terminal. Each
answer updates a running estimate; the last screen shows the estimate range
and, on request, the full price breakdown. The finished quote is printed
when the wizard closes.

With --submit the quote is also sent as a detailed quote request to the
shop's listener (see 'quoter listen'). Contact details are checked before
the questionnaire starts.`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().BoolVarP(&quoteFlags.submit, "submit", "s", false, "Send the finished quote as a quote request")
	quoteCmd.Flags().StringVar(&quoteFlags.name, "name", "", "Customer name (required with --submit)")
	quoteCmd.Flags().StringVar(&quoteFlags.email, "email", "", "Customer email")
	quoteCmd.Flags().StringVar(&quoteFlags.phone, "phone", "", "Customer phone")
	quoteCmd.Flags().StringVar(&quoteFlags.address, "address", "", "Project address")
	quoteCmd.Flags().StringVar(&quoteFlags.prefer, "prefer", "email", "Preferred contact method (email, phone)")
	quoteCmd.Flags().StringVar(&quoteFlags.notes, "notes", "", "Additional notes for the shop")
	quoteCmd.Flags().IntVarP(&quoteFlags.width, "width", "w", 80, "Width of the printed quote")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Fail on bad contact details before the customer answers anything
	var contact submit.Contact
	if quoteFlags.submit {
		contact, err = contactFromFlags()
		if err != nil {
			return err
		}
	}

	res, err := quotewizard.Run(quotewizard.Config{
		PricePerFoot: cfg.PricePerFoot,
		Company:      cfg.Company,
		DataDir:      cfg.DataDir,
	})
	if errors.Is(err, quotewizard.ErrCancelled) {
		fmt.Println("Quote cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	md := report.Markdown(res.Inputs, res.Values, report.Options{
		Breakdown: res.ShowBreakdown,
		Company:   cfg.Company,
	})
	fmt.Println(report.Render(md, quoteFlags.width))

	if !quoteFlags.submit {
		return nil
	}
	return submitQuote(cmd.Context(), cfg, contact, res)
}

func contactFromFlags() (submit.Contact, error) {
	method, err := submit.ParseContactMethod(quoteFlags.prefer)
	if err != nil {
		return submit.Contact{}, err
	}
	c := submit.Contact{
		Name:             quoteFlags.name,
		Email:            quoteFlags.email,
		Phone:            quoteFlags.phone,
		Address:          quoteFlags.address,
		PreferredContact: method,
		Notes:            quoteFlags.notes,
	}
	if err := c.Validate(); err != nil {
		return submit.Contact{}, fmt.Errorf("cannot submit: %w", err)
	}
	return c, nil
}

func submitQuote(ctx context.Context, cfg *config.Config, contact submit.Contact, res *quotewizard.Result) error {
	summary, err := report.Summary(cfg.Company, res.Inputs, res.Values, cfg.SummaryTemplate)
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	req, err := submit.NewRequest(contact, res.Inputs, res.Values, summary)
	if err != nil {
		return fmt.Errorf("failed to build quote request: %w", err)
	}

	nc, err := qnats.Connect(cfg.NATSURL)
	if err != nil {
		return fmt.Errorf("no quote listener reachable (run 'quoter listen'): %w", err)
	}
	defer nc.Close()

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	pub := submit.NewNATSPublisher(nc, cfg.Company)
	if err := pub.Publish(ctx, req); err != nil {
		return fmt.Errorf("failed to submit quote: %w", err)
	}

	logger.Info("Submitted quote %s", req.ID)
	fmt.Printf("Quote request %s sent. %s will be in touch by %s.\n", req.ID, cfg.Company, contact.PreferredContact)
	return nil
}
