package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mark3labs/quoter/internal/logger"
	qnats "github.com/mark3labs/quoter/internal/nats"
	"github.com/mark3labs/quoter/internal/report"
	"github.com/mark3labs/quoter/internal/submit"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/spf13/cobra"
)

var listenFlags struct {
	all bool
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive submitted quote requests",
	Long: `Receive submitted quote requests and print them.

When nats_url is not configured, listen starts an embedded NATS server on
127.0.0.1:4222 so that 'quoter quote --submit' on the same machine can reach
it. Otherwise it connects to the configured server.

By default only requests for the configured company are shown; --all shows
requests for every company on the server.`,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().BoolVarP(&listenFlags.all, "all", "a", false, "Show requests for every company")
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	url := cfg.NATSURL
	var ns *server.Server
	if url == "" {
		ns, err = qnats.StartEmbedded(qnats.ServerOptions{Listen: true})
		if err != nil {
			return fmt.Errorf("failed to start embedded server: %w", err)
		}
		url = ns.ClientURL()
	}

	nc, err := qnats.Connect(url)
	if err != nil {
		_ = qnats.Shutdown(nil, ns)
		return err
	}
	defer func() {
		if err := qnats.Shutdown(nc, ns); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	subject := qnats.SubjectForCompany(cfg.Company)
	if listenFlags.all {
		subject = qnats.SubjectAll
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Listening for quote requests on %s (%s). Press ctrl+c to stop.\n\n", url, subject)
	return submit.Listen(ctx, nc, subject, func(req *submit.Request) {
		logger.Info("Received quote %s from %s", req.ID, req.Contact.Name)
		printRequest(os.Stdout, req)
	})
}

func printRequest(w io.Writer, req *submit.Request) {
	c := req.Contact
	fmt.Fprintf(w, "== %s  %s\n", req.ID, req.SubmittedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Customer:  %s\n", c.Name)
	if c.Email != "" {
		fmt.Fprintf(w, "Email:     %s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(w, "Phone:     %s\n", c.Phone)
	}
	if c.Address != "" {
		fmt.Fprintf(w, "Address:   %s\n", c.Address)
	}
	fmt.Fprintf(w, "Contact:   %s\n", c.PreferredContact)
	fmt.Fprintf(w, "Estimate:  %s - %s (avg %s)\n",
		report.Currency(req.Low), report.Currency(req.High), report.Currency(req.Average))
	if c.Notes != "" {
		fmt.Fprintf(w, "Notes:     %s\n", c.Notes)
	}
	if req.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(req.Summary, "\n"))
	}
	fmt.Fprintln(w)
}
