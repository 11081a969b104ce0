package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/quoter/internal/logger"
	qnats "github.com/mark3labs/quoter/internal/nats"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/nats-io/nats.go"
	"github.com/rs/xid"
)

// Request is the payload handed to the shop when a customer asks for a
// detailed quote.
type Request struct {
	ID          string       `json:"quoteId"`
	SubmittedAt time.Time    `json:"submittedAt"`
	Contact     Contact      `json:"contact"`
	Inputs      quote.Inputs `json:"inputs"`
	Values      quote.Values `json:"calculatedValues"`
	Low         float64      `json:"lowEstimate"`
	High        float64      `json:"highEstimate"`
	Average     float64      `json:"averageEstimate"`
	Summary     string       `json:"summary,omitempty"`
}

// NewRequest validates the contact and stamps a new request id.
func NewRequest(contact Contact, in quote.Inputs, v quote.Values, summary string) (*Request, error) {
	if contact.PreferredContact == "" {
		contact.PreferredContact = ContactEmail
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("quote inputs: %w", err)
	}

	return &Request{
		ID:          "QUOTE-" + xid.New().String(),
		SubmittedAt: time.Now().UTC(),
		Contact:     contact,
		Inputs:      in,
		Values:      v,
		Low:         v.LowEstimate,
		High:        v.HighEstimate,
		Average:     v.Average(),
		Summary:     summary,
	}, nil
}

// Publisher hands a request to whoever handles quote requests.
type Publisher interface {
	Publish(ctx context.Context, req *Request) error
}

// NATSPublisher publishes requests as JSON on a company subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher returns a publisher for the given company's subject.
func NewNATSPublisher(conn *nats.Conn, company string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: qnats.SubjectForCompany(company)}
}

// Subject returns the subject requests are published on.
func (p *NATSPublisher) Subject() string {
	return p.subject
}

// flushTimeout bounds the flush when the caller's context has no deadline.
const flushTimeout = 5 * time.Second

// Publish sends the request and waits for the server to acknowledge the
// flush, bounded by ctx or flushTimeout when ctx has no deadline.
func (p *NATSPublisher) Publish(ctx context.Context, req *Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publishing request %s: %w", req.ID, err)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flushing request %s: %w", req.ID, err)
	}
	logger.Info("Published quote request %s to %s", req.ID, p.subject)
	return nil
}

// Handler receives decoded requests.
type Handler func(req *Request)

// Listen subscribes to subject and calls handler for every request until ctx
// is done. Messages that do not decode are logged and skipped.
func Listen(ctx context.Context, conn *nats.Conn, subject string, handler Handler) error {
	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		var req Request
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			logger.Warn("Skipping malformed quote request on %s: %v", msg.Subject, err)
			return
		}
		handler(&req)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	if err := conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	logger.Debug("Listening for quote requests on %s", subject)

	<-ctx.Done()
	if err := sub.Unsubscribe(); err != nil && conn.IsConnected() {
		return fmt.Errorf("unsubscribing from %s: %w", subject, err)
	}
	return nil
}
