package submit

import (
	"context"
	"strings"
	"testing"
	"time"

	qnats "github.com/mark3labs/quoter/internal/nats"
	"github.com/mark3labs/quoter/internal/quote"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func pricedQuote() (quote.Inputs, quote.Values) {
	in := quote.DefaultInputs(1000)
	in.BaseCabinetLength = 10
	in.WallCabinetLength = 8
	in.GlassDoorsCount = 2
	return in, quote.Calculate(in)
}

func TestParseContactMethod(t *testing.T) {
	t.Parallel()

	m, err := ParseContactMethod("")
	require.NoError(t, err)
	require.Equal(t, ContactEmail, m)

	m, err = ParseContactMethod(" Phone ")
	require.NoError(t, err)
	require.Equal(t, ContactPhone, m)

	_, err = ParseContactMethod("fax")
	require.ErrorIs(t, err, ErrInvalidContact)
}

func TestContact_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		contact Contact
		wantErr bool
	}{
		{"email preferred", Contact{Name: "Jo", Email: "jo@example.com", PreferredContact: ContactEmail}, false},
		{"email default", Contact{Name: "Jo", Email: "jo@example.com"}, false},
		{"phone preferred", Contact{Name: "Jo", Phone: "555-0100", PreferredContact: ContactPhone}, false},
		{"missing name", Contact{Email: "jo@example.com"}, true},
		{"blank name", Contact{Name: "  ", Email: "jo@example.com"}, true},
		{"email preferred without email", Contact{Name: "Jo", Phone: "555-0100", PreferredContact: ContactEmail}, true},
		{"malformed email", Contact{Name: "Jo", Email: "jo.example.com"}, true},
		{"phone preferred without phone", Contact{Name: "Jo", Email: "jo@example.com", PreferredContact: ContactPhone}, true},
		{"unknown method", Contact{Name: "Jo", Email: "jo@example.com", PreferredContact: "fax"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidContact)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	in, v := pricedQuote()
	req, err := NewRequest(Contact{Name: "Jo", Email: "jo@example.com"}, in, v, "summary")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(req.ID, "QUOTE-"))
	require.Len(t, req.ID, len("QUOTE-")+20)
	require.Equal(t, ContactEmail, req.Contact.PreferredContact)
	require.Equal(t, v.LowEstimate, req.Low)
	require.Equal(t, v.HighEstimate, req.High)
	require.Equal(t, v.Average(), req.Average)
	require.WithinDuration(t, time.Now(), req.SubmittedAt, time.Minute)

	other, err := NewRequest(Contact{Name: "Jo", Email: "jo@example.com"}, in, v, "")
	require.NoError(t, err)
	require.NotEqual(t, req.ID, other.ID)
}

func TestNewRequest_Rejects(t *testing.T) {
	t.Parallel()

	in, v := pricedQuote()
	_, err := NewRequest(Contact{Name: "Jo"}, in, v, "")
	require.ErrorIs(t, err, ErrInvalidContact)

	in.IslandWidth = -1
	_, err = NewRequest(Contact{Name: "Jo", Email: "jo@example.com"}, in, v, "")
	require.ErrorIs(t, err, quote.ErrInvalidValue)
}

func startServer(t *testing.T) *nats.Conn {
	t.Helper()
	ns, err := qnats.StartEmbedded(qnats.ServerOptions{})
	require.NoError(t, err)
	nc, err := qnats.ConnectInProcess(ns)
	require.NoError(t, err)
	t.Cleanup(func() { _ = qnats.Shutdown(nc, ns) })
	return nc
}

func TestPublishAndListen(t *testing.T) {
	nc := startServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan *Request, 1)
	done := make(chan error, 1)
	go func() {
		done <- Listen(ctx, nc, qnats.SubjectAll, func(req *Request) { received <- req })
	}()
	require.Eventually(t, func() bool { return nc.NumSubscriptions() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Malformed payloads are skipped.
	require.NoError(t, nc.Publish(qnats.SubjectForCompany("Acme"), []byte("not json")))

	in, v := pricedQuote()
	req, err := NewRequest(Contact{Name: "Jo", Phone: "555-0100", PreferredContact: ContactPhone}, in, v, "10 ft base")
	require.NoError(t, err)

	pub := NewNATSPublisher(nc, "Acme")
	require.Equal(t, "quoter.requests.acme", pub.Subject())
	require.NoError(t, pub.Publish(ctx, req))

	select {
	case got := <-received:
		require.Equal(t, req.ID, got.ID)
		require.Equal(t, req.Contact, got.Contact)
		require.Equal(t, in, got.Inputs)
		require.Equal(t, v, got.Values)
		require.Equal(t, "10 ft base", got.Summary)
		require.True(t, req.SubmittedAt.Equal(got.SubmittedAt))
	case <-time.After(2 * time.Second):
		t.Fatal("request was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after cancel")
	}
}

func TestPublish_ClosedConnection(t *testing.T) {
	nc := startServer(t)
	nc.Close()

	in, v := pricedQuote()
	req, err := NewRequest(Contact{Name: "Jo", Email: "jo@example.com"}, in, v, "")
	require.NoError(t, err)
	require.Error(t, NewNATSPublisher(nc, "Acme").Publish(context.Background(), req))
}

func TestPublish_WithoutDeadline(t *testing.T) {
	nc := startServer(t)

	sub, err := nc.SubscribeSync(qnats.SubjectForCompany("Acme"))
	require.NoError(t, err)

	in, v := pricedQuote()
	req, err := NewRequest(Contact{Name: "Jo", Email: "jo@example.com"}, in, v, "")
	require.NoError(t, err)

	require.NoError(t, NewNATSPublisher(nc, "Acme").Publish(context.Background(), req))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	require.Contains(t, string(msg.Data), req.ID)
}
