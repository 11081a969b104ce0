// Package nats wraps the embedded NATS server and client connections used to
// hand quote requests off to whoever is listening.
package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/quoter/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// DefaultURL is where clients look for a listener when no nats_url is
// configured. It matches the address StartEmbedded binds with Listen set.
const DefaultURL = "nats://127.0.0.1:4222"

// ServerOptions configures the embedded server.
type ServerOptions struct {
	// Listen opens a TCP port on Host:Port. When false the server is
	// reachable only in-process.
	Listen bool
	Host   string
	Port   int
}

// StartEmbedded starts an embedded NATS server and waits until it accepts
// connections. JetStream stays off: requests are delivered, not stored.
func StartEmbedded(opts ServerOptions) (*server.Server, error) {
	sopts := &server.Options{
		NoSigs:     true,
		DontListen: !opts.Listen,
	}
	if opts.Listen {
		sopts.Host = opts.Host
		sopts.Port = opts.Port
		if sopts.Host == "" {
			sopts.Host = "127.0.0.1"
		}
		if sopts.Port == 0 {
			sopts.Port = server.DEFAULT_PORT
		}
		logger.Debug("Starting embedded NATS server on %s:%d", sopts.Host, sopts.Port)
	} else {
		logger.Debug("Starting in-process NATS server")
	}

	ns, err := server.NewServer(sopts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		logger.Error("NATS server failed to start within 4s timeout")
		ns.Shutdown()
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// ConnectInProcess creates an in-process connection to the embedded server.
// This connection does not use network ports.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	logger.Debug("Connecting to NATS server in-process")
	conn, err := nats.Connect("", nats.InProcessServer(ns), nats.Name("quoter"))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		return nil, err
	}
	return conn, nil
}

// Connect dials a NATS server by URL. An empty url means DefaultURL.
func Connect(url string) (*nats.Conn, error) {
	if url == "" {
		url = DefaultURL
	}
	logger.Debug("Connecting to NATS at %s", url)
	conn, err := nats.Connect(url, nats.Name("quoter"), nats.Timeout(4*time.Second))
	if err != nil {
		logger.Error("Failed to connect to NATS at %s: %v", url, err)
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	return conn, nil
}

// drainTimeout bounds how long Shutdown waits for a drain to finish.
const drainTimeout = 2 * time.Second

// Shutdown drains the connection, waits for it to close and then stops the
// server. Either may be nil. Each phase is bounded by a timeout so a stuck
// peer cannot hang exit.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil && !nc.IsClosed() {
		if err := nc.Drain(); err != nil {
			logger.Warn("NATS drain failed, forcing close: %v", err)
			nc.Close()
		}

		// Drain returns at once; the connection closes when it completes.
		deadline := time.Now().Add(drainTimeout)
		for !nc.IsClosed() && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if !nc.IsClosed() {
			logger.Warn("NATS drain timed out after %s, forcing close", drainTimeout)
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
			logger.Debug("NATS server shut down cleanly")
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			return errors.New("NATS server shutdown timed out")
		}
	}
	return nil
}
