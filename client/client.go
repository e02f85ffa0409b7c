// Package client provides a client for the TermNinja HTTP API.
package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Metrics receives one observation per API call made by the Client.
type Metrics interface {
	RecordAPICall(ctx context.Context, operation string, err error, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) RecordAPICall(context.Context, string, error, time.Duration) {}

// Client is a thin wrapper over a Transport.
// Every method builds one path, issues one transport call and returns its outcome unchanged.
type Client struct {
	transport Transport
	logger    *zap.Logger
	metrics   Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger makes the client log every call at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics makes the client record every call.
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New creates a client that sends its requests through t.
func New(t Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		logger:    zap.NewNop(),
		metrics:   noopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient creates a client for the API served at baseURL.
// If accessToken is non-empty it is sent as a bearer token with every request.
func NewClient(baseURL, accessToken string, httpClient *http.Client, opts ...Option) *Client {
	t := NewRestyTransport(baseURL, httpClient)
	if accessToken != "" {
		t.SetAccessToken(accessToken)
	}

	c := New(t, opts...)
	t.SetLogger(c.logger.Sugar())
	return c
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	start := time.Now()
	err := c.transport.Get(ctx, path, out)
	c.observe(ctx, op, path, start, err)
	return err
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	start := time.Now()
	err := c.transport.Post(ctx, path, body, out)
	c.observe(ctx, op, path, start, err)
	return err
}

func (c *Client) observe(ctx context.Context, op, path string, start time.Time, err error) {
	d := time.Since(start)
	c.metrics.RecordAPICall(ctx, op, err, d)
	c.logger.Debug(
		"api call",
		zap.String("operation", op),
		zap.String("path", path),
		zap.Duration("duration", d),
		zap.Error(err),
	)
}

// userPath returns /user/{username}.
// The username is path-escaped so that it always occupies exactly one segment.
func userPath(username string) string {
	return "/user/" + url.PathEscape(username)
}
