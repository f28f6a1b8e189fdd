// Package blockfrost implements the tracer ledger ports on top of the
// Blockfrost Cardano API.
package blockfrost

import (
	"context"
	"net/url"

	"github.com/gabapcia/origintrace/internal/pkg/transport/rest"
	"github.com/gabapcia/origintrace/internal/tracer"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

const (
	// MainnetURL is the Blockfrost API root for Cardano mainnet.
	MainnetURL = "https://cardano-mainnet.blockfrost.io/api/v0"

	// ProjectIDHeader carries the Blockfrost project key.
	ProjectIDHeader = "project_id"

	// defaultRequestsPerSecond matches the sustained rate of the free tier.
	defaultRequestsPerSecond = 10

	// defaultBurst matches the burst allowance of the free tier.
	defaultBurst = 10

	// pageSize is the largest page Blockfrost serves.
	pageSize = 100

	instrumentationName = "github.com/gabapcia/origintrace/internal/infra/ledger/blockfrost"
)

// client talks to Blockfrost through a rate limited REST connection.
type client struct {
	conn     rest.Client         // underlying REST client
	limiter  *rate.Limiter       // client side request budget
	requests metric.Int64Counter // requests issued, by endpoint
}

var (
	_ tracer.Ledger          = (*client)(nil)
	_ tracer.AddressResolver = (*client)(nil)
)

// config holds the client tuning.
type config struct {
	requestsPerSecond float64
	burst             int
}

// Option configures the client.
type Option func(*config)

// WithRateLimit sets the sustained request rate and burst. Default: 10 rps, burst 10.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *config) {
		c.requestsPerSecond = requestsPerSecond
		c.burst = burst
	}
}

// NewClient creates a Blockfrost client over conn. conn must already send the
// ProjectIDHeader.
func NewClient(conn rest.Client, opts ...Option) (*client, error) {
	cfg := config{
		requestsPerSecond: defaultRequestsPerSecond,
		burst:             defaultBurst,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"blockfrost.requests",
		metric.WithDescription("Requests issued to the Blockfrost API"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &client{
		conn:     conn,
		limiter:  rate.NewLimiter(rate.Limit(cfg.requestsPerSecond), cfg.burst),
		requests: requests,
	}, nil
}

// get waits for the rate limiter and performs a GET on path.
func (c *client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	c.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("endpoint", endpoint)))
	return c.conn.Get(ctx, path, query, out)
}
