// Package tracer drives a provenance trace end to end: it pulls the activity
// of an asset from the ledger, resolves every transaction to the owner it
// left the asset with, persists the resulting history, and hands it to the
// provenance chain builder and trajectory analyzer.
package tracer

import (
	"context"

	"github.com/gabapcia/origintrace/internal/pkg/resilience/retry"
	"github.com/gabapcia/origintrace/internal/provenance"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies the spans emitted by this package.
const instrumentationName = "github.com/gabapcia/origintrace/internal/tracer"

// defaultConcurrency is the number of transactions resolved in parallel.
const defaultConcurrency = 4

// Result is the outcome of a trace.
type Result struct {
	Asset     AssetID            // traced asset; empty for replays
	Custodian string             // resolved custodian address
	History   provenance.History // ownership history the graph was built from
	Graph     provenance.Graph   // analyzed custody chain
}

// IsEmpty reports whether nothing was found for the asset. Callers must
// check it before rendering.
func (r Result) IsEmpty() bool {
	return r.Graph.IsEmpty()
}

// Service traces the provenance of ledger assets.
type Service interface {
	// Trace rebuilds the custody chain of the requested asset from the ledger.
	//
	// An asset without activity is not an error: the result is empty.
	// Returns a validation error if the request is malformed.
	Trace(ctx context.Context, req Request) (Result, error)

	// Replay rebuilds the custody chain from a previously saved history
	// without touching the ledger.
	Replay(ctx context.Context, history provenance.History, custodian string) (Result, error)

	// History returns the stored history of the requested asset, or
	// ErrHistoryNotFound.
	History(ctx context.Context, req Request) (provenance.History, error)
}

// service is the default implementation of Service.
type service struct {
	ledger   Ledger
	resolver AddressResolver

	historyStorage    HistoryStorage
	custodianResolver CustodianResolver

	retry       retry.Retry
	labels      provenance.OutcomeLabels
	concurrency int
	tracer      trace.Tracer
}

var _ Service = (*service)(nil)

// config collects the optional dependencies of the service.
type config struct {
	historyStorage    HistoryStorage
	custodianResolver CustodianResolver
	retry             retry.Retry
	labels            provenance.OutcomeLabels
	concurrency       int
}

// Option configures the service.
type Option func(*config)

// New creates a tracer service reading from ledger and resolving owners with resolver.
//
// Defaults: no history storage, custodians taken as raw addresses, retry.New()
// around every ledger call, provenance.DefaultOutcomeLabels, and 4 concurrent
// owner lookups.
func New(ledger Ledger, resolver AddressResolver, opts ...Option) *service {
	cfg := config{
		historyStorage:    nopHistoryStorage{},
		custodianResolver: identityCustodianResolver{},
		retry:             retry.New(),
		labels:            provenance.DefaultOutcomeLabels,
		concurrency:       defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:            ledger,
		resolver:          resolver,
		historyStorage:    cfg.historyStorage,
		custodianResolver: cfg.custodianResolver,
		retry:             cfg.retry,
		labels:            cfg.labels,
		concurrency:       max(cfg.concurrency, 1),
		tracer:            otel.Tracer(instrumentationName),
	}
}

// WithHistoryStorage persists traced histories and reuses them as checkpoints.
func WithHistoryStorage(hs HistoryStorage) Option {
	return func(c *config) {
		c.historyStorage = hs
	}
}

// WithCustodianResolver resolves custodian aliases before tracing.
func WithCustodianResolver(cr CustodianResolver) Option {
	return func(c *config) {
		c.custodianResolver = cr
	}
}

// WithRetry sets the retry policy applied to every ledger call.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithOutcomeLabels sets the labels of derived custody edges.
func WithOutcomeLabels(l provenance.OutcomeLabels) Option {
	return func(c *config) {
		c.labels = l
	}
}

// WithConcurrency sets how many transactions are resolved in parallel.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}
