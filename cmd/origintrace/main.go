package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/origintrace/internal/config"
	"github.com/gabapcia/origintrace/internal/custodianregistry"
	"github.com/gabapcia/origintrace/internal/handlers/cli"
	"github.com/gabapcia/origintrace/internal/infra/ledger/blockfrost"
	"github.com/gabapcia/origintrace/internal/infra/storage/leveldb"
	"github.com/gabapcia/origintrace/internal/infra/storage/redis"
	"github.com/gabapcia/origintrace/internal/pkg/logger"
	"github.com/gabapcia/origintrace/internal/pkg/telemetry"
	"github.com/gabapcia/origintrace/internal/pkg/transport/http"
	"github.com/gabapcia/origintrace/internal/pkg/transport/rest"
	"github.com/gabapcia/origintrace/internal/provenance"
	"github.com/gabapcia/origintrace/internal/tracer"
)

// storage is what every storage driver provides.
type storage interface {
	tracer.HistoryStorage
	custodianregistry.CustodianStorage
	io.Closer
}

// openStorage opens the configured storage driver. The "none" driver keeps
// custodian aliases in memory and persists no history.
func openStorage(ctx context.Context, cfg config.Config) (storage, bool, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		s, err := redis.NewClient(ctx, cfg.Redis.Addr,
			redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithNamespace(cfg.Redis.Namespace),
		)
		return s, true, err
	case config.StorageLevelDB:
		s, err := leveldb.NewClient(cfg.LevelDB.Path)
		return s, true, err
	default:
		s, err := leveldb.NewMemClient()
		return s, false, err
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName,
		telemetry.WithEnabled(cfg.Telemetry.Enabled),
		telemetry.WithMetricInterval(cfg.Telemetry.MetricInterval),
		telemetry.WithSampleRatio(cfg.Telemetry.SampleRatio),
	)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error(ctx, "failed to shut down telemetry", "error", err)
		}
	}()

	store, persistent, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage, err)
	}
	defer store.Close()

	httpClient := http.NewStandardClient(
		http.WithTimeout(cfg.HTTP.Timeout),
		http.WithRetryMax(cfg.HTTP.RetryMax),
		http.WithRetryWaitMin(cfg.HTTP.RetryWaitMin),
		http.WithRetryWaitMax(cfg.HTTP.RetryWaitMax),
		http.WithRequestLogging(cfg.HTTP.LogRequests),
	)

	conn := rest.NewClient(httpClient, cfg.Blockfrost.URL, map[string]string{
		blockfrost.ProjectIDHeader: cfg.Blockfrost.ProjectID,
	})

	ledger, err := blockfrost.NewClient(conn, blockfrost.WithRateLimit(cfg.Blockfrost.RequestsPerSecond, cfg.Blockfrost.Burst))
	if err != nil {
		return fmt.Errorf("creating blockfrost client: %w", err)
	}

	registry := custodianregistry.New(store)

	opts := []tracer.Option{
		tracer.WithCustodianResolver(registry),
		tracer.WithConcurrency(cfg.Trace.Concurrency),
		tracer.WithOutcomeLabels(provenance.OutcomeLabels{
			Return:   cfg.Trace.ReturnLabel,
			Transfer: cfg.Trace.TransferLabel,
		}),
	}
	if persistent {
		opts = append(opts, tracer.WithHistoryStorage(store))
	}

	return cli.Run(ctx, tracer.New(ledger, ledger, opts...), registry, cfg.Trace.Custodian)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
