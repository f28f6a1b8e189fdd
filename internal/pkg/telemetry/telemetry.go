// Package telemetry wires OpenTelemetry traces and metrics to OTLP/gRPC
// exporters. Exporter endpoints come from the standard OTEL_EXPORTER_OTLP_*
// environment variables.
package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// ShutdownFunc flushes and stops every provider registered by Init.
type ShutdownFunc func(ctx context.Context) error

// noopShutdown is returned when telemetry is disabled.
func noopShutdown(context.Context) error { return nil }

type settings struct {
	enabled        bool
	metricInterval time.Duration
	sampleRatio    float64
}

// Option customizes Init.
type Option func(*settings)

// WithEnabled turns export on or off. Export is on by default.
func WithEnabled(enabled bool) Option {
	return func(s *settings) {
		s.enabled = enabled
	}
}

// WithMetricInterval sets how often metrics are pushed. Non-positive values
// keep the SDK default.
func WithMetricInterval(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.metricInterval = d
		}
	}
}

// WithSampleRatio samples root spans at ratio, clamped to [0, 1]. Child
// spans follow their parent's decision.
func WithSampleRatio(ratio float64) Option {
	return func(s *settings) {
		s.sampleRatio = min(max(ratio, 0), 1)
	}
}

func newSettings(opts ...Option) settings {
	s := settings{enabled: true, sampleRatio: 1}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) sampler() sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.sampleRatio))
}

func (s settings) readerOptions() []sdkmetric.PeriodicReaderOption {
	if s.metricInterval <= 0 {
		return nil
	}
	return []sdkmetric.PeriodicReaderOption{sdkmetric.WithInterval(s.metricInterval)}
}

func newMeterProvider(ctx context.Context, res *sdkresource.Resource, s settings) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, s.readerOptions()...)
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	), nil
}

func newTracerProvider(ctx context.Context, res *sdkresource.Resource, s settings) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(s.sampler()),
	), nil
}

// newResource merges the default resource with the service name.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

// Init registers global OTLP meter and tracer providers for serviceName.
//
// When disabled through WithEnabled nothing is registered: the global no-op
// providers stay in place and the returned ShutdownFunc does nothing.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	s := newSettings(opts...)
	if !s.enabled {
		return noopShutdown, nil
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := newMeterProvider(ctx, res, s)
	if err != nil {
		return nil, err
	}

	tp, err := newTracerProvider(ctx, res, s)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	otel.SetMeterProvider(mp)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		return errors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
	}, nil
}
