// Package telemetry sets up OpenTelemetry metrics for termninja.
package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "github.com/termninja/termninja"

// Config controls whether telemetry is collected and how the service identifies itself.
type Config struct {
	ServiceName string
	Enabled     bool
}

// Providers holds the initialized metric providers.
// When telemetry is disabled, Meter is a no-op meter and Registry is nil.
type Providers struct {
	config *Config

	MeterProvider metric.MeterProvider
	Meter         metric.Meter

	// Registry is the prometheus registry the exporter writes to.
	// It backs the /metrics endpoint of the lobby server.
	Registry *prometheus.Registry

	shutdown func(context.Context) error
}

// Init creates the metric providers described by cfg.
func Init(ctx context.Context, cfg *Config) (*Providers, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if !cfg.Enabled {
		mp := noop.NewMeterProvider()
		return &Providers{
			config:        cfg,
			MeterProvider: mp,
			Meter:         mp.Meter(meterName),
			shutdown:      func(context.Context) error { return nil },
		}, nil
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return &Providers{
		config:        cfg,
		MeterProvider: mp,
		Meter:         mp.Meter(meterName),
		Registry:      registry,
		shutdown:      mp.Shutdown,
	}, nil
}

// IsEnabled returns true if telemetry collection is turned on.
func (p *Providers) IsEnabled() bool {
	return p != nil && p.config != nil && p.config.Enabled
}

// ServiceName returns the name the service reports itself as.
func (p *Providers) ServiceName() string {
	if p == nil || p.config == nil {
		return ""
	}
	return p.config.ServiceName
}

// Shutdown flushes and stops the providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil || p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}
