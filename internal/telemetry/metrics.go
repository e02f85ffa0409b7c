package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// CustomMetrics records termninja specific measurements.
type CustomMetrics interface {
	// RecordAPICall records one call made by the API client.
	RecordAPICall(ctx context.Context, operation string, err error, duration time.Duration)

	// RecordGamePing records a heartbeat received by the lobby for the given game.
	RecordGamePing(ctx context.Context, slug string)
}

type noopCustomMetrics struct{}

// NewNoopCustomMetrics returns a CustomMetrics that discards everything.
func NewNoopCustomMetrics() CustomMetrics {
	return noopCustomMetrics{}
}

func (noopCustomMetrics) RecordAPICall(context.Context, string, error, time.Duration) {}
func (noopCustomMetrics) RecordGamePing(context.Context, string)                     {}

type otelCustomMetrics struct {
	apiCalls        metric.Int64Counter
	apiCallDuration metric.Float64Histogram
	gamePings       metric.Int64Counter
}

// NewOtelCustomMetrics creates the instruments on the given meter.
func NewOtelCustomMetrics(meter metric.Meter) (CustomMetrics, error) {
	apiCalls, err := meter.Int64Counter(
		"termninja_api_calls",
		metric.WithDescription("Number of calls made by the termninja API client"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api calls counter: %w", err)
	}

	apiCallDuration, err := meter.Float64Histogram(
		"termninja_api_call_duration",
		metric.WithDescription("Duration of calls made by the termninja API client"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api call duration histogram: %w", err)
	}

	gamePings, err := meter.Int64Counter(
		"termninja_game_pings",
		metric.WithDescription("Number of heartbeats received from game servers"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game pings counter: %w", err)
	}

	return &otelCustomMetrics{
		apiCalls:        apiCalls,
		apiCallDuration: apiCallDuration,
		gamePings:       gamePings,
	}, nil
}

func (m *otelCustomMetrics) RecordAPICall(ctx context.Context, operation string, err error, duration time.Duration) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	m.apiCalls.Add(ctx, 1, attrs)
	m.apiCallDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *otelCustomMetrics) RecordGamePing(ctx context.Context, slug string) {
	m.gamePings.Add(ctx, 1, metric.WithAttributes(attribute.String("game", slug)))
}
