package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

// Observability records invocation counts and durations through an OTel
// meter exported in Prometheus format. A zero value is a valid no-op.
type Observability struct {
	meterProvider      *metric.MeterProvider
	meter              otelmetric.Meter
	invocationCounter  otelmetric.Int64Counter
	invocationDuration otelmetric.Float64Histogram
}

func New(serviceName string, log Logger) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Warn("failed to create prometheus exporter", map[string]interface{}{
			"error": err.Error(),
		})
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	invocationCounter, _ := meter.Int64Counter(
		"invocations.processed",
		otelmetric.WithDescription("Number of code hook invocations processed"),
	)

	invocationDuration, _ := meter.Float64Histogram(
		"invocations.duration",
		otelmetric.WithDescription("Code hook invocation duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:      provider,
		meter:              meter,
		invocationCounter:  invocationCounter,
		invocationDuration: invocationDuration,
	}
}

func (o *Observability) RecordInvocation(ctx context.Context, intent, status string) {
	if o == nil || o.invocationCounter == nil {
		return
	}
	o.invocationCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("intent", intent),
		attribute.String("status", status),
	))
}

func (o *Observability) RecordDuration(ctx context.Context, duration time.Duration, status string) {
	if o == nil || o.invocationDuration == nil {
		return
	}
	o.invocationDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("status", status),
	))
}

func (o *Observability) Shutdown() {
	if o == nil || o.meterProvider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = o.meterProvider.Shutdown(ctx)
}
