package otel

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	traceNoop "go.opentelemetry.io/otel/trace/noop"
)

const scopeName = "github.com/hugolhafner/go-serializer"

// Telemetry holds the OpenTelemetry instruments recorded by the serializer.
// When no providers are configured, all instruments are noops with zero overhead
type Telemetry struct {
	Tracer trace.Tracer

	// Calls counts Serialize and Deserialize calls by operation and status.
	Calls metric.Int64Counter
	// Duration is the wall time of one call.
	Duration metric.Float64Histogram
	// Size is the length of the JSON text produced or consumed.
	Size metric.Int64Histogram
	// Errors counts failed calls by operation and error kind.
	Errors metric.Int64Counter
}

// NewTelemetry creates a Telemetry instance from the given providers.
// all providers are optional and defaulted to noops if nil
func NewTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) (*Telemetry, error) {
	if tp == nil {
		tp = traceNoop.NewTracerProvider()
	}
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	tracer := tp.Tracer(scopeName)
	meter := mp.Meter(scopeName)

	calls, err := meter.Int64Counter(
		"serializer.calls",
		metric.WithDescription("Serialize and Deserialize calls"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"serializer.duration",
		metric.WithDescription("Time per Serialize or Deserialize call"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	size, err := meter.Int64Histogram(
		"serializer.document.size",
		metric.WithDescription("Length of the JSON text produced or consumed"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	errors, err := meter.Int64Counter(
		"serializer.errors",
		metric.WithDescription("Failed Serialize and Deserialize calls"),
	)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		Tracer:   tracer,
		Calls:    calls,
		Duration: duration,
		Size:     size,
		Errors:   errors,
	}, nil
}

// Noop returns a Telemetry instance with all noop instruments.
func Noop() *Telemetry {
	t, _ := NewTelemetry(nil, nil)
	return t
}
