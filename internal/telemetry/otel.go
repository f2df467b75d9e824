// Package telemetry wires OpenTelemetry tracing for the dashboard.
//
// Tracing is opt-in: without an endpoint Setup installs nothing and the
// global tracer provider stays a no-op, so spans started by the domain
// packages cost nothing.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Options configures Setup.
type Options struct {
	Endpoint    string // OTLP/HTTP endpoint URL; empty disables tracing
	ServiceName string
	// Exporter replaces the OTLP exporter (tests use an in-memory one).
	Exporter sdktrace.SpanExporter
}

// Setup installs a global tracer provider when tracing is configured.
// The returned shutdown function is always non-nil.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	exporter := opts.Exporter
	if exporter == nil {
		if opts.Endpoint == "" {
			return noop, nil
		}
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(opts.Endpoint))
		if err != nil {
			return noop, fmt.Errorf("create otlp exporter: %w", err)
		}
		exporter = exp
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "atrisure"
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}
