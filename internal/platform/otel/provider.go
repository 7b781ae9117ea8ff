// Package otel configures OpenTelemetry tracing for the clinic services.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	endpointEnv = "PETCLINIC_OTEL_ENDPOINT"
	enabledEnv  = "PETCLINIC_OTEL_ENABLED"
)

// Setup registers the global tracer provider for serviceName and returns a
// flush function for the caller to defer. Tracing is opt-in: without
// PETCLINIC_OTEL_ENDPOINT, or with PETCLINIC_OTEL_ENABLED=false, the flush
// is a no-op and no provider is registered.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	endpoint := strings.TrimSpace(os.Getenv(endpointEnv))
	if endpoint == "" || strings.EqualFold(os.Getenv(enabledEnv), "false") {
		return noop, nil
	}

	provider, err := newTracerProvider(ctx, serviceName, endpoint)
	if err != nil {
		return noop, err
	}

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}

func newTracerProvider(ctx context.Context, serviceName, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("describe service resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
