package tracing

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/davidbz/anyway/internal/config"
	"github.com/davidbz/anyway/internal/domain"
)

// NewOTLPExporter creates an OTLP gRPC span exporter for cfg.Endpoint.
func NewOTLPExporter(ctx context.Context, cfg *config.OTLPConfig) (sdktrace.SpanExporter, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("OTLP endpoint is not configured")
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure.Enabled() {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	return exporter, nil
}

// NewTracerProvider builds an SDK tracer provider whose exported spans carry usage cost.
func NewTracerProvider(
	exporter sdktrace.SpanExporter,
	attributor *domain.CostAttributor,
	serviceName string,
	traceContent bool,
	opts ...sdktrace.TracerProviderOption,
) (*sdktrace.TracerProvider, error) {
	costExporter, err := NewCostExporter(exporter, attributor, traceContent)
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithBatcher(costExporter),
		sdktrace.WithResource(res),
	}, opts...)

	return sdktrace.NewTracerProvider(opts...), nil
}
