package main

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/dig"

	"github.com/davidbz/anyway/internal/config"
	"github.com/davidbz/anyway/internal/domain"
	"github.com/davidbz/anyway/internal/http"
	"github.com/davidbz/anyway/internal/http/middleware"
	"github.com/davidbz/anyway/internal/observability"
	"github.com/davidbz/anyway/internal/pricing"
	"github.com/davidbz/anyway/internal/telemetry/metrics"
	"github.com/davidbz/anyway/internal/telemetry/tracing"
)

const tracerName = "github.com/davidbz/anyway"

// tracerProvider is nil when span export is not configured.
type tracerProvider struct {
	*sdktrace.TracerProvider
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor any
	}{
		// Configuration
		{"config", config.Load},
		{"config dependencies", config.ParseDependenciesConfig},

		// Observability
		{"logger", observability.InitLogger},
		{"metrics", provideMetrics},

		// Pricing
		{"pricing source", provideSource},
		{"cost resolver", func(source *pricing.Source) domain.CostResolver { return source }},
		{"cost attributor", provideAttributor},

		// Tracing
		{"tracer provider", provideTracerProvider},
		{"tracer", provideTracer},

		// HTTP Layer
		{"middleware", middleware.BuildMiddlewareChain},
		{"HTTP handler", http.NewHandler},
		{"HTTP server", http.NewServer},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}

func provideMetrics(cfg *config.TelemetryConfig) *metrics.CostMetrics {
	if !cfg.Metrics.Enabled() {
		return nil
	}
	return metrics.NewCostMetrics(nil)
}

func provideSource(cfg *config.PricingConfig) (*pricing.Source, error) {
	return pricing.NewSource(cfg.File)
}

func provideAttributor(resolver domain.CostResolver, costMetrics *metrics.CostMetrics) *domain.CostAttributor {
	if costMetrics == nil {
		return domain.NewCostAttributor(resolver)
	}
	return domain.NewCostAttributor(resolver, costMetrics)
}

// provideTracerProvider prices exported spans with an unobserved attributor.
// Usage reaching the exporter was already metered by the HTTP handler.
func provideTracerProvider(
	telemetry *config.TelemetryConfig,
	otlp *config.OTLPConfig,
	resolver domain.CostResolver,
) (tracerProvider, error) {
	if !telemetry.Tracing.Enabled() || otlp.Endpoint == "" {
		return tracerProvider{}, nil
	}

	exporter, err := tracing.NewOTLPExporter(context.Background(), otlp)
	if err != nil {
		return tracerProvider{}, err
	}

	tp, err := tracing.NewTracerProvider(
		exporter,
		domain.NewCostAttributor(resolver),
		otlp.ServiceName,
		telemetry.TraceContent.Enabled(),
	)
	if err != nil {
		return tracerProvider{}, err
	}

	return tracerProvider{tp}, nil
}

func provideTracer(tp tracerProvider) trace.Tracer {
	if tp.TracerProvider == nil {
		return noop.NewTracerProvider().Tracer(tracerName)
	}
	return tp.Tracer(tracerName)
}
