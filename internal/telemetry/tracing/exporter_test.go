package tracing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/davidbz/anyway/internal/domain"
	"github.com/davidbz/anyway/internal/mocks"
	"github.com/davidbz/anyway/internal/telemetry/tracing"
)

func testAttributor() *domain.CostAttributor {
	catalog := domain.NewPricingCatalogFromEntries(map[string]domain.PriceEntry{
		"gpt-4o": {
			PromptPricePer1K:     decimal.RequireFromString("2.5"),
			CompletionPricePer1K: decimal.RequireFromString("10"),
		},
	})
	return domain.NewCostAttributor(domain.NewTieredCostResolver(catalog))
}

func attributeMap(attrs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func exportOne(t *testing.T, traceContent bool, attrs ...attribute.KeyValue) map[string]any {
	t.Helper()

	memory := tracetest.NewInMemoryExporter()
	exporter, err := tracing.NewCostExporter(memory, testAttributor(), traceContent)
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "chat gpt-4o")
	span.SetAttributes(attrs...)
	span.End()

	spans := memory.GetSpans()
	require.Len(t, spans, 1)

	return attributeMap(spans[0].Attributes)
}

func TestCostExporter_AddsCost(t *testing.T) {
	attrs := exportOne(t, true,
		attribute.String(domain.AttrResponseModel, "gpt-4o-2024-08-06"),
		attribute.Int64(domain.AttrInputTokens, 1000),
		attribute.Int64(domain.AttrOutputTokens, 500),
		attribute.String("gen_ai.prompt.0.content", "hello"),
	)

	require.Equal(t, 2.5, attrs[domain.AttrInputCost])
	require.Equal(t, 5.0, attrs[domain.AttrOutputCost])
	require.Equal(t, 7.5, attrs[domain.AttrTotalCost])
	require.Equal(t, "hello", attrs["gen_ai.prompt.0.content"])
}

func TestCostExporter_LeavesUnpricedSpans(t *testing.T) {
	attrs := exportOne(t, true,
		attribute.String(domain.AttrRequestModel, "unknown-model"),
		attribute.Int64(domain.AttrInputTokens, 1000),
	)

	require.NotContains(t, attrs, domain.AttrTotalCost)
	require.Len(t, attrs, 2)
}

func TestCostExporter_KeepsExistingCost(t *testing.T) {
	attrs := exportOne(t, true,
		attribute.String(domain.AttrResponseModel, "gpt-4o"),
		attribute.Int64(domain.AttrInputTokens, 1000),
		attribute.Float64(domain.AttrTotalCost, 1.25),
	)

	require.Equal(t, 1.25, attrs[domain.AttrTotalCost])
	require.NotContains(t, attrs, domain.AttrInputCost)
	require.Len(t, attrs, 3)
}

func TestCostExporter_PricedSpanIsNotObserved(t *testing.T) {
	resolver := mocks.NewMockCostResolver(t)
	observer := mocks.NewMockCostObserver(t)

	memory := tracetest.NewInMemoryExporter()
	exporter, err := tracing.NewCostExporter(memory, domain.NewCostAttributor(resolver, observer), true)
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "chat gpt-4o")
	span.SetAttributes(
		attribute.String(domain.AttrResponseModel, "gpt-4o"),
		attribute.Int64(domain.AttrInputTokens, 1000),
		attribute.Float64(domain.AttrTotalCost, 2.5),
	)
	span.End()

	require.Len(t, memory.GetSpans(), 1)
}

func TestCostExporter_SpanWithoutAttributes(t *testing.T) {
	attrs := exportOne(t, true)
	require.Empty(t, attrs)
}

func TestCostExporter_DropsContentWhenDisabled(t *testing.T) {
	attrs := exportOne(t, false,
		attribute.String(domain.AttrResponseModel, "gpt-4o"),
		attribute.Int64(domain.AttrInputTokens, 1000),
		attribute.String("gen_ai.prompt.0.content", "hello"),
		attribute.String("gen_ai.completion.0.content", "hi there"),
	)

	require.NotContains(t, attrs, "gen_ai.prompt.0.content")
	require.NotContains(t, attrs, "gen_ai.completion.0.content")
	require.Equal(t, 2.5, attrs[domain.AttrTotalCost])
}

func TestNewCostExporter_Validation(t *testing.T) {
	_, err := tracing.NewCostExporter(nil, testAttributor(), true)
	require.Error(t, err)

	_, err = tracing.NewCostExporter(tracetest.NewInMemoryExporter(), nil, true)
	require.Error(t, err)
}

func TestNewTracerProvider(t *testing.T) {
	memory := tracetest.NewInMemoryExporter()

	tp, err := tracing.NewTracerProvider(memory, testAttributor(), "anyway-test", true)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "chat")
	span.SetAttributes(
		attribute.String(domain.AttrResponseModel, "gpt-4o"),
		attribute.Int64(domain.AttrOutputTokens, 500),
	)
	span.End()

	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := memory.GetSpans()
	require.Len(t, spans, 1)

	attrs := attributeMap(spans[0].Attributes)
	require.Equal(t, 0.0, attrs[domain.AttrInputCost])
	require.Equal(t, 5.0, attrs[domain.AttrOutputCost])

	serviceName, ok := spans[0].Resource.Set().Value("service.name")
	require.True(t, ok)
	require.Equal(t, "anyway-test", serviceName.AsString())

	require.NoError(t, tp.Shutdown(context.Background()))
}
