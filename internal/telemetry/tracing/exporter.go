package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/davidbz/anyway/internal/domain"
)

// CostExporter decorates a SpanExporter, adding usage cost attributes to each
// span before handing it on. Spans that already carry a total cost keep it.
// Finished spans are read-only, so enriched spans are wrapped copies; the
// originals are never modified.
type CostExporter struct {
	next         sdktrace.SpanExporter
	attributor   *domain.CostAttributor
	traceContent bool
}

// NewCostExporter wraps next. When traceContent is false, prompt and completion
// attributes are removed from exported spans.
func NewCostExporter(
	next sdktrace.SpanExporter,
	attributor *domain.CostAttributor,
	traceContent bool,
) (*CostExporter, error) {
	if next == nil {
		return nil, errors.New("exporter cannot be nil")
	}

	if attributor == nil {
		return nil, errors.New("attributor cannot be nil")
	}

	return &CostExporter{
		next:         next,
		attributor:   attributor,
		traceContent: traceContent,
	}, nil
}

// ExportSpans enriches spans and exports them through the wrapped exporter.
func (e *CostExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	enriched := make([]sdktrace.ReadOnlySpan, len(spans))

	for i, span := range spans {
		enriched[i] = e.enrich(span)
	}

	return e.next.ExportSpans(ctx, enriched)
}

// Shutdown shuts down the wrapped exporter.
func (e *CostExporter) Shutdown(ctx context.Context) error {
	return e.next.Shutdown(ctx)
}

func (e *CostExporter) enrich(span sdktrace.ReadOnlySpan) sdktrace.ReadOnlySpan {
	attrs := span.Attributes()
	if len(attrs) == 0 {
		return span
	}

	record := NewSpanRecord(attrs)

	changed := false
	if _, priced := record.Attribute(domain.AttrTotalCost); !priced {
		changed = e.attributor.Attribute(record)
	}
	if !e.traceContent && record.DropContent() {
		changed = true
	}

	if !changed {
		return span
	}

	return &enrichedSpan{
		ReadOnlySpan: span,
		attrs:        record.Attributes(),
	}
}

// enrichedSpan overrides the attributes of a finished span.
type enrichedSpan struct {
	sdktrace.ReadOnlySpan

	attrs []attribute.KeyValue
}

func (s *enrichedSpan) Attributes() []attribute.KeyValue {
	return s.attrs
}
