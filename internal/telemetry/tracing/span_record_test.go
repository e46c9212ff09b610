package tracing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/davidbz/anyway/internal/telemetry/tracing"
)

func TestSpanRecord(t *testing.T) {
	original := []attribute.KeyValue{
		attribute.String("gen_ai.request.model", "gpt-4o"),
		attribute.Int64("gen_ai.usage.input_tokens", 12),
	}
	record := tracing.NewSpanRecord(original)

	value, ok := record.Attribute("gen_ai.usage.input_tokens")
	require.True(t, ok)
	require.Equal(t, int64(12), value)

	_, ok = record.Attribute("gen_ai.usage.output_tokens")
	require.False(t, ok)

	record.SetAttribute("gen_ai.usage.cost", 0.5)
	record.SetAttribute("gen_ai.usage.input_tokens", int64(13))

	attrs := record.Attributes()
	require.Len(t, attrs, 3)
	require.Equal(t, attribute.Int64("gen_ai.usage.input_tokens", 13), attrs[1])
	require.Equal(t, attribute.Float64("gen_ai.usage.cost", 0.5), attrs[2])

	// The source slice is untouched.
	require.Equal(t, int64(12), original[1].Value.AsInt64())
}

func TestSpanRecord_DropContent(t *testing.T) {
	record := tracing.NewSpanRecord([]attribute.KeyValue{
		attribute.String("gen_ai.prompt.0.role", "user"),
		attribute.String("gen_ai.request.model", "gpt-4o"),
		attribute.String("gen_ai.completion.0.content", "hi"),
	})

	require.True(t, record.DropContent())
	require.Equal(t, []attribute.KeyValue{attribute.String("gen_ai.request.model", "gpt-4o")}, record.Attributes())
	require.False(t, record.DropContent())

	record.SetAttribute("gen_ai.request.model", "gpt-4o-mini")
	require.Len(t, record.Attributes(), 1)
}
