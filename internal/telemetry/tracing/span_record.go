// Package tracing enriches OpenTelemetry spans with LLM usage cost.
package tracing

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// Content attribute prefixes carrying prompts and completions.
var contentPrefixes = []string{
	"gen_ai.prompt",
	"gen_ai.completion",
	"gen_ai.input.messages",
	"gen_ai.output.messages",
}

// SpanRecord is a domain.UsageRecord over a copy of a span's attributes.
// Writes replace an attribute in place or append it, keeping the original order.
type SpanRecord struct {
	attrs []attribute.KeyValue
	index map[attribute.Key]int
}

// NewSpanRecord copies attrs into a new record.
func NewSpanRecord(attrs []attribute.KeyValue) *SpanRecord {
	r := &SpanRecord{
		attrs: make([]attribute.KeyValue, 0, len(attrs)+3),
		index: make(map[attribute.Key]int, len(attrs)+3),
	}

	for _, kv := range attrs {
		r.set(kv)
	}

	return r
}

// Attribute implements domain.UsageRecord.
func (r *SpanRecord) Attribute(key string) (any, bool) {
	i, ok := r.index[attribute.Key(key)]
	if !ok {
		return nil, false
	}
	return r.attrs[i].Value.AsInterface(), true
}

// SetAttribute implements domain.UsageRecord.
func (r *SpanRecord) SetAttribute(key string, value any) {
	r.set(keyValue(key, value))
}

// Attributes returns the current attribute list.
func (r *SpanRecord) Attributes() []attribute.KeyValue {
	return r.attrs
}

// DropContent removes prompt and completion attributes. It reports whether any were removed.
func (r *SpanRecord) DropContent() bool {
	kept := r.attrs[:0]
	for _, kv := range r.attrs {
		if !isContentKey(string(kv.Key)) {
			kept = append(kept, kv)
		}
	}

	if len(kept) == len(r.attrs) {
		return false
	}

	r.attrs = kept
	r.index = make(map[attribute.Key]int, len(kept))
	for i, kv := range kept {
		r.index[kv.Key] = i
	}

	return true
}

func (r *SpanRecord) set(kv attribute.KeyValue) {
	if i, ok := r.index[kv.Key]; ok {
		r.attrs[i] = kv
		return
	}
	r.index[kv.Key] = len(r.attrs)
	r.attrs = append(r.attrs, kv)
}

func isContentKey(key string) bool {
	for _, prefix := range contentPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func keyValue(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case float64:
		return attribute.Float64(key, v)
	case int64:
		return attribute.Int64(key, v)
	case int:
		return attribute.Int(key, v)
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
