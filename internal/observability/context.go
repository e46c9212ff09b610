package observability

import (
	"context"
	"crypto/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const (
	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// ModelKey holds the model identifier being priced.
	ModelKey contextKey = "model"
)

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithModel injects the model identifier into context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

// StartRemoteSpan makes parent the active span context, or a freshly generated
// one when parent is invalid. Spans started from the returned context join
// that trace.
func StartRemoteSpan(ctx context.Context, parent trace.SpanContext) context.Context {
	if !parent.IsValid() {
		parent = trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    NewTraceID(),
			SpanID:     NewSpanID(),
			TraceFlags: trace.FlagsSampled,
			Remote:     true,
		})
	}
	return trace.ContextWithRemoteSpanContext(ctx, parent)
}

// GetTraceID returns the active OpenTelemetry trace ID in hex, or "".
func GetTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// GetSpanID returns the active OpenTelemetry span ID in hex, or "".
func GetSpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasSpanID() {
		return ""
	}
	return sc.SpanID().String()
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetModel extracts the model identifier from context.
func GetModel(ctx context.Context) string {
	if model, ok := ctx.Value(ModelKey).(string); ok {
		return model
	}
	return ""
}

// NewTraceID generates a random OpenTelemetry trace ID.
func NewTraceID() trace.TraceID {
	var id trace.TraceID
	if _, err := rand.Read(id[:]); err != nil {
		u := uuid.New()
		copy(id[:], u[:])
	}
	return id
}

// NewSpanID generates a random OpenTelemetry span ID.
func NewSpanID() trace.SpanID {
	var id trace.SpanID
	if _, err := rand.Read(id[:]); err != nil {
		u := uuid.New()
		copy(id[:], u[:len(id)])
	}
	return id
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
