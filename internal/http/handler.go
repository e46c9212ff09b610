package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/davidbz/anyway/internal/domain"
	"github.com/davidbz/anyway/internal/observability"
)

const usageSpanName = "gen_ai.usage"

// PricingResponse describes how a model identifier was priced.
type PricingResponse struct {
	Model              string          `json:"model"`
	MatchedKey         string          `json:"matched_key"`
	Tier               string          `json:"tier"`
	InputCostPerToken  decimal.Decimal `json:"input_cost_per_token"`
	OutputCostPerToken decimal.Decimal `json:"output_cost_per_token"`
}

// Handler handles HTTP requests.
type Handler struct {
	attributor *domain.CostAttributor
	resolver   domain.CostResolver
	tracer     trace.Tracer
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	attributor *domain.CostAttributor,
	resolver domain.CostResolver,
	tracer trace.Tracer,
) *Handler {
	return &Handler{
		attributor: attributor,
		resolver:   resolver,
		tracer:     tracer,
	}
}

// HandleCost attributes cost to a usage record posted as a flat attribute object.
// The record is echoed back with cost fields added when it could be priced.
func (h *Handler) HandleCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var record domain.AttributeMap
	if err := decoder.Decode(&record); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if record == nil {
		record = domain.AttributeMap{}
	}

	if model, ok := record[domain.AttrResponseModel].(string); ok {
		ctx = observability.WithModel(ctx, model)
	} else if model, ok = record[domain.AttrRequestModel].(string); ok {
		ctx = observability.WithModel(ctx, model)
	}

	logger := observability.FromContext(ctx)

	if h.attributor.Attribute(record) {
		logger.Info("usage priced",
			observability.Float64("cost", toFloat(record[domain.AttrTotalCost])))
	} else {
		logger.Debug("usage left unpriced")
	}

	// The span carries any cost already written, so exporters do not price it again.
	h.recordSpan(ctx, record)

	writeJSON(ctx, w, http.StatusOK, record)
}

// HandlePricing reports how the model query parameter resolves against the catalog.
func (h *Handler) HandlePricing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	model := r.URL.Query().Get("model")
	if model == "" {
		http.Error(w, "model is required", http.StatusBadRequest)
		return
	}

	ctx = observability.WithModel(ctx, model)

	resolution, found := h.resolver.Resolve(model)
	if !found {
		http.Error(w, fmt.Sprintf("no pricing for model: %s", model), http.StatusNotFound)
		return
	}

	writeJSON(ctx, w, http.StatusOK, PricingResponse{
		Model:              resolution.Model,
		MatchedKey:         resolution.MatchedKey,
		Tier:               string(resolution.Tier),
		InputCostPerToken:  resolution.Price.InputCostPerToken,
		OutputCostPerToken: resolution.Price.OutputCostPerToken,
	})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// recordSpan emits the incoming usage as a span so configured exporters see it.
func (h *Handler) recordSpan(ctx context.Context, record domain.AttributeMap) {
	if h.tracer == nil {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(record))
	for key, value := range record {
		if kv, ok := spanAttribute(key, value); ok {
			attrs = append(attrs, kv)
		}
	}

	_, span := h.tracer.Start(ctx, usageSpanName, trace.WithAttributes(attrs...))
	span.End()
}

func spanAttribute(key string, value any) (attribute.KeyValue, bool) {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v), true
	case bool:
		return attribute.Bool(key, v), true
	case float64:
		return attribute.Float64(key, v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return attribute.Int64(key, i), true
		}
		if f, err := v.Float64(); err == nil {
			return attribute.Float64(key, f), true
		}
	}
	return attribute.KeyValue{}, false
}

func toFloat(value any) float64 {
	f, _ := value.(float64)
	return f
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
