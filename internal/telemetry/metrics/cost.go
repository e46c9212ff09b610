// Package metrics exposes cost attribution as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/anyway/internal/domain"
)

const namespace = "anyway"

// CostMetrics records attributed costs. It implements domain.CostObserver.
//
// Metrics:
//   - anyway_cost_usd_total: attributed cost in USD by catalog model
//   - anyway_cost_tokens_total: priced tokens by catalog model and direction
//   - anyway_cost_resolutions_total: price lookups by matching tier
//
// Model labels use the matched catalog key rather than the raw identifier, which
// keeps label cardinality bounded by the catalog size.
type CostMetrics struct {
	registry *prometheus.Registry

	costTotal   *prometheus.CounterVec
	tokensTotal *prometheus.CounterVec
	resolutions *prometheus.CounterVec
}

// NewCostMetrics creates cost metrics and registers them with registry.
// A nil registry gets a fresh one.
func NewCostMetrics(registry *prometheus.Registry) *CostMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	cm := &CostMetrics{
		registry: registry,

		costTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cost",
				Name:      "usd_total",
				Help:      "Attributed cost in USD by catalog model",
			},
			[]string{"model"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cost",
				Name:      "tokens_total",
				Help:      "Priced tokens by catalog model and direction",
			},
			[]string{"model", "direction"},
		),

		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cost",
				Name:      "resolutions_total",
				Help:      "Model price lookups by matching tier",
			},
			[]string{"tier"},
		),
	}

	registry.MustRegister(
		cm.costTotal,
		cm.tokensTotal,
		cm.resolutions,
	)

	return cm
}

// ObserveCost records a successful attribution.
func (cm *CostMetrics) ObserveCost(patch domain.CostPatch) {
	model := patch.Resolution.MatchedKey

	cm.resolutions.WithLabelValues(string(patch.Resolution.Tier)).Inc()
	cm.costTotal.WithLabelValues(model).Add(patch.TotalCost.InexactFloat64())
	cm.tokensTotal.WithLabelValues(model, "input").Add(patch.InputTokens.InexactFloat64())
	cm.tokensTotal.WithLabelValues(model, "output").Add(patch.OutputTokens.InexactFloat64())
}

// ObserveUnresolved records a model that matched no catalog entry.
func (cm *CostMetrics) ObserveUnresolved(_ string) {
	cm.resolutions.WithLabelValues(string(domain.TierNone)).Inc()
}

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
func (cm *CostMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(cm.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// CostTotal returns the cost counter for a catalog model.
func (cm *CostMetrics) CostTotal(model string) prometheus.Counter {
	return cm.costTotal.WithLabelValues(model)
}

// TokensTotal returns the token counter for a catalog model and direction.
func (cm *CostMetrics) TokensTotal(model, direction string) prometheus.Counter {
	return cm.tokensTotal.WithLabelValues(model, direction)
}

// Resolutions returns the lookup counter for a matching tier.
func (cm *CostMetrics) Resolutions(tier domain.MatchTier) prometheus.Counter {
	return cm.resolutions.WithLabelValues(string(tier))
}
