package domain

// TieredCostResolver resolves prices by trying match strategies in order.
// It holds no mutable state and is safe for concurrent use.
type TieredCostResolver struct {
	catalog    PricingCatalog
	strategies []MatchStrategy
}

// NewTieredCostResolver creates a resolver over catalog. Without explicit
// strategies it uses DefaultMatchStrategies.
func NewTieredCostResolver(catalog PricingCatalog, strategies ...MatchStrategy) *TieredCostResolver {
	if len(strategies) == 0 {
		strategies = DefaultMatchStrategies()
	}

	return &TieredCostResolver{
		catalog:    catalog,
		strategies: strategies,
	}
}

// Resolve returns the normalized price for the first strategy that matches.
func (r *TieredCostResolver) Resolve(model string) (Resolution, bool) {
	if model == "" || r.catalog == nil {
		return Resolution{}, false
	}

	for _, strategy := range r.strategies {
		key, ok := strategy.Match(model, r.catalog)
		if !ok {
			continue
		}

		entry, found := r.catalog.Lookup(key)
		if !found {
			continue
		}

		return Resolution{
			Model:      model,
			MatchedKey: key,
			Tier:       strategy.Tier,
			Price:      entry.Normalize(),
		}, true
	}

	return Resolution{}, false
}
