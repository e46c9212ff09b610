package domain

import "github.com/shopspring/decimal"

const tokensPerPriceUnit = 1000

// MatchTier names the strategy that resolved a model identifier.
type MatchTier string

const (
	TierExact      MatchTier = "exact"
	TierDateSuffix MatchTier = "date_suffix"
	TierPrefix     MatchTier = "prefix"
	TierNone       MatchTier = "none"
)

// PriceEntry contains model pricing as loaded from the catalog.
type PriceEntry struct {
	PromptPricePer1K     decimal.Decimal // USD per 1K input tokens
	CompletionPricePer1K decimal.Decimal // USD per 1K output tokens
}

// NormalizedPrice is a PriceEntry converted to per-token prices.
type NormalizedPrice struct {
	InputCostPerToken  decimal.Decimal
	OutputCostPerToken decimal.Decimal
}

// Normalize converts per-1K prices to per-token prices.
func (e PriceEntry) Normalize() NormalizedPrice {
	unit := decimal.NewFromInt(tokensPerPriceUnit)
	return NormalizedPrice{
		InputCostPerToken:  e.PromptPricePer1K.Div(unit),
		OutputCostPerToken: e.CompletionPricePer1K.Div(unit),
	}
}

// Resolution is the outcome of a successful price lookup.
type Resolution struct {
	Model      string // identifier as requested
	MatchedKey string // catalog key that matched
	Tier       MatchTier
	Price      NormalizedPrice
}

// PricingCatalog is a read-only table of model prices.
type PricingCatalog interface {
	// Lookup returns the entry stored under exactly this key.
	Lookup(model string) (PriceEntry, bool)

	// Models returns every catalog key, longest first.
	Models() []string
}

// CostResolver maps a free-form model identifier to a per-token price.
type CostResolver interface {
	// Resolve returns false when no catalog entry matches. That is not an error.
	Resolve(model string) (Resolution, bool)
}

// CostObserver is notified about attribution decisions that reached price resolution.
type CostObserver interface {
	ObserveCost(patch CostPatch)
	ObserveUnresolved(model string)
}
