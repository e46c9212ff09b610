package domain

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

const (
	chatSection          = "chat"
	promptPriceField     = "promptPrice"
	completionPriceField = "completionPrice"
)

// InMemoryPricingCatalog stores chat model prices in memory.
// It is built once and never mutated, so it is safe for concurrent reads.
type InMemoryPricingCatalog struct {
	entries map[string]PriceEntry
	models  []string
}

// NewPricingCatalog builds a catalog from a decoded pricing document.
// Only the "chat" section is read. A missing or malformed section yields an empty
// catalog, and malformed or negative entries are skipped.
func NewPricingCatalog(raw map[string]any) *InMemoryPricingCatalog {
	section, _ := raw[chatSection].(map[string]any)

	entries := make(map[string]PriceEntry, len(section))
	for model, fields := range section {
		entry, ok := parsePriceEntry(fields)
		if !ok {
			continue
		}
		entries[model] = entry
	}

	return NewPricingCatalogFromEntries(entries)
}

// NewPricingCatalogFromEntries builds a catalog from already parsed entries.
// The map is copied; empty keys are dropped.
func NewPricingCatalogFromEntries(entries map[string]PriceEntry) *InMemoryPricingCatalog {
	c := &InMemoryPricingCatalog{
		entries: make(map[string]PriceEntry, len(entries)),
		models:  make([]string, 0, len(entries)),
	}

	for model, entry := range entries {
		if model == "" {
			continue
		}
		c.entries[model] = entry
		c.models = append(c.models, model)
	}

	slices.SortFunc(c.models, func(a, b string) int {
		if byLen := cmp.Compare(len(b), len(a)); byLen != 0 {
			return byLen
		}
		return cmp.Compare(a, b)
	})

	return c
}

// Lookup returns the entry stored under exactly this key.
func (c *InMemoryPricingCatalog) Lookup(model string) (PriceEntry, bool) {
	entry, ok := c.entries[model]
	return entry, ok
}

// Models returns every catalog key, longest first, ties in lexical order.
func (c *InMemoryPricingCatalog) Models() []string {
	return slices.Clone(c.models)
}

// Len returns the number of entries.
func (c *InMemoryPricingCatalog) Len() int {
	return len(c.entries)
}

func parsePriceEntry(fields any) (PriceEntry, bool) {
	m, ok := fields.(map[string]any)
	if !ok {
		return PriceEntry{}, false
	}

	prompt, ok := priceField(m, promptPriceField)
	if !ok {
		return PriceEntry{}, false
	}

	completion, ok := priceField(m, completionPriceField)
	if !ok {
		return PriceEntry{}, false
	}

	return PriceEntry{
		PromptPricePer1K:     prompt,
		CompletionPricePer1K: completion,
	}, true
}

// priceField treats a missing field as zero and rejects non-numeric or negative values.
func priceField(m map[string]any, name string) (decimal.Decimal, bool) {
	raw, present := m[name]
	if !present {
		return decimal.Zero, true
	}

	price, ok := decimalFromValue(raw)
	if !ok || price.IsNegative() {
		return decimal.Zero, false
	}

	return price, true
}
