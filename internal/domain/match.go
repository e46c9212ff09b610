package domain

import (
	"regexp"
	"strings"
)

// dateSuffixPattern matches a trailing release date, either -YYYY-MM-DD or -YYYYMMDD.
var dateSuffixPattern = regexp.MustCompile(`-(?:[0-9]{4}-[0-9]{2}-[0-9]{2}|[0-9]{8})$`)

// MatchFunc finds the catalog key to price a model identifier with.
type MatchFunc func(model string, catalog PricingCatalog) (string, bool)

// MatchStrategy is one tier of the resolution order.
type MatchStrategy struct {
	Tier  MatchTier
	Match MatchFunc
}

// DefaultMatchStrategies returns the standard resolution order:
// exact key, date suffix stripped, then longest key prefix.
func DefaultMatchStrategies() []MatchStrategy {
	return []MatchStrategy{
		{Tier: TierExact, Match: MatchExact},
		{Tier: TierDateSuffix, Match: MatchDateSuffix},
		{Tier: TierPrefix, Match: MatchLongestPrefix},
	}
}

// MatchExact matches when the identifier is itself a catalog key.
func MatchExact(model string, catalog PricingCatalog) (string, bool) {
	if _, ok := catalog.Lookup(model); !ok {
		return "", false
	}
	return model, true
}

// MatchDateSuffix strips one trailing date suffix and matches the remainder exactly.
func MatchDateSuffix(model string, catalog PricingCatalog) (string, bool) {
	stripped := StripDateSuffix(model)
	if stripped == model {
		return "", false
	}
	return MatchExact(stripped, catalog)
}

// MatchLongestPrefix picks the longest catalog key that is a literal prefix of model.
// Two distinct keys of equal length cannot both prefix the same string, so the
// result is unique.
func MatchLongestPrefix(model string, catalog PricingCatalog) (string, bool) {
	best := ""
	for _, key := range catalog.Models() {
		if len(key) > len(best) && strings.HasPrefix(model, key) {
			best = key
		}
	}
	return best, best != ""
}

// StripDateSuffix removes a single trailing date suffix, if present.
func StripDateSuffix(model string) string {
	loc := dateSuffixPattern.FindStringIndex(model)
	if loc == nil {
		return model
	}
	return model[:loc[0]]
}
