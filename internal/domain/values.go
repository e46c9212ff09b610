package domain

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// decimalFromValue accepts the numeric shapes produced by encoding/json, yaml.v3 and
// OpenTelemetry attributes.
func decimalFromValue(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		if n > math.MaxInt64 {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(int64(n)), true
	default:
		return decimal.Zero, false
	}
}

// tokenCount reads a token count attribute. Any finite number is accepted,
// including fractional counts.
func tokenCount(v any) (decimal.Decimal, bool) {
	return decimalFromValue(v)
}
