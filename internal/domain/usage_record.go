package domain

// GenAI semantic convention keys read and written during cost attribution.
const (
	AttrResponseModel = "gen_ai.response.model"
	AttrRequestModel  = "gen_ai.request.model"
	AttrInputTokens   = "gen_ai.usage.input_tokens"
	AttrOutputTokens  = "gen_ai.usage.output_tokens"

	AttrInputCost  = "gen_ai.usage.input_cost"
	AttrOutputCost = "gen_ai.usage.output_cost"
	AttrTotalCost  = "gen_ai.usage.cost"
)

// UsageRecord is a flat attribute bag describing one LLM call.
type UsageRecord interface {
	// Attribute returns the value stored under key.
	Attribute(key string) (any, bool)

	// SetAttribute stores value under key.
	SetAttribute(key string, value any)
}

// AttributeMap is a map-backed UsageRecord. A nil map reads as empty and ignores writes.
type AttributeMap map[string]any

// Attribute returns the value stored under key. Nil values read as absent.
func (m AttributeMap) Attribute(key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetAttribute stores value under key.
func (m AttributeMap) SetAttribute(key string, value any) {
	if m == nil {
		return
	}
	m[key] = value
}
