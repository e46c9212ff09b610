package domain

import "github.com/shopspring/decimal"

// CostPatch holds the cost fields computed for one usage record.
type CostPatch struct {
	Resolution   Resolution
	InputTokens  decimal.Decimal
	OutputTokens decimal.Decimal

	InputCost  decimal.Decimal
	OutputCost decimal.Decimal
	TotalCost  decimal.Decimal
}

// Attributes returns the cost fields keyed by their attribute names.
// The written total is the float sum of the written parts, so readers of the
// record see total == input + output exactly.
func (p CostPatch) Attributes() map[string]float64 {
	inputCost := p.InputCost.InexactFloat64()
	outputCost := p.OutputCost.InexactFloat64()

	return map[string]float64{
		AttrInputCost:  inputCost,
		AttrOutputCost: outputCost,
		AttrTotalCost:  inputCost + outputCost,
	}
}

// Apply writes the cost fields to record.
func (p CostPatch) Apply(record UsageRecord) {
	for key, value := range p.Attributes() {
		record.SetAttribute(key, value)
	}
}

// CostAttributor computes cost fields for usage records.
type CostAttributor struct {
	resolver  CostResolver
	observers []CostObserver
}

// NewCostAttributor creates a new cost attributor.
func NewCostAttributor(resolver CostResolver, observers ...CostObserver) *CostAttributor {
	return &CostAttributor{
		resolver:  resolver,
		observers: observers,
	}
}

// Compute returns the cost patch for record without modifying it. It returns false
// when the record has no model, no token counts, or a model that does not resolve.
func (a *CostAttributor) Compute(record UsageRecord) (CostPatch, bool) {
	if record == nil {
		return CostPatch{}, false
	}

	model := recordModel(record)
	if model == "" {
		return CostPatch{}, false
	}

	inputTokens, hasInput := recordTokens(record, AttrInputTokens)
	outputTokens, hasOutput := recordTokens(record, AttrOutputTokens)
	if !hasInput && !hasOutput {
		return CostPatch{}, false
	}

	resolution, ok := a.resolver.Resolve(model)
	if !ok {
		for _, o := range a.observers {
			o.ObserveUnresolved(model)
		}
		return CostPatch{}, false
	}

	inputCost := inputTokens.Mul(resolution.Price.InputCostPerToken)
	outputCost := outputTokens.Mul(resolution.Price.OutputCostPerToken)

	patch := CostPatch{
		Resolution:   resolution,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    inputCost,
		OutputCost:   outputCost,
		TotalCost:    inputCost.Add(outputCost),
	}

	for _, o := range a.observers {
		o.ObserveCost(patch)
	}

	return patch, true
}

// Attribute computes the cost patch and writes it to record.
// It reports whether any field was written.
func (a *CostAttributor) Attribute(record UsageRecord) bool {
	patch, ok := a.Compute(record)
	if !ok {
		return false
	}

	patch.Apply(record)
	return true
}

// recordModel prefers the response model over the request model.
func recordModel(record UsageRecord) string {
	for _, key := range []string{AttrResponseModel, AttrRequestModel} {
		v, ok := record.Attribute(key)
		if !ok {
			continue
		}
		if model, isString := v.(string); isString && model != "" {
			return model
		}
	}
	return ""
}

// recordTokens reads a token count. An absent count reads as zero; a present zero is present.
func recordTokens(record UsageRecord, key string) (decimal.Decimal, bool) {
	v, ok := record.Attribute(key)
	if !ok {
		return decimal.Zero, false
	}
	return tokenCount(v)
}
