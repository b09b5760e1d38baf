package domain

// HalfAndHalfFeeKey is the pricing-config key holding the half-and-half combination fee override.
const HalfAndHalfFeeKey = "halfAndHalfFee"

// DefaultCombinationFee is charged for a half-and-half item when no fee is configured.
var DefaultCombinationFee = NewMoneyFromInt(10000)

// PricingConfig maps option ids to authoritative prices. It overrides any price embedded
// in a schema's config.
type PricingConfig struct {
	prices map[string]*Money
}

// NewPricingConfig copies prices into a PricingConfig. Nil entries are dropped; callers
// decoding stored config turn non-numeric prices into nil.
func NewPricingConfig(prices map[string]*Money) PricingConfig {
	out := make(map[string]*Money, len(prices))
	for id, p := range prices {
		if p == nil {
			continue
		}
		out[id] = p
	}
	return PricingConfig{prices: out}
}

// Lookup returns the configured price for id. Missing and zero prices report ok=false
// so the caller moves on to its next fallback.
func (pc PricingConfig) Lookup(id string) (*Money, bool) {
	p, ok := pc.prices[id]
	if !ok || p == nil || p.IsZero() {
		return nil, false
	}
	return p, true
}

// PriceOrZero returns the configured price for id, or zero.
func (pc PricingConfig) PriceOrZero(id string) *Money {
	if p, ok := pc.Lookup(id); ok {
		return p
	}
	return Zero()
}

// Entries returns a copy of the configured prices.
func (pc PricingConfig) Entries() map[string]*Money {
	out := make(map[string]*Money, len(pc.prices))
	for id, p := range pc.prices {
		out[id] = p
	}
	return out
}

// Len returns the number of configured entries.
func (pc PricingConfig) Len() int {
	return len(pc.prices)
}
