package services

import (
	"github.com/ristorante/customization-service/internal/app/customization/domain"
)

// PriceCalculator is a stateless domain service computing the unit price of a customized
// catalog item. It performs no I/O and never fails: missing prices, unresolvable second
// flavours and unknown schemas contribute nothing.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() *PriceCalculator {
	return &PriceCalculator{}
}

// ComputePrice returns the unit price in minor units, rounded half-up to the nearest
// domain.RoundingUnit and never negative.
func (pc *PriceCalculator) ComputePrice(
	item *domain.CatalogItem,
	schemas []domain.Schema,
	state *domain.SelectionState,
	lookup domain.CatalogLookup,
) int64 {
	if item == nil {
		return 0
	}
	if state == nil {
		state = domain.NewSelectionState()
	}
	active := domain.ActiveSchemas(schemas)

	total := pc.BasePrice(item, active, state, lookup).Add(pc.Modifiers(active, state))
	return total.RoundToUnit(domain.RoundingUnit)
}

// BasePrice establishes the base: the item's own price, or, when a half-and-half schema is in
// "hh" mode, half of each flavour plus the combination fee. The half-and-half base replaces
// the item's price rather than adding to it.
func (pc *PriceCalculator) BasePrice(
	item *domain.CatalogItem,
	schemas []domain.Schema,
	state *domain.SelectionState,
	lookup domain.CatalogLookup,
) *domain.Money {
	for _, s := range schemas {
		hh, ok := s.(*domain.HalfAndHalf)
		if !ok {
			continue
		}
		sel := state.Get(hh.ID())
		if sel.OrderMode() != domain.OrderModeHalfAndHalf {
			continue
		}

		secondPrice := domain.Zero()
		if lookup != nil && sel.SecondItemID() != "" {
			if second, found := lookup(sel.SecondItemID()); found {
				secondPrice = second.BasePrice()
			}
		}
		return item.BasePrice().Half().
			Add(secondPrice.Half()).
			Add(hh.CombinationFee())
	}
	return item.BasePrice()
}

// Modifiers sums every schema's additive contribution. Contributions commute, so schema
// order does not matter.
func (pc *PriceCalculator) Modifiers(schemas []domain.Schema, state *domain.SelectionState) *domain.Money {
	sum := domain.Zero()
	for _, s := range schemas {
		sum = sum.Add(pc.modifierFor(s, state.Get(s.ID())))
	}
	return sum
}

func (pc *PriceCalculator) modifierFor(s domain.Schema, sel domain.SchemaSelection) *domain.Money {
	switch sc := s.(type) {
	case *domain.SizeSelection:
		sizeID := sel.Value(domain.KeySize).First()
		if sizeID == "" {
			return domain.Zero()
		}
		if p, ok := sc.Pricing().Lookup(sizeID); ok {
			return p
		}
		if sz, ok := sc.Size(sizeID); ok && sz.PriceModifier != nil {
			return sz.PriceModifier
		}
		return domain.Zero()

	case *domain.AdditionalToppings:
		sum := domain.Zero()
		for _, id := range sel.Value(domain.KeyToppings).IDs() {
			sum = sum.Add(sc.Pricing().PriceOrZero(id))
		}
		return sum

	case *domain.SingleChoiceOptions:
		optionID := sel.Value(domain.KeySelectedOption).First()
		if optionID == "" {
			return domain.Zero()
		}
		return optionPrice(sc.Pricing(), sc.Option, optionID)

	case *domain.OptionList:
		// An id stored under several keys is still one selected option.
		seen := make(map[string]struct{})
		sum := domain.Zero()
		for _, key := range sel.Keys() {
			for _, id := range sel.Value(key).IDs() {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				if _, known := sc.Option(id); !known {
					continue
				}
				sum = sum.Add(optionPrice(sc.Pricing(), sc.Option, id))
			}
		}
		return sum
	}

	// half_and_half only affects the base.
	return domain.Zero()
}

// optionPrice applies the fallback chain pricing config -> embedded price -> 0.
func optionPrice(pricing domain.PricingConfig, find func(string) (domain.PricedOption, bool), id string) *domain.Money {
	if p, ok := pricing.Lookup(id); ok {
		return p
	}
	if o, ok := find(id); ok && o.Price != nil {
		return o.Price
	}
	return domain.Zero()
}
