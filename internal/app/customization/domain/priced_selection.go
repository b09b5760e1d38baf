package domain

import (
	"math/big"
	"time"
)

// PricedSelection is the normalized, immutable record of one schema's selection.
// UnitPrice is the composed unit price of the cart line the selection belongs to.
type PricedSelection struct {
	SchemaID     string
	SchemaType   SchemaType
	Selections   map[string]string
	OrderMode    OrderMode
	SecondItemID string
	UnitPrice    int64
}

// PricedLine is the cart line handed to order submission.
type PricedLine struct {
	ItemID     string
	Selections []PricedSelection
	UnitPrice  int64
	VATRate    *big.Rat
	PricedAt   time.Time
}

// NewPricedLine snapshots the state of every schema into a PricedLine.
func NewPricedLine(item *CatalogItem, schemas []Schema, state *SelectionState, unitPrice int64, now time.Time) *PricedLine {
	selections := make([]PricedSelection, 0, len(schemas))
	for _, s := range schemas {
		sel := state.Get(s.ID())
		values := make(map[string]string, len(sel.Keys()))
		for _, k := range sel.Keys() {
			v := sel.Value(k)
			if v.IsEmpty() {
				continue
			}
			values[k] = v.Normalized()
		}
		ps := PricedSelection{
			SchemaID:   s.ID(),
			SchemaType: s.Type(),
			Selections: values,
			UnitPrice:  unitPrice,
		}
		if _, ok := s.(*HalfAndHalf); ok {
			ps.OrderMode = sel.OrderMode()
			if ps.OrderMode == OrderModeHalfAndHalf {
				ps.SecondItemID = sel.SecondItemID()
			}
		}
		selections = append(selections, ps)
	}

	return &PricedLine{
		ItemID:     item.ID(),
		Selections: selections,
		UnitPrice:  unitPrice,
		VATRate:    item.VATRate(),
		PricedAt:   now,
	}
}
