package domain

import "math/big"

// DefaultVATRate is applied when the catalog does not carry a rate for an item.
var DefaultVATRate = big.NewRat(8, 100)

// CatalogItem is the read-only snapshot of a menu item taken when customization begins.
// It is owned by the catalog; the engine never mutates it.
type CatalogItem struct {
	id        string
	name      string
	basePrice *Money
	vatRate   *big.Rat
	active    bool
}

// NewCatalogItem builds a snapshot. A nil price is treated as zero and a nil VAT rate
// falls back to DefaultVATRate.
func NewCatalogItem(id, name string, basePrice *Money, vatRate *big.Rat, active bool) *CatalogItem {
	if basePrice == nil {
		basePrice = Zero()
	}
	if vatRate == nil {
		vatRate = DefaultVATRate
	}
	return &CatalogItem{
		id:        id,
		name:      name,
		basePrice: basePrice,
		vatRate:   new(big.Rat).Set(vatRate),
		active:    active,
	}
}

func (c *CatalogItem) ID() string {
	return c.id
}

func (c *CatalogItem) Name() string {
	return c.name
}

func (c *CatalogItem) BasePrice() *Money {
	return c.basePrice
}

// VATRate returns a copy of the item's VAT rate as a fraction (0.08 for 8%).
func (c *CatalogItem) VATRate() *big.Rat {
	return new(big.Rat).Set(c.vatRate)
}

func (c *CatalogItem) IsActive() bool {
	return c.active
}

// CatalogLookup resolves another catalog item by id. It must not perform I/O;
// callers pre-resolve the items they need.
type CatalogLookup func(id string) (*CatalogItem, bool)

// LookupFromMap adapts a map of pre-fetched items into a CatalogLookup.
func LookupFromMap(items map[string]*CatalogItem) CatalogLookup {
	return func(id string) (*CatalogItem, bool) {
		it, ok := items[id]
		return it, ok && it != nil
	}
}
