package m_catalog_item

// Field constants for the catalog_items table. The catalog owns this table;
// the service only reads it, apart from seeding.
const (
	TableName = "catalog_items"

	ColItemID               = "item_id"
	ColName                 = "name"
	ColBasePriceNumerator   = "base_price_numerator"
	ColBasePriceDenominator = "base_price_denominator"
	ColVATRate              = "vat_rate"
	ColStatus               = "status"
	ColCreatedAt            = "created_at"
	ColUpdatedAt            = "updated_at"
)
