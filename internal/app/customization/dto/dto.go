package dto

// CatalogItemDTO is a catalog row as the catalog collaborator returns it.
// VATRate is a decimal string ("0.08"); nil means the default rate applies.
type CatalogItemDTO struct {
	ItemID       string
	Name         string
	BasePriceNum int64
	BasePriceDen int64
	VATRate      *string
	Status       string
}

// SchemaDTO contains the stored customization schema fields.
// Config and pricing config are kept as the raw JSON documents stored in Spanner;
// timestamps use *string (RFC3339) like the rest of the read side.
type SchemaDTO struct {
	SchemaID          string
	ItemID            string
	SchemaType        string
	IsRequired        bool
	ConfigJSON        string
	PricingConfigJSON *string
	Status            string
	Position          int64
	CreatedAt         *string
	UpdatedAt         *string
}
