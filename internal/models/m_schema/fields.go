package m_schema

// Field constants for the customization_schemas table.
const (
	TableName = "customization_schemas"

	ColSchemaID          = "schema_id"
	ColItemID            = "item_id"
	ColSchemaType        = "schema_type"
	ColIsRequired        = "is_required"
	ColConfigJSON        = "config_json"
	ColPricingConfigJSON = "pricing_config_json"
	ColStatus            = "status"
	ColPosition          = "position"
	ColCreatedAt         = "created_at"
	ColUpdatedAt         = "updated_at"
)
