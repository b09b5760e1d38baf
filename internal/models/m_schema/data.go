package m_schema

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a schema using a map of values.
// expected keys are the column names declared in fields.go
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a schema.
// The values map should NOT include the schema_id key; it is always written first.
func UpdateMutation(schemaID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColSchemaID}
	vals := []interface{}{schemaID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(schemaID, itemID, schemaType string, isRequired bool, configJSON string,
	pricingConfigJSON *string, status string, position int64, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColSchemaID:   schemaID,
		ColItemID:     itemID,
		ColSchemaType: schemaType,
		ColIsRequired: isRequired,
		ColConfigJSON: configJSON,
		ColStatus:     status,
		ColPosition:   position,
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}

	if pricingConfigJSON != nil {
		m[ColPricingConfigJSON] = *pricingConfigJSON
	} else {
		m[ColPricingConfigJSON] = nil
	}

	return m
}
