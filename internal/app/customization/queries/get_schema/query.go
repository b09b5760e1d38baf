package get_schema

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
)

// SelectColumns lists the customization_schemas columns in the order ScanSchema expects.
const SelectColumns = `SELECT schema_id, item_id, schema_type, is_required, config_json, pricing_config_json,
		             status, position, created_at, updated_at
		      FROM customization_schemas`

// SpannerGetSchemaQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetSchemaQuery struct {
	Client *spanner.Client
}

func NewSpannerGetSchemaQuery(client *spanner.Client) *SpannerGetSchemaQuery {
	return &SpannerGetSchemaQuery{Client: client}
}

// GetSchema fetches one schema regardless of status.
func (q *SpannerGetSchemaQuery) GetSchema(ctx context.Context, schemaID string) (*dto.SchemaDTO, error) {
	stmt := spanner.Statement{
		SQL:    SelectColumns + ` WHERE schema_id = @id`,
		Params: map[string]interface{}{"id": schemaID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrSchemaNotFound
	}
	if err != nil {
		return nil, err
	}
	return ScanSchema(row)
}

// ScanSchema reads a row selected with SelectColumns.
func ScanSchema(row *spanner.Row) (*dto.SchemaDTO, error) {
	var (
		id, itemID, schemaType string
		isRequired             bool
		configJSON             string
		pricingJSON            spanner.NullString
		status                 string
		position               int64
		createdAt, updatedAt   time.Time
	)
	if err := row.Columns(&id, &itemID, &schemaType, &isRequired, &configJSON, &pricingJSON,
		&status, &position, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out := &dto.SchemaDTO{
		SchemaID:   id,
		ItemID:     itemID,
		SchemaType: schemaType,
		IsRequired: isRequired,
		ConfigJSON: configJSON,
		Status:     status,
		Position:   position,
	}
	if pricingJSON.Valid {
		p := pricingJSON.StringVal
		out.PricingConfigJSON = &p
	}

	// timestamps
	out.CreatedAt = utils.FormatTime(createdAt)
	out.UpdatedAt = utils.FormatTime(updatedAt)

	return out, nil
}
