package list_item_schemas

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/ristorante/customization-service/internal/app/customization/dto"
	"github.com/ristorante/customization-service/internal/app/customization/queries/get_schema"
)

// SpannerListItemSchemasQuery lists the schemas attached to an item in display order.
type SpannerListItemSchemasQuery struct {
	Client *spanner.Client
}

func NewSpannerListItemSchemasQuery(client *spanner.Client) *SpannerListItemSchemasQuery {
	return &SpannerListItemSchemasQuery{Client: client}
}

// ListItemSchemas returns schemas ordered by position, then id. A limit of 0 means no limit.
func (q *SpannerListItemSchemasQuery) ListItemSchemas(ctx context.Context, itemID string, includeInactive bool, limit, offset int) ([]*dto.SchemaDTO, error) {
	baseSQL := get_schema.SelectColumns + ` WHERE item_id = @item`
	params := map[string]interface{}{"item": itemID}
	if !includeInactive {
		baseSQL += " AND status = 'active'"
	}
	baseSQL += " ORDER BY position ASC, schema_id ASC"
	if limit > 0 {
		baseSQL += " LIMIT @limit OFFSET @offset"
		params["limit"] = limit
		params["offset"] = offset
	}

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.SchemaDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		s, err := get_schema.ScanSchema(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}
