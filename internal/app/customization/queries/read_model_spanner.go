package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ristorante/customization-service/internal/app/customization/dto"
	"github.com/ristorante/customization-service/internal/app/customization/queries/get_catalog_item"
	"github.com/ristorante/customization-service/internal/app/customization/queries/get_schema"
	"github.com/ristorante/customization-service/internal/app/customization/queries/list_item_schemas"
)

// SpannerReadModel is an infrastructure adapter that satisfies both contracts.ReadModel
// and contracts.Catalog. It composes the individual query implementations.
type SpannerReadModel struct {
	itemQ   *get_catalog_item.SpannerGetCatalogItemQuery
	schemaQ *get_schema.SpannerGetSchemaQuery
	listQ   *list_item_schemas.SpannerListItemSchemasQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		itemQ:   get_catalog_item.NewSpannerGetCatalogItemQuery(client),
		schemaQ: get_schema.NewSpannerGetSchemaQuery(client),
		listQ:   list_item_schemas.NewSpannerListItemSchemasQuery(client),
	}
}

func (rm *SpannerReadModel) GetCatalogItem(ctx context.Context, itemID string) (*dto.CatalogItemDTO, error) {
	return rm.itemQ.GetCatalogItem(ctx, itemID)
}

func (rm *SpannerReadModel) GetCatalogItems(ctx context.Context, itemIDs []string) ([]*dto.CatalogItemDTO, error) {
	return rm.itemQ.GetCatalogItems(ctx, itemIDs)
}

func (rm *SpannerReadModel) GetSchemasForItem(ctx context.Context, itemID string) ([]*dto.SchemaDTO, error) {
	return rm.listQ.ListItemSchemas(ctx, itemID, false, 0, 0)
}

func (rm *SpannerReadModel) GetSchema(ctx context.Context, schemaID string) (*dto.SchemaDTO, error) {
	return rm.schemaQ.GetSchema(ctx, schemaID)
}

func (rm *SpannerReadModel) ListItemSchemas(ctx context.Context, itemID string, includeInactive bool, limit, offset int) ([]*dto.SchemaDTO, error) {
	return rm.listQ.ListItemSchemas(ctx, itemID, includeInactive, limit, offset)
}
