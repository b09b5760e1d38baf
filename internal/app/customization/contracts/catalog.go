package contracts

import (
	"context"

	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

// Catalog is the menu data source. It is read once per customization session.
// GetCatalogItem returns domain.ErrCatalogItemNotFound when the item does not exist.
type Catalog interface {
	GetCatalogItem(ctx context.Context, itemID string) (*dto.CatalogItemDTO, error)
	GetCatalogItems(ctx context.Context, itemIDs []string) ([]*dto.CatalogItemDTO, error)

	// GetSchemasForItem returns the active schemas of an item ordered by position.
	GetSchemasForItem(ctx context.Context, itemID string) ([]*dto.SchemaDTO, error)
}
