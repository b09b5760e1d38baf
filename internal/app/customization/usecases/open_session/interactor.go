package open_session

import (
	"context"
	"fmt"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
)

// Request opens a customization session for one catalog item.
type Request struct {
	ItemID string
}

// Result is the opened session together with the schema rows it was built from, so callers
// can render the schemas without reading them again.
type Result struct {
	Session *domain.Session
	Rows    []*dto.SchemaDTO
}

// Interactor fetches the item and its schemas once and hands back a session with the
// initial selection state. Everything after this point is synchronous and local.
type Interactor struct {
	Catalog contracts.Catalog
}

func NewInteractor(catalog contracts.Catalog) *Interactor {
	return &Interactor{Catalog: catalog}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	item, err := LoadItem(ctx, it.Catalog, req.ItemID)
	if err != nil {
		return nil, err
	}

	schemaDTOs, err := it.Catalog.GetSchemasForItem(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("load schemas for %s: %w", req.ItemID, err)
	}

	return &Result{
		Session: domain.NewSession(item, utils.SchemasFromDTOs(schemaDTOs)),
		Rows:    schemaDTOs,
	}, nil
}

// LoadItem fetches a catalog item and rejects items that are not currently sold.
func LoadItem(ctx context.Context, catalog contracts.Catalog, itemID string) (*domain.CatalogItem, error) {
	itemDTO, err := catalog.GetCatalogItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item := utils.CatalogItemFromDTO(itemDTO)
	if !item.IsActive() {
		return nil, domain.ErrCatalogItemNotActive
	}
	return item, nil
}
