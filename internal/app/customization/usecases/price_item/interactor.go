package price_item

import (
	"context"
	"fmt"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/domain/services"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/open_session"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
	"github.com/ristorante/customization-service/internal/pkg/clock"
)

// Request prices one customized item. When Schemas is nil the item's stored schemas are used.
type Request struct {
	ItemID  string
	Schemas []domain.Schema
	State   *domain.SelectionState
}

// Interactor is the single entry point of the pricing engine for order submission.
// On a selection problem the returned error is a domain.ValidationErrors.
type Interactor struct {
	Catalog    contracts.Catalog
	Calculator *services.PriceCalculator
	Validator  *services.SelectionValidator
	Clock      clock.Clock
}

func NewInteractor(catalog contracts.Catalog, clk clock.Clock) *Interactor {
	return &Interactor{
		Catalog:    catalog,
		Calculator: services.NewPriceCalculator(),
		Validator:  services.NewSelectionValidator(),
		Clock:      clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.PricedLine, error) {
	// 1. Load the item snapshot
	item, err := open_session.LoadItem(ctx, it.Catalog, req.ItemID)
	if err != nil {
		return nil, err
	}

	schemas := req.Schemas
	if schemas == nil {
		dtos, err := it.Catalog.GetSchemasForItem(ctx, req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("load schemas for %s: %w", req.ItemID, err)
		}
		schemas = utils.SchemasFromDTOs(dtos)
	}
	schemas = domain.ActiveSchemas(schemas)

	state := req.State
	if state == nil {
		state = domain.NewSelectionStateFor(schemas)
	}

	// 2. Validate before anything is committed
	if errs := it.Validator.Validate(item, schemas, state); len(errs) > 0 {
		return nil, errs
	}

	// 3. Resolve second flavours up front so pricing stays free of I/O
	lookup, err := it.resolveSecondItems(ctx, schemas, state)
	if err != nil {
		return nil, err
	}

	// 4. Price and snapshot
	unitPrice := it.Calculator.ComputePrice(item, schemas, state, lookup)
	return domain.NewPricedLine(item, schemas, state, unitPrice, it.Clock.Now()), nil
}

func (it *Interactor) resolveSecondItems(ctx context.Context, schemas []domain.Schema, state *domain.SelectionState) (domain.CatalogLookup, error) {
	ids := make([]string, 0, 1)
	for _, s := range schemas {
		if _, ok := s.(*domain.HalfAndHalf); !ok {
			continue
		}
		sel := state.Get(s.ID())
		if sel.OrderMode() == domain.OrderModeHalfAndHalf && sel.SecondItemID() != "" {
			ids = append(ids, sel.SecondItemID())
		}
	}

	items := make(map[string]*domain.CatalogItem, len(ids))
	if len(ids) == 0 {
		return domain.LookupFromMap(items), nil
	}

	dtos, err := it.Catalog.GetCatalogItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve second flavours: %w", err)
	}
	for _, d := range dtos {
		items[d.ItemID] = utils.CatalogItemFromDTO(d)
	}
	return domain.LookupFromMap(items), nil
}
