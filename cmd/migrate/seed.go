package main

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/queries"
	"github.com/ristorante/customization-service/internal/app/customization/repo"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/define_schema"
	"github.com/ristorante/customization-service/internal/models/m_catalog_item"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	committer "github.com/ristorante/customization-service/internal/pkg/committer"
)

type seedItem struct {
	id    string
	name  string
	price int64
}

var demoItems = []seedItem{
	{id: "pizza-margherita", name: "Margherita", price: 185000},
	{id: "pizza-pepperoni", name: "Pepperoni", price: 215000},
	{id: "pizza-hawaiian", name: "Hawaiian", price: 205000},
}

func demoSchemas(itemID string) []domain.SchemaDefinition {
	three := 3
	one := 1
	return []domain.SchemaDefinition{
		{
			ID: itemID + "-size", ItemID: itemID, Type: domain.SchemaTypeSizeSelection, IsRequired: true, Position: 1,
			Sizes: []domain.SizeOption{
				{ID: "16cm", Name: "16 cm"},
				{ID: "20cm", Name: "20 cm", PriceModifier: domain.NewMoneyFromInt(30000)},
				{ID: "25cm", Name: "25 cm", PriceModifier: domain.NewMoneyFromInt(60000)},
			},
		},
		{
			ID: itemID + "-hh", ItemID: itemID, Type: domain.SchemaTypeHalfAndHalf, Position: 2,
			CombinationFee: domain.NewMoneyFromInt(10000),
		},
		{
			ID: itemID + "-toppings", ItemID: itemID, Type: domain.SchemaTypeAdditionalToppings, Position: 3,
			Toppings: []domain.Topping{
				{ID: "olives", Name: "Olives"},
				{ID: "ham", Name: "Ham"},
				{ID: "corn", Name: "Corn"},
				{ID: "mushrooms", Name: "Mushrooms"},
			},
			MaxSelections: &three,
			AllowMultiple: true,
			Pricing: domain.NewPricingConfig(map[string]*domain.Money{
				"olives":    domain.NewMoneyFromInt(15000),
				"ham":       domain.NewMoneyFromInt(20000),
				"corn":      domain.NewMoneyFromInt(10000),
				"mushrooms": domain.NewMoneyFromInt(15000),
			}),
		},
		{
			ID: itemID + "-crust", ItemID: itemID, Type: domain.SchemaTypeSingleChoiceOptions, Position: 4,
			MaxSelections: &one,
			Options: []domain.PricedOption{
				{ID: "thin", Name: "Thin"},
				{ID: "stuffed", Name: "Cheese-stuffed", Price: domain.NewMoneyFromInt(25000)},
			},
		},
	}
}

// seedMenu upserts the demo catalog and defines its schemas through the same use case the
// admin API uses. Schemas that already exist are left alone.
func seedMenu(ctx context.Context, client *spanner.Client) (int, error) {
	clk := clock.RealClock{}
	now := clk.Now()

	muts := make([]*spanner.Mutation, 0, len(demoItems))
	for _, it := range demoItems {
		muts = append(muts, m_catalog_item.InsertOrUpdateMutation(it.id, it.name, it.price, 1, nil, "active", now))
	}
	if _, err := client.Apply(ctx, muts); err != nil {
		return 0, fmt.Errorf("upsert catalog: %w", err)
	}

	define := define_schema.NewInteractor(queries.NewSpannerReadModel(client), repo.NewSchemaRepo(),
		repo.NewOutboxRepo(), committer.NewAdapter(client), clk)

	for _, it := range demoItems {
		for _, def := range demoSchemas(it.id) {
			_, err := define.Execute(ctx, define_schema.Request{Definition: def})
			if spanner.ErrCode(err) == codes.AlreadyExists {
				continue
			}
			if err != nil {
				return 0, fmt.Errorf("define %s: %w", def.ID, err)
			}
		}
	}
	return len(demoItems), nil
}
