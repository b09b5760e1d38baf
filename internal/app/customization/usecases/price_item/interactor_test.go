package price_item

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante/customization-service/internal/app/customization/contracts/fakes"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
	"github.com/ristorante/customization-service/internal/pkg/clock"
)

var now = time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)

func newInteractor(store *fakes.Store) *Interactor {
	return NewInteractor(store, clock.NewFake(now))
}

func TestExecute_EndToEndSizeScenario(t *testing.T) {
	store := fakes.NewStore()
	store.PutItem("pizza-a", 250000)
	store.PutSchema(&dto.SchemaDTO{
		SchemaID:   "size",
		ItemID:     "pizza-a",
		SchemaType: "size_selection",
		ConfigJSON: `{"sizes":[{"id":"16cm","priceModifier":0},{"id":"20cm","priceModifier":40000}]}`,
		Status:     "active",
	})

	st := domain.NewSelectionState()
	st.SetSelection("size", domain.KeySize, domain.Single("20cm"))

	line, err := newInteractor(store).Execute(context.Background(), Request{ItemID: "pizza-a", State: st})
	require.NoError(t, err)
	assert.Equal(t, int64(290000), line.UnitPrice)
	assert.Equal(t, now, line.PricedAt)
	require.Len(t, line.Selections, 1)
	assert.Equal(t, "20cm", line.Selections[0].Selections[domain.KeySize])
	assert.Equal(t, int64(290000), line.Selections[0].UnitPrice)
}

func TestExecute_MissingRequiredSelection(t *testing.T) {
	store := fakes.NewStore()
	store.PutItem("pizza-a", 250000)
	store.PutSchema(&dto.SchemaDTO{
		SchemaID:   "size",
		ItemID:     "pizza-a",
		SchemaType: "size_selection",
		IsRequired: true,
		ConfigJSON: `{"sizes":[{"id":"16cm"},{"id":"20cm"}]}`,
		Status:     "active",
	})

	line, err := newInteractor(store).Execute(context.Background(), Request{ItemID: "pizza-a"})
	require.Error(t, err)
	assert.Nil(t, line)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []domain.ValidationErrorKind{domain.MissingRequiredSelection}, verrs.Kinds())
}

func TestExecute_HalfAndHalfResolvesSecondItem(t *testing.T) {
	store := fakes.NewStore()
	store.PutItem("pizza-a", 200000)
	store.PutItem("pizza-b", 150000)
	store.PutSchema(&dto.SchemaDTO{SchemaID: "hh", ItemID: "pizza-a", SchemaType: "half_and_half",
		ConfigJSON: `{}`, Status: "active", Position: 1})
	pricing := `{"olives":{"price":15000}}`
	store.PutSchema(&dto.SchemaDTO{SchemaID: "toppings", ItemID: "pizza-a", SchemaType: "additional_toppings",
		ConfigJSON:        `{"toppings":[{"id":"olives"}],"maxSelections":3,"allowMultiple":true}`,
		PricingConfigJSON: &pricing, Status: "active", Position: 2})

	st := domain.NewSelectionState()
	st.SetOrderMode("hh", domain.OrderModeHalfAndHalf)
	st.SetSecondItem("hh", "pizza-b")
	st.SetSelection("toppings", domain.KeyToppings, domain.Set("olives"))

	line, err := newInteractor(store).Execute(context.Background(), Request{ItemID: "pizza-a", State: st})
	require.NoError(t, err)
	assert.Equal(t, int64(200000), line.UnitPrice)
	assert.Equal(t, "pizza-b", line.Selections[0].SecondItemID)
}

func TestExecute_ExplicitSchemasSkipStore(t *testing.T) {
	store := fakes.NewStore()
	store.PutItem("pizza-a", 185000)

	schemas := []domain.Schema{
		domain.SchemaDefinition{ID: "drink", ItemID: "pizza-a", Type: domain.SchemaTypeSingleChoiceOptions,
			Options: []domain.PricedOption{{ID: "cola", Price: domain.NewMoneyFromInt(20000)}}}.Build(true),
	}
	st := domain.NewSelectionState()
	st.SetSelection("drink", domain.KeySelectedOption, domain.Single("cola"))

	line, err := newInteractor(store).Execute(context.Background(), Request{ItemID: "pizza-a", Schemas: schemas, State: st})
	require.NoError(t, err)
	assert.Equal(t, int64(205000), line.UnitPrice)
}

func TestExecute_UnknownOrInactiveItem(t *testing.T) {
	store := fakes.NewStore()
	_, err := newInteractor(store).Execute(context.Background(), Request{ItemID: "nope"})
	assert.ErrorIs(t, err, domain.ErrCatalogItemNotFound)

	store.PutItem("retired", 100000).Status = "inactive"
	_, err = newInteractor(store).Execute(context.Background(), Request{ItemID: "retired"})
	assert.ErrorIs(t, err, domain.ErrCatalogItemNotActive)
}
