package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

func TestSelectionStateFromMap(t *testing.T) {
	st := SelectionStateFromMap(map[string]any{
		"size":     map[string]any{"size": "20cm"},
		"toppings": map[string]any{"toppings": []any{"olives", "ham", 7}},
		"hh":       map[string]any{"orderMode": "hh", "secondItemId": "pizza-b"},
		"junk":     5,
		"numbers":  map[string]any{"n": 3.0},
	})

	assert.Equal(t, "20cm", st.Get("size").Value("size").First())

	toppings := st.Get("toppings").Value("toppings")
	assert.True(t, toppings.IsSet())
	assert.ElementsMatch(t, []string{"olives", "ham"}, toppings.IDs())

	hh := st.Get("hh")
	assert.Equal(t, domain.OrderModeHalfAndHalf, hh.OrderMode())
	assert.Equal(t, "pizza-b", hh.SecondItemID())
	assert.Empty(t, hh.Keys())

	assert.Empty(t, st.Get("junk").Keys())
	assert.Empty(t, st.Get("numbers").Keys())
}

func TestPricedLineToMap(t *testing.T) {
	item := domain.NewCatalogItem("pizza-a", "Margherita", domain.NewMoneyFromInt(185000), nil, true)
	schemas := []domain.Schema{
		domain.SchemaDefinition{ID: "hh", ItemID: "pizza-a", Type: domain.SchemaTypeHalfAndHalf}.Build(true),
		domain.SchemaDefinition{ID: "toppings", ItemID: "pizza-a", Type: domain.SchemaTypeAdditionalToppings,
			Toppings: []domain.Topping{{ID: "olives"}, {ID: "ham"}}, AllowMultiple: true}.Build(true),
	}
	st := domain.NewSelectionStateFor(schemas)
	st.SetOrderMode("hh", domain.OrderModeHalfAndHalf)
	st.SetSecondItem("hh", "pizza-b")
	st.Toggle("toppings", domain.KeyToppings, "olives")

	pricedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := PricedLineToMap(domain.NewPricedLine(item, schemas, st, 200000, pricedAt))

	assert.Equal(t, "pizza-a", out["itemId"])
	assert.Equal(t, float64(200000), out["unitPrice"])
	assert.Equal(t, "0.0800", out["vatRate"])
	assert.Equal(t, "2026-03-01T12:00:00Z", out["pricedAt"])

	selections, ok := out["selections"].([]any)
	require.True(t, ok)
	require.Len(t, selections, 2)

	first := selections[0].(map[string]any)
	assert.Equal(t, "hh", first["schemaId"])
	assert.Equal(t, "hh", first["orderMode"])
	assert.Equal(t, "pizza-b", first["secondItemId"])

	second := selections[1].(map[string]any)
	assert.Equal(t, "additional_toppings", second["schemaType"])
	assert.Equal(t, map[string]any{"toppings": "olives"}, second["selections"])
	assert.NotContains(t, second, "orderMode")
}

func TestViolationsToList(t *testing.T) {
	out := ViolationsToList(domain.ValidationErrors{
		{SchemaID: "size", Kind: domain.MissingRequiredSelection, Message: "Please choose a size"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, map[string]any{
		"schemaId": "size",
		"kind":     "MissingRequiredSelection",
		"message":  "Please choose a size",
	}, out[0])
}

func TestSchemaInputToDTO_DecodesLikeStoredRows(t *testing.T) {
	d, err := SchemaInputToDTO("toppings", "pizza-a", "additional_toppings", false, 3,
		map[string]any{"toppings": []any{map[string]any{"id": "olives"}}, "maxSelections": 2.0, "allowMultiple": true},
		map[string]any{"olives": map[string]any{"price": 15000.0}})
	require.NoError(t, err)
	assert.Equal(t, "active", d.Status)
	require.NotNil(t, d.PricingConfigJSON)

	def := DecodeSchemaDefinition(d)
	assert.Equal(t, domain.SchemaTypeAdditionalToppings, def.Type)
	assert.Equal(t, 3, def.Position)
	require.NotNil(t, def.MaxSelections)
	assert.Equal(t, 2, *def.MaxSelections)
	price, ok := def.Pricing.Lookup("olives")
	require.True(t, ok)
	assert.True(t, price.Equals(domain.NewMoneyFromInt(15000)))
}

func TestSchemaInputToDTO_EmptyDocuments(t *testing.T) {
	d, err := SchemaInputToDTO("hh", "pizza-a", "half_and_half", false, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", d.ConfigJSON)
	assert.Nil(t, d.PricingConfigJSON)
}

func TestSchemaDTOToMap(t *testing.T) {
	created := "2026-03-01T12:00:00Z"
	out := SchemaDTOToMap(&dto.SchemaDTO{
		SchemaID:   "size",
		ItemID:     "pizza-a",
		SchemaType: "size_selection",
		IsRequired: true,
		ConfigJSON: `{"sizes":[{"id":"16cm"}]}`,
		Status:     "active",
		Position:   1,
		CreatedAt:  &created,
	})

	assert.Equal(t, "size", out["schemaId"])
	assert.Equal(t, true, out["isRequired"])
	assert.Equal(t, float64(1), out["position"])
	assert.Equal(t, map[string]any{"sizes": []any{map[string]any{"id": "16cm"}}}, out["config"])
	assert.Equal(t, map[string]any{}, out["pricingConfig"])
	assert.Equal(t, created, out["createdAt"])
	assert.NotContains(t, out, "updatedAt")
}

func TestSessionToMap(t *testing.T) {
	size := &dto.SchemaDTO{SchemaID: "size", ItemID: "pizza-a", SchemaType: "size_selection",
		ConfigJSON: `{"sizes":[{"id":"16cm"},{"id":"20cm"}],"defaultOptionId":"16cm"}`, Status: "active"}
	toppings := &dto.SchemaDTO{SchemaID: "toppings", ItemID: "pizza-a", SchemaType: "additional_toppings",
		ConfigJSON: `{"toppings":[{"id":"olives"}],"maxSelections":3,"allowMultiple":true}`, Status: "active", Position: 1}
	dtos := []*dto.SchemaDTO{size, toppings}

	item := domain.NewCatalogItem("pizza-a", "Margherita", domain.NewMoneyFromInt(185000), nil, true)
	out := SessionToMap(domain.NewSession(item, SchemasFromDTOs(dtos)), dtos)

	assert.Equal(t, map[string]any{
		"itemId":    "pizza-a",
		"name":      "Margherita",
		"basePrice": float64(185000),
		"vatRate":   "0.0800",
	}, out["item"])
	assert.Len(t, out["schemas"], 2)
	assert.Equal(t, map[string]any{
		"size":     map[string]any{"size": "16cm"},
		"toppings": map[string]any{"toppings": []any{}},
	}, out["selections"])
}
