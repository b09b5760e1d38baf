package open_session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante/customization-service/internal/app/customization/contracts/fakes"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

func TestExecute_OpensSessionWithInitialState(t *testing.T) {
	store := fakes.NewStore()
	store.PutItem("pizza-a", 185000)
	store.PutSchema(&dto.SchemaDTO{SchemaID: "toppings", ItemID: "pizza-a", SchemaType: "additional_toppings",
		ConfigJSON: `{"toppings":[{"id":"olives"}],"maxSelections":3,"allowMultiple":true}`, Status: "active", Position: 2})
	store.PutSchema(&dto.SchemaDTO{SchemaID: "size", ItemID: "pizza-a", SchemaType: "size_selection",
		ConfigJSON: `{"sizes":[{"id":"16cm"},{"id":"20cm"}],"defaultOptionId":"16cm"}`, Status: "active", Position: 1})
	store.PutSchema(&dto.SchemaDTO{SchemaID: "gone", ItemID: "pizza-a", SchemaType: "half_and_half",
		ConfigJSON: `{}`, Status: "inactive"})
	store.PutSchema(&dto.SchemaDTO{SchemaID: "mystery", ItemID: "pizza-a", SchemaType: "mystery",
		ConfigJSON: `{}`, Status: "active", Position: 3})

	res, err := NewInteractor(store).Execute(context.Background(), Request{ItemID: "pizza-a"})
	require.NoError(t, err)
	sess := res.Session

	schemas := sess.Schemas()
	require.Len(t, schemas, 2)
	assert.Equal(t, "size", schemas[0].ID())
	assert.Equal(t, "toppings", schemas[1].ID())

	assert.Equal(t, "16cm", sess.State().Get("size").Value(domain.KeySize).First())
	assert.True(t, sess.State().Get("toppings").Value(domain.KeyToppings).IsSet())

	rowIDs := make([]string, 0, len(res.Rows))
	for _, d := range res.Rows {
		rowIDs = append(rowIDs, d.SchemaID)
	}
	assert.Equal(t, []string{"size", "toppings", "mystery"}, rowIDs)
	assert.Equal(t, 1, store.SchemaReads())
}

func TestExecute_CatalogFailure(t *testing.T) {
	store := fakes.NewStore()
	store.Err = errors.New("catalog unavailable")

	_, err := NewInteractor(store).Execute(context.Background(), Request{ItemID: "pizza-a"})
	assert.EqualError(t, err, "catalog unavailable")
}
