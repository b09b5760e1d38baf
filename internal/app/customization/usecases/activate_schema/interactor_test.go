package activate_schema

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante/customization-service/internal/app/customization/contracts/fakes"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
	"github.com/ristorante/customization-service/internal/app/customization/repo"
	"github.com/ristorante/customization-service/internal/pkg/clock"
)

func TestExecute_Activates(t *testing.T) {
	store := fakes.NewStore()
	store.PutSchema(&dto.SchemaDTO{SchemaID: "hh", ItemID: "pizza-a", SchemaType: "half_and_half",
		ConfigJSON: `{}`, Status: "inactive"})
	cm := &fakes.Committer{}
	it := NewInteractor(repo.NewSchemaRepo(), repo.NewOutboxRepo(), cm, store, clock.NewFake(time.Now().UTC()))

	require.NoError(t, it.Execute(context.Background(), Request{SchemaID: "hh"}))
	assert.Equal(t, 2, cm.Mutations())

	store.Schemas["hh"].Status = "active"
	assert.ErrorIs(t, it.Execute(context.Background(), Request{SchemaID: "hh"}), domain.ErrSchemaAlreadyActive)
}
