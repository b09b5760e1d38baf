package define_schema

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	shared "github.com/ristorante/customization-service/internal/app/customization/usecases/shared"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	commitplan "github.com/ristorante/customization-service/internal/pkg/committer"
)

// Request carries the schema an administrator is saving. An empty Definition.ID is
// replaced with a generated id.
type Request struct {
	Definition domain.SchemaDefinition
}

// Interactor validates a new schema against the author-time invariants and persists it
// together with its outbox events in a single commit.
type Interactor struct {
	Catalog    contracts.Catalog
	SchemaRepo contracts.SchemaRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	Clock      clock.Clock
}

func NewInteractor(catalog contracts.Catalog, schemaRepo contracts.SchemaRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		Catalog:    catalog,
		SchemaRepo: schemaRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		Clock:      clk,
	}
}

// Execute returns the id of the stored schema.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	def := req.Definition
	if def.ID == "" {
		def.ID = uuid.New().String()
	}

	// 1. Build domain aggregate; invariants are enforced here
	schema, err := domain.NewCustomizationSchema(def, now)
	if err != nil {
		return "", err
	}

	// 2. The item must exist in the catalog
	if _, err := it.Catalog.GetCatalogItem(ctx, schema.ItemID()); err != nil {
		return "", err
	}

	// 3. Build commit plan
	plan := commitplan.NewPlan()

	mut, err := it.SchemaRepo.InsertMut(schema)
	if err != nil {
		return "", err
	}
	plan.Add(mut)

	// 4. Outbox events
	for _, ev := range schema.DomainEvents() {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return "", err
		}
		plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       contracts.OutboxStatusPending,
			CreatedAtUTC: now,
		}))
	}

	// 5. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return schema.ID(), nil
}
