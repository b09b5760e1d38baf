package deactivate_schema

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	shared "github.com/ristorante/customization-service/internal/app/customization/usecases/shared"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	commitplan "github.com/ristorante/customization-service/internal/pkg/committer"
)

// Request for deactivating a schema
type Request struct {
	SchemaID string
}

// Interactor soft-deletes a schema; the engine skips it from then on.
type Interactor struct {
	SchemaRepo contracts.SchemaRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	ReadModel  contracts.ReadModel
	Clock      clock.Clock
}

func NewInteractor(repo contracts.SchemaRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		SchemaRepo: repo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		ReadModel:  readModel,
		Clock:      clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load aggregate via ReadModel and reconstruct
	dto, err := it.ReadModel.GetSchema(ctx, req.SchemaID)
	if err != nil {
		return err
	}
	schema := utils.SchemaAggregateFromDTO(dto)

	// 2. Domain call
	if err := schema.Deactivate(now); err != nil {
		return err
	}

	// 3. Build commit plan
	plan := commitplan.NewPlan()

	mut, err := it.SchemaRepo.UpdateMut(schema)
	if err != nil {
		return err
	}
	plan.Add(mut)

	// 4. Outbox events
	for _, ev := range schema.DomainEvents() {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return err
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

	// 5. Apply plan
	return it.Committer.Apply(ctx, plan)
}
