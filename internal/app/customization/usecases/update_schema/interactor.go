package update_schema

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/app/customization/domain"
	shared "github.com/ristorante/customization-service/internal/app/customization/usecases/shared"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	commitplan "github.com/ristorante/customization-service/internal/pkg/committer"
)

// Request replaces the definition of an existing schema. Definition.ItemID may be left
// empty; it cannot differ from the stored item. KeepPosition retains the stored position
// instead of Definition.Position.
type Request struct {
	SchemaID     string
	Definition   domain.SchemaDefinition
	KeepPosition bool
}

// Interactor redefines a schema. A definition that violates an author-time invariant is
// rejected and the stored schema is left unchanged.
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

	// 1. Load aggregate via read model
	dtoOut, err := it.ReadModel.GetSchema(ctx, req.SchemaID)
	if err != nil {
		return err
	}
	schema := utils.SchemaAggregateFromDTO(dtoOut)

	// 2. Domain method
	def := req.Definition
	if req.KeepPosition {
		def.Position = schema.Definition().Position
	}
	if err := schema.Redefine(def, now); err != nil {
		return err
	}

	// 3. Collect mutations
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

	// 5. Apply via committer
	return it.Committer.Apply(ctx, plan)
}
