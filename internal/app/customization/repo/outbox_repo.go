package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
// It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}

	values := m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	)
	return m_outbox.InsertMutation(values)
}

// MarkPublishedMut flags an event as delivered to the broker.
func (r *OutboxRepo) MarkPublishedMut(eventID string, at time.Time) *spanner.Mutation {
	if eventID == "" {
		return nil
	}
	return m_outbox.StatusUpdateMutation(eventID, contracts.OutboxStatusPublished, at.UTC())
}
