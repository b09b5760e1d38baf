package outbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/models/m_outbox"
	"github.com/ristorante/customization-service/internal/pkg/clock"
	commitplan "github.com/ristorante/customization-service/internal/pkg/committer"
)

// Marker builds the mutation acknowledging one published event.
type Marker interface {
	MarkPublishedMut(eventID string, at time.Time) *spanner.Mutation
}

// Committer applies a mutation plan atomically.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

// SpannerSource reads pending rows from outbox_events.
type SpannerSource struct {
	Client    *spanner.Client
	Marker    Marker
	Committer Committer
	Clock     clock.Clock
}

func NewSpannerSource(client *spanner.Client, marker Marker, committer Committer, clk clock.Clock) *SpannerSource {
	return &SpannerSource{Client: client, Marker: marker, Committer: committer, Clock: clk}
}

func (s *SpannerSource) FetchPending(ctx context.Context, limit int) ([]Event, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s
		      FROM %s@{FORCE_INDEX=%s}
		      WHERE %s = @status
		      ORDER BY %s ASC, %s ASC
		      LIMIT @limit`,
			strings.Join(m_outbox.RelayColumns, ", "),
			m_outbox.TableName, m_outbox.IndexStatus,
			m_outbox.ColStatus,
			m_outbox.ColCreatedAt, m_outbox.ColEventID),
		Params: map[string]interface{}{"status": contracts.OutboxStatusPending, "limit": limit},
	}

	iter := s.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []Event
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e Event
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func (s *SpannerSource) MarkPublished(ctx context.Context, eventIDs []string) error {
	now := s.Clock.Now()
	plan := commitplan.NewPlan()
	for _, id := range eventIDs {
		plan.Add(s.Marker.MarkPublishedMut(id, now))
	}
	return s.Committer.Apply(ctx, plan)
}
