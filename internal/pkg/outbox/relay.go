package outbox

import (
	"context"
	"log"
	"time"

	"github.com/ristorante/customization-service/internal/pkg/metrics"
)

// Event is one pending outbox row.
type Event struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	CreatedAt   time.Time
}

// Source reads pending events and acknowledges published ones.
type Source interface {
	FetchPending(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, eventIDs []string) error
}

// Publisher delivers events to the broker. A nil error means every event was written.
type Publisher interface {
	Publish(ctx context.Context, events []Event) error
}

// Relay moves pending outbox events to the broker. Events are marked published only after
// the broker acknowledged the write, so delivery is at-least-once.
type Relay struct {
	Source    Source
	Publisher Publisher
	Interval  time.Duration
	BatchSize int
	Metrics   *metrics.Registry
}

func NewRelay(src Source, pub Publisher, interval time.Duration, batchSize int, m *metrics.Registry) *Relay {
	return &Relay{
		Source:    src,
		Publisher: pub,
		Interval:  interval,
		BatchSize: batchSize,
		Metrics:   m,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		n, err := r.RunOnce(ctx)
		if err != nil {
			log.Printf("outbox relay: %v", err)
		} else if n > 0 {
			log.Printf("outbox relay: published %d events", n)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce publishes at most one batch and returns how many events were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.Source.FetchPending(ctx, r.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err := r.Publisher.Publish(ctx, events); err != nil {
		if r.Metrics != nil {
			r.Metrics.OutboxFailed.Add(float64(len(events)))
		}
		return 0, err
	}

	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.EventID)
	}
	if err := r.Source.MarkPublished(ctx, ids); err != nil {
		return 0, err
	}

	if r.Metrics != nil {
		r.Metrics.OutboxPublished.Add(float64(len(events)))
	}
	return len(events), nil
}
