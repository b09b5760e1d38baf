package e2e

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante/customization-service/internal/app/customization/repo"
	committer "github.com/ristorante/customization-service/internal/pkg/committer"
	"github.com/ristorante/customization-service/internal/pkg/metrics"
	"github.com/ristorante/customization-service/internal/pkg/outbox"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []outbox.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events []outbox.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) forAggregate(id string) []outbox.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []outbox.Event
	for _, e := range p.events {
		if e.AggregateID == id {
			out = append(out, e)
		}
	}
	return out
}

func TestOutboxRelay_PublishesAndMarksEvents(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	itemID := mustSeedItem(ctx, t, "Capricciosa", 235000)
	schemaID := mustDefine(ctx, t, sizeDef(itemID))

	pub := &recordingPublisher{}
	src := outbox.NewSpannerSource(spClient, repo.NewOutboxRepo(), committer.NewAdapter(spClient), clk)
	relay := outbox.NewRelay(src, pub, time.Second, 500, metrics.NewRegistry())

	// Other tests leave pending rows behind; drain until this schema's event went out.
	for i := 0; i < 20 && len(pub.forAggregate(schemaID)) == 0; i++ {
		_, err := relay.RunOnce(ctx)
		require.NoError(t, err)
	}

	published := pub.forAggregate(schemaID)
	require.Len(t, published, 1)
	assert.Equal(t, "customization_schema.defined", published[0].EventType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(published[0].Payload), &payload))
	assert.Equal(t, "customization_schema.defined", payload["event_type"])

	events := mustFetchOutboxEvents(ctx, t, spClient, schemaID)
	require.Len(t, events, 1)
	assert.Equal(t, "published", events[0].Status)
	assert.True(t, events[0].ProcessedAt.Valid)
}
