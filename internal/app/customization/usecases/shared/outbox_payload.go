package shared

import (
	"encoding/json"
	"fmt"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.SchemaDefinedEvent:
		payload = map[string]interface{}{
			"schema_id":   e.SchemaID,
			"item_id":     e.ItemID,
			"schema_type": string(e.SchemaType),
			"is_required": e.IsRequired,
			"defined_at":  e.DefinedAt,
		}

	case *domain.SchemaRedefinedEvent:
		payload = map[string]interface{}{
			"schema_id":      e.SchemaID,
			"changed_fields": e.ChangedFields,
			"redefined_at":   e.RedefinedAt,
		}

	case *domain.SchemaActivatedEvent:
		payload = map[string]interface{}{
			"schema_id":    e.SchemaID,
			"activated_at": e.ActivatedAt,
		}

	case *domain.SchemaDeactivatedEvent:
		payload = map[string]interface{}{
			"schema_id":      e.SchemaID,
			"deactivated_at": e.DeactivatedAt,
		}

	default:
		// Fallback: try to marshal the event directly.
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	payload["event_type"] = ev.EventType()
	payload["occurred_at"] = ev.OccurredAt()
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
