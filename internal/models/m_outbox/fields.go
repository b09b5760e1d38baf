package m_outbox

// Field constants for the outbox_events table. The relay reads pending rows through
// IndexStatus and stamps processed_at when the broker acknowledged them.
const (
	TableName   = "outbox_events"
	IndexStatus = "idx_outbox_status"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)

// RelayColumns are the columns the relay reads, in scan order.
var RelayColumns = []string{ColEventID, ColEventType, ColAggregateID, ColPayload, ColCreatedAt}
