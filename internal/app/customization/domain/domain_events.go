package domain

import "time"

// DomainEvent is a marker interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// SchemaDefinedEvent is raised when a schema is first saved.
type SchemaDefinedEvent struct {
	SchemaID   string
	ItemID     string
	SchemaType SchemaType
	IsRequired bool
	DefinedAt  time.Time
}

func (e *SchemaDefinedEvent) EventType() string {
	return "customization_schema.defined"
}

func (e *SchemaDefinedEvent) AggregateID() string {
	return e.SchemaID
}

func (e *SchemaDefinedEvent) OccurredAt() time.Time {
	return e.DefinedAt
}

// SchemaRedefinedEvent is raised when an administrator changes a schema's definition.
type SchemaRedefinedEvent struct {
	SchemaID      string
	ChangedFields []string
	RedefinedAt   time.Time
}

func (e *SchemaRedefinedEvent) EventType() string {
	return "customization_schema.redefined"
}

func (e *SchemaRedefinedEvent) AggregateID() string {
	return e.SchemaID
}

func (e *SchemaRedefinedEvent) OccurredAt() time.Time {
	return e.RedefinedAt
}

// SchemaActivatedEvent is raised when a schema becomes visible to customers again.
type SchemaActivatedEvent struct {
	SchemaID    string
	ActivatedAt time.Time
}

func (e *SchemaActivatedEvent) EventType() string {
	return "customization_schema.activated"
}

func (e *SchemaActivatedEvent) AggregateID() string {
	return e.SchemaID
}

func (e *SchemaActivatedEvent) OccurredAt() time.Time {
	return e.ActivatedAt
}

// SchemaDeactivatedEvent is raised when a schema is soft-deleted.
type SchemaDeactivatedEvent struct {
	SchemaID      string
	DeactivatedAt time.Time
}

func (e *SchemaDeactivatedEvent) EventType() string {
	return "customization_schema.deactivated"
}

func (e *SchemaDeactivatedEvent) AggregateID() string {
	return e.SchemaID
}

func (e *SchemaDeactivatedEvent) OccurredAt() time.Time {
	return e.DeactivatedAt
}
