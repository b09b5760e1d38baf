package domain

import "time"

// Field constants for change tracking
const (
	FieldDefinition = "definition"
	FieldRequired   = "is_required"
	FieldPosition   = "position"
	FieldStatus     = "status"
)

// SchemaStatus represents the lifecycle state of a customization schema.
type SchemaStatus string

const (
	// SchemaStatusActive schemas are offered to customers.
	SchemaStatusActive SchemaStatus = "active"

	// SchemaStatusInactive schemas are soft-deleted; the engine skips them.
	SchemaStatusInactive SchemaStatus = "inactive"
)

// CustomizationSchema is the aggregate root administrators edit. It owns one validated
// SchemaDefinition and its lifecycle.
type CustomizationSchema struct {
	definition SchemaDefinition
	status     SchemaStatus
	createdAt  time.Time
	updatedAt  time.Time
	changes    *ChangeTracker
	events     []DomainEvent
}

// NewCustomizationSchema validates def and creates an active schema.
func NewCustomizationSchema(def SchemaDefinition, now time.Time) (*CustomizationSchema, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	def = def.Normalized()

	s := &CustomizationSchema{
		definition: def,
		status:     SchemaStatusActive,
		createdAt:  now,
		updatedAt:  now,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}

	s.events = append(s.events, &SchemaDefinedEvent{
		SchemaID:   def.ID,
		ItemID:     def.ItemID,
		SchemaType: def.Type,
		IsRequired: def.IsRequired,
		DefinedAt:  now,
	})

	return s, nil
}

// ReconstructCustomizationSchema rebuilds a schema from persisted state without validation.
func ReconstructCustomizationSchema(def SchemaDefinition, status SchemaStatus, createdAt, updatedAt time.Time) *CustomizationSchema {
	return &CustomizationSchema{
		definition: def,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}
}

// Getters

func (s *CustomizationSchema) ID() string {
	return s.definition.ID
}

func (s *CustomizationSchema) ItemID() string {
	return s.definition.ItemID
}

func (s *CustomizationSchema) Definition() SchemaDefinition {
	return s.definition
}

func (s *CustomizationSchema) Status() SchemaStatus {
	return s.status
}

func (s *CustomizationSchema) CreatedAt() time.Time {
	return s.createdAt
}

func (s *CustomizationSchema) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *CustomizationSchema) Changes() *ChangeTracker {
	return s.changes
}

func (s *CustomizationSchema) DomainEvents() []DomainEvent {
	return s.events
}

func (s *CustomizationSchema) IsActive() bool {
	return s.status == SchemaStatusActive
}

// Schema returns the engine's view of this schema, or nil for an unknown type
// without options.
func (s *CustomizationSchema) Schema() Schema {
	return s.definition.Build(s.IsActive())
}

// Business Methods

// Redefine replaces the definition. The new definition must keep the schema id and item;
// on any validation error the schema is left unchanged.
func (s *CustomizationSchema) Redefine(def SchemaDefinition, now time.Time) error {
	def.ID = s.definition.ID
	if def.ItemID == "" {
		def.ItemID = s.definition.ItemID
	}
	if def.ItemID != s.definition.ItemID {
		return ErrSchemaItemMismatch
	}
	if err := def.Validate(); err != nil {
		return err
	}
	def = def.Normalized()

	changed := make([]string, 0, 3)
	if def.IsRequired != s.definition.IsRequired {
		changed = append(changed, FieldRequired)
	}
	if def.Position != s.definition.Position {
		changed = append(changed, FieldPosition)
	}
	// Config and pricing are stored as documents; any redefinition rewrites them.
	changed = append(changed, FieldDefinition)

	s.definition = def
	s.changes.MarkDirty(changed...)
	s.updatedAt = now

	s.events = append(s.events, &SchemaRedefinedEvent{
		SchemaID:      def.ID,
		ChangedFields: changed,
		RedefinedAt:   now,
	})
	return nil
}

// Activate makes the schema visible to customers again.
func (s *CustomizationSchema) Activate(now time.Time) error {
	if s.status == SchemaStatusActive {
		return ErrSchemaAlreadyActive
	}

	s.status = SchemaStatusActive
	s.changes.MarkDirty(FieldStatus)
	s.updatedAt = now

	s.events = append(s.events, &SchemaActivatedEvent{
		SchemaID:    s.definition.ID,
		ActivatedAt: now,
	})
	return nil
}

// Deactivate soft-deletes the schema.
func (s *CustomizationSchema) Deactivate(now time.Time) error {
	if s.status == SchemaStatusInactive {
		return ErrSchemaAlreadyInactive
	}

	s.status = SchemaStatusInactive
	s.changes.MarkDirty(FieldStatus)
	s.updatedAt = now

	s.events = append(s.events, &SchemaDeactivatedEvent{
		SchemaID:      s.definition.ID,
		DeactivatedAt: now,
	})
	return nil
}

// ClearEvents clears the accumulated domain events.
func (s *CustomizationSchema) ClearEvents() {
	s.events = make([]DomainEvent, 0)
}
