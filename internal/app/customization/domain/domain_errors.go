package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for catalog lookups
var (
	// ErrCatalogItemNotFound indicates the catalog has no item with the given ID.
	ErrCatalogItemNotFound = errors.New("catalog item not found")

	// ErrCatalogItemNotActive indicates the item exists but is not currently sold.
	ErrCatalogItemNotActive = errors.New("catalog item is not active")
)

// Domain errors for the CustomizationSchema aggregate
var (
	// ErrSchemaNotFound indicates that a schema with the given ID does not exist.
	ErrSchemaNotFound = errors.New("customization schema not found")

	// ErrSchemaAlreadyActive indicates an attempt to activate an active schema.
	ErrSchemaAlreadyActive = errors.New("customization schema is already active")

	// ErrSchemaAlreadyInactive indicates an attempt to deactivate an inactive schema.
	ErrSchemaAlreadyInactive = errors.New("customization schema is already inactive")

	// ErrSchemaItemMismatch indicates a redefinition that tries to move a schema to another item.
	ErrSchemaItemMismatch = errors.New("customization schema cannot be moved to another item")
)

// Schema definition errors. Every one of them is wrapped in a *SchemaDefinitionError,
// which also matches ErrSchemaDefinition.
var (
	// ErrSchemaDefinition is the umbrella error for author-time invariant violations.
	ErrSchemaDefinition = errors.New("invalid customization schema definition")

	ErrEmptySchemaID          = errors.New("schema id cannot be empty")
	ErrEmptySchemaItemID      = errors.New("schema item id cannot be empty")
	ErrUnknownSchemaType      = errors.New("unknown schema type")
	ErrEmptyOptionID          = errors.New("option id cannot be empty")
	ErrDuplicateOptionID      = errors.New("option ids must be unique")
	ErrNegativeSelectionLimit = errors.New("selection limits cannot be negative")
	ErrMaxSelectionsTooLow    = errors.New("maxSelections must be at least 1")
	ErrMaxSelectionsRequired  = errors.New("maxSelections is required")
	ErrMinAboveMax            = errors.New("minSelections cannot exceed maxSelections")
	ErrAllowMultipleMismatch  = errors.New("allowMultiple must be false exactly when maxSelections is 1")
	ErrSingleChoiceMax        = errors.New("single choice options must have maxSelections of 1")
	ErrSingleChoiceMultiple   = errors.New("single choice options cannot allow multiple selections")
	ErrUnknownDefaultOption   = errors.New("default option is not one of the declared sizes")
	ErrNegativePrice          = errors.New("price cannot be negative")
	ErrNegativeCombinationFee = errors.New("combination fee cannot be negative")
)

// SchemaDefinitionError is raised when an administrator saves a schema that violates
// an author-time invariant. The stored schema is left unchanged.
type SchemaDefinitionError struct {
	SchemaID string
	Field    string
	Err      error
}

func (e *SchemaDefinitionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %q: %v", e.SchemaID, e.Err)
	}
	return fmt.Sprintf("schema %q: %s: %v", e.SchemaID, e.Field, e.Err)
}

func (e *SchemaDefinitionError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrSchemaDefinition) match any definition error.
func (e *SchemaDefinitionError) Is(target error) bool {
	return target == ErrSchemaDefinition
}

func definitionError(schemaID, field string, err error) *SchemaDefinitionError {
	return &SchemaDefinitionError{SchemaID: schemaID, Field: field, Err: err}
}

// ValidationErrorKind classifies a user-correctable selection problem.
type ValidationErrorKind string

const (
	MissingRequiredSelection  ValidationErrorKind = "MissingRequiredSelection"
	MissingSecondFlavor       ValidationErrorKind = "MissingSecondFlavor"
	SelfCombinationNotAllowed ValidationErrorKind = "SelfCombinationNotAllowed"
	BelowMinimumSelections    ValidationErrorKind = "BelowMinimumSelections"
	AboveMaximumSelections    ValidationErrorKind = "AboveMaximumSelections"
)

// ValidationError is one violated constraint for one schema.
type ValidationError struct {
	SchemaID string
	Kind     ValidationErrorKind
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema %q: %s", e.SchemaID, e.Message)
}

// ValidationErrors is the list returned when a selection cannot be committed.
// It is returned as an error value so callers can use errors.As to render every problem.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return "invalid selection: " + strings.Join(msgs, "; ")
}

// Kinds returns the violation kinds in schema order.
func (ve ValidationErrors) Kinds() []ValidationErrorKind {
	out := make([]ValidationErrorKind, 0, len(ve))
	for _, e := range ve {
		out = append(out, e.Kind)
	}
	return out
}
