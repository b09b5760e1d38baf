package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
)

// SchemaRepo is the write-side repository interface for customization schemas.
// Methods return Spanner mutations; they do not apply them.
type SchemaRepo interface {
	// InsertMut returns a mutation that inserts the schema.
	InsertMut(s *domain.CustomizationSchema) (*spanner.Mutation, error)

	// UpdateMut returns a mutation that updates the schema according to its ChangeTracker (or nil).
	UpdateMut(s *domain.CustomizationSchema) (*spanner.Mutation, error)
}
