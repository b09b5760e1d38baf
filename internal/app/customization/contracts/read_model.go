package contracts

import (
	"context"

	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

// ReadModel serves the schema administration reads.
// GetSchema returns domain.ErrSchemaNotFound when the schema does not exist.
type ReadModel interface {
	GetSchema(ctx context.Context, schemaID string) (*dto.SchemaDTO, error)
	ListItemSchemas(ctx context.Context, itemID string, includeInactive bool, limit, offset int) ([]*dto.SchemaDTO, error)
}
