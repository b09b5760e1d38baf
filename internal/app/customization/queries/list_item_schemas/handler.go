package list_item_schemas

import (
	"context"

	contracts "github.com/ristorante/customization-service/internal/app/customization/contracts"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, itemID string, includeInactive bool, limit, offset int) ([]*dto.SchemaDTO, error) {
	return h.readModel.ListItemSchemas(ctx, itemID, includeInactive, limit, offset)
}
