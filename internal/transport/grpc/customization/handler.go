package customization

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/queries/get_schema"
	"github.com/ristorante/customization-service/internal/app/customization/queries/list_item_schemas"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/activate_schema"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/deactivate_schema"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/define_schema"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/price_item"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/update_schema"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
	"github.com/ristorante/customization-service/internal/pkg/metrics"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Define     *define_schema.Interactor
	Update     *update_schema.Interactor
	Activate   *activate_schema.Interactor
	Deactivate *deactivate_schema.Interactor
	Price      *price_item.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get  *get_schema.Handler
	List *list_item_schemas.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct payloads to application requests and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
	metrics  *metrics.Registry
}

var _ CustomizationServiceServer = (*Handler)(nil)

// NewHandler builds the adapter. m may be nil.
func NewHandler(cmd Commands, qry Queries, m *metrics.Registry) *Handler {
	return &Handler{commands: cmd, queries: qry, metrics: m}
}

// PriceItem validates and prices a selection. A selection problem is not an RPC error:
// the reply carries ok=false and the full list of violations.
func (h *Handler) PriceItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validatePriceItem(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	line, err := h.commands.Price.Execute(ctx, mapPriceItemRequest(in))
	var violations domain.ValidationErrors
	if errors.As(err, &violations) {
		h.observeViolations(violations)
		return toStruct(map[string]any{"ok": false, "violations": utils.ViolationsToList(violations)})
	}
	if err != nil {
		return nil, mapError(err)
	}

	if h.metrics != nil {
		h.metrics.ObservePricedLine(line.UnitPrice)
	}
	return toStruct(map[string]any{"ok": true, "line": utils.PricedLineToMap(line)})
}

func (h *Handler) DefineSchema(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validateSchemaInput(in, true); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	def, err := mapSchemaDefinition(in.str("schemaId"), in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.Define.Execute(ctx, define_schema.Request{Definition: def})
	if err != nil {
		h.observeRejected(err)
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"schemaId": id})
}

func (h *Handler) UpdateSchema(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validateSchemaID(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validateSchemaInput(in, false); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	upd, err := mapUpdateRequest(in.str("schemaId"), in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Update.Execute(ctx, upd); err != nil {
		h.observeRejected(err)
		return nil, mapError(err)
	}
	return toStruct(map[string]any{})
}

func (h *Handler) ActivateSchema(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validateSchemaID(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Activate.Execute(ctx, activate_schema.Request{SchemaID: in.str("schemaId")}); err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{})
}

func (h *Handler) DeactivateSchema(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validateSchemaID(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Deactivate.Execute(ctx, deactivate_schema.Request{SchemaID: in.str("schemaId")}); err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{})
}

func (h *Handler) GetSchema(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validateSchemaID(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	dtoOut, err := h.queries.Get.Execute(ctx, in.str("schemaId"))
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"schema": utils.SchemaDTOToMap(dtoOut)})
}

func (h *Handler) ListItemSchemas(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := fieldsOf(req)
	if err := validateListItemSchemas(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	size, _ := in.number("pageSize")
	limit := clampPageSize(int(size))

	offset, err := decodePageToken(in.str("pageToken"))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid pageToken")
	}

	dtos, err := h.queries.List.Execute(ctx, in.str("itemId"), in.boolean("includeInactive"), limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	schemas := make([]any, 0, len(dtos))
	for _, d := range dtos {
		schemas = append(schemas, utils.SchemaDTOToMap(d))
	}

	next := ""
	if len(dtos) == limit {
		next = encodePageToken(offset + limit)
	}

	return toStruct(map[string]any{"schemas": schemas, "nextPageToken": next})
}

func (h *Handler) observeViolations(violations domain.ValidationErrors) {
	if h.metrics == nil {
		return
	}
	kinds := make([]string, 0, len(violations))
	for _, k := range violations.Kinds() {
		kinds = append(kinds, string(k))
	}
	h.metrics.ObserveValidationFailure(kinds...)
}

func (h *Handler) observeRejected(err error) {
	if h.metrics != nil && errors.Is(err, domain.ErrSchemaDefinition) {
		h.metrics.SchemaRejected.Inc()
	}
}
