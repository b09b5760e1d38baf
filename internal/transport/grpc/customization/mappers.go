package customization

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/price_item"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/update_schema"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
)

// fields is a decoded request object.
type fields map[string]any

func fieldsOf(req *structpb.Struct) fields {
	if req == nil {
		return nil
	}
	return req.AsMap()
}

func (f fields) str(key string) string {
	s, _ := f[key].(string)
	return s
}

func (f fields) boolean(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// number returns an integral JSON number.
func (f fields) number(key string) (int64, bool) {
	n, ok := f[key].(float64)
	if !ok || n != float64(int64(n)) {
		return 0, false
	}
	return int64(n), true
}

func (f fields) object(key string) map[string]any {
	m, _ := f[key].(map[string]any)
	return m
}

func mapPriceItemRequest(f fields) price_item.Request {
	return price_item.Request{
		ItemID: f.str("itemId"),
		State:  utils.SelectionStateFromMap(f.object("selections")),
	}
}

func mapSchemaDefinition(schemaID string, f fields) (domain.SchemaDefinition, error) {
	position, _ := f.number("position")
	d, err := utils.SchemaInputToDTO(schemaID, f.str("itemId"), f.str("type"), f.boolean("isRequired"),
		position, f.object("config"), f.object("pricingConfig"))
	if err != nil {
		return domain.SchemaDefinition{}, err
	}
	return utils.DecodeSchemaDefinition(d), nil
}

// mapUpdateRequest keeps the stored position when the request leaves it out.
func mapUpdateRequest(schemaID string, f fields) (update_schema.Request, error) {
	def, err := mapSchemaDefinition(schemaID, f)
	if err != nil {
		return update_schema.Request{}, err
	}
	_, hasPosition := f.number("position")
	return update_schema.Request{SchemaID: schemaID, Definition: def, KeepPosition: !hasPosition}, nil
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
