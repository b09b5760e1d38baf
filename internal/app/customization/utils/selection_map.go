package utils

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

// SelectionStateFromMap builds a selection state from the wire shape shared by the gRPC and
// HTTP transports:
//
//	{"<schemaId>": {"size": "20cm", "toppings": ["olives"], "orderMode": "hh", "secondItemId": "p2"}}
//
// A string value is a single id and a list is a set. Other value types are ignored.
func SelectionStateFromMap(selections map[string]any) *domain.SelectionState {
	st := domain.NewSelectionState()
	for schemaID, raw := range selections {
		values, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for key, v := range values {
			switch x := v.(type) {
			case string:
				st.SetSelection(schemaID, key, domain.Single(x))
			case []any:
				ids := make([]string, 0, len(x))
				for _, item := range x {
					if s, ok := item.(string); ok {
						ids = append(ids, s)
					}
				}
				st.SetSelection(schemaID, key, domain.Set(ids...))
			case []string:
				st.SetSelection(schemaID, key, domain.Set(x...))
			}
		}
	}
	return st
}

// PricedLineToMap renders a priced line for the wire.
func PricedLineToMap(line *domain.PricedLine) map[string]any {
	selections := make([]any, 0, len(line.Selections))
	for _, s := range line.Selections {
		values := make(map[string]any, len(s.Selections))
		for k, v := range s.Selections {
			values[k] = v
		}
		entry := map[string]any{
			"schemaId":   s.SchemaID,
			"schemaType": string(s.SchemaType),
			"selections": values,
			"unitPrice":  float64(s.UnitPrice),
		}
		if s.OrderMode != domain.OrderModeWhole {
			entry["orderMode"] = string(s.OrderMode)
		}
		if s.SecondItemID != "" {
			entry["secondItemId"] = s.SecondItemID
		}
		selections = append(selections, entry)
	}

	return map[string]any{
		"itemId":     line.ItemID,
		"unitPrice":  float64(line.UnitPrice),
		"vatRate":    line.VATRate.FloatString(4),
		"pricedAt":   line.PricedAt.UTC().Format(time.RFC3339),
		"selections": selections,
	}
}

// ViolationsToList renders validation errors for the wire.
func ViolationsToList(errs domain.ValidationErrors) []any {
	out := make([]any, 0, len(errs))
	for _, e := range errs {
		out = append(out, map[string]any{
			"schemaId": e.SchemaID,
			"kind":     string(e.Kind),
			"message":  e.Message,
		})
	}
	return out
}

// SchemaInputToDTO converts an administrator's schema document into a stored-row shape so it
// can go through the same decoding as persisted schemas.
func SchemaInputToDTO(schemaID, itemID, schemaType string, isRequired bool, position int64,
	config, pricingConfig map[string]any) (*dto.SchemaDTO, error) {

	if config == nil {
		config = map[string]any{}
	}
	cfg, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	out := &dto.SchemaDTO{
		SchemaID:   schemaID,
		ItemID:     itemID,
		SchemaType: schemaType,
		IsRequired: isRequired,
		ConfigJSON: string(cfg),
		Position:   position,
		Status:     string(domain.SchemaStatusActive),
	}
	if len(pricingConfig) > 0 {
		p, err := json.Marshal(pricingConfig)
		if err != nil {
			return nil, fmt.Errorf("pricingConfig: %w", err)
		}
		ps := string(p)
		out.PricingConfigJSON = &ps
	}
	return out, nil
}

// SchemaDTOToMap renders a stored schema for the wire. Stored documents are passed through.
func SchemaDTOToMap(d *dto.SchemaDTO) map[string]any {
	out := map[string]any{
		"schemaId":   d.SchemaID,
		"itemId":     d.ItemID,
		"type":       d.SchemaType,
		"isRequired": d.IsRequired,
		"position":   float64(d.Position),
		"status":     d.Status,
		"config":     jsonDocument(d.ConfigJSON),
	}
	if d.PricingConfigJSON != nil {
		out["pricingConfig"] = jsonDocument(*d.PricingConfigJSON)
	} else {
		out["pricingConfig"] = map[string]any{}
	}
	if d.CreatedAt != nil {
		out["createdAt"] = *d.CreatedAt
	}
	if d.UpdatedAt != nil {
		out["updatedAt"] = *d.UpdatedAt
	}
	return out
}

// SessionToMap renders an opened session: the item, its active schemas and the initial
// selections.
func SessionToMap(sess *domain.Session, schemaDTOs []*dto.SchemaDTO) map[string]any {
	item := sess.Item()
	basePrice, _ := item.BasePrice().Rat().Float64()
	byID := make(map[string]*dto.SchemaDTO, len(schemaDTOs))
	for _, d := range schemaDTOs {
		byID[d.SchemaID] = d
	}

	schemas := make([]any, 0, len(sess.Schemas()))
	initial := make(map[string]any, len(sess.Schemas()))
	for _, s := range sess.Schemas() {
		if d, ok := byID[s.ID()]; ok {
			schemas = append(schemas, SchemaDTOToMap(d))
		}
		initial[s.ID()] = selectionToMap(sess.State().Get(s.ID()))
	}

	return map[string]any{
		"item": map[string]any{
			"itemId":    item.ID(),
			"name":      item.Name(),
			"basePrice": basePrice,
			"vatRate":   item.VATRate().FloatString(4),
		},
		"schemas":    schemas,
		"selections": initial,
	}
}

func selectionToMap(sel domain.SchemaSelection) map[string]any {
	out := make(map[string]any)
	for _, k := range sel.Keys() {
		v := sel.Value(k)
		if v.IsSet() {
			ids := v.IDs()
			sort.Strings(ids)
			list := make([]any, 0, len(ids))
			for _, id := range ids {
				list = append(list, id)
			}
			out[k] = list
			continue
		}
		out[k] = v.First()
	}
	if sel.OrderMode() != domain.OrderModeWhole {
		out[domain.KeyOrderMode] = string(sel.OrderMode())
	}
	if sel.SecondItemID() != "" {
		out[domain.KeySecondItemID] = sel.SecondItemID()
	}
	return out
}

func jsonDocument(doc string) any {
	var v any
	if err := json.Unmarshal([]byte(doc), &v); err != nil || v == nil {
		return map[string]any{}
	}
	return v
}
