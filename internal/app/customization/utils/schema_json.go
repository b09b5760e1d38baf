package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

// Config document keys.
const (
	cfgSizes          = "sizes"
	cfgDefaultOption  = "defaultOptionId"
	cfgCombinationFee = "combinationFee"
	cfgToppings       = "toppings"
	cfgOptions        = "options"
	cfgMinSelections  = "minSelections"
	cfgMaxSelections  = "maxSelections"
	cfgAllowMultiple  = "allowMultiple"
	cfgPrice          = "price"
	cfgPriceModifier  = "priceModifier"
)

// DecodeSchemaDefinition maps a stored schema row to a definition. Decoding is tolerant:
// malformed documents decode as empty, and non-numeric prices are treated as unset.
func DecodeSchemaDefinition(d *dto.SchemaDTO) domain.SchemaDefinition {
	def := domain.SchemaDefinition{
		ID:         d.SchemaID,
		ItemID:     d.ItemID,
		Type:       domain.SchemaType(d.SchemaType),
		IsRequired: d.IsRequired,
		Position:   int(d.Position),
	}

	cfg := decodeObject(d.ConfigJSON)
	for _, raw := range asSlice(cfg[cfgSizes]) {
		m := asObject(raw)
		def.Sizes = append(def.Sizes, domain.SizeOption{
			ID:            asString(m["id"]),
			Name:          asString(m["name"]),
			PriceModifier: asMoney(m[cfgPriceModifier]),
		})
	}
	def.DefaultOptionID = asString(cfg[cfgDefaultOption])
	def.CombinationFee = asMoney(cfg[cfgCombinationFee])
	for _, raw := range asSlice(cfg[cfgToppings]) {
		m := asObject(raw)
		def.Toppings = append(def.Toppings, domain.Topping{ID: asString(m["id"]), Name: asString(m["name"])})
	}
	for _, raw := range asSlice(cfg[cfgOptions]) {
		m := asObject(raw)
		def.Options = append(def.Options, domain.PricedOption{
			ID:    asString(m["id"]),
			Name:  asString(m["name"]),
			Price: asMoney(m[cfgPrice]),
		})
	}
	def.MinSelections = asInt(cfg[cfgMinSelections])
	def.MaxSelections = asInt(cfg[cfgMaxSelections])
	def.AllowMultiple, _ = cfg[cfgAllowMultiple].(bool)

	prices := make(map[string]*domain.Money)
	if d.PricingConfigJSON != nil {
		for id, raw := range decodeObject(*d.PricingConfigJSON) {
			prices[id] = asMoney(raw)
		}
	}
	def.Pricing = domain.NewPricingConfig(prices)

	return def
}

// SchemaFromDTO returns the engine's view of a stored schema, or nil when its type is unknown
// and it carries no options.
func SchemaFromDTO(d *dto.SchemaDTO) domain.Schema {
	if d == nil {
		return nil
	}
	return DecodeSchemaDefinition(d).Build(d.Status == string(domain.SchemaStatusActive))
}

// SchemasFromDTOs maps stored schemas, dropping unknown and inactive ones.
func SchemasFromDTOs(ds []*dto.SchemaDTO) []domain.Schema {
	out := make([]domain.Schema, 0, len(ds))
	for _, d := range ds {
		s := SchemaFromDTO(d)
		if s == nil || !s.IsActive() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SchemaAggregateFromDTO reconstructs the schema aggregate from a stored row.
func SchemaAggregateFromDTO(d *dto.SchemaDTO) *domain.CustomizationSchema {
	return domain.ReconstructCustomizationSchema(
		DecodeSchemaDefinition(d),
		domain.SchemaStatus(d.Status),
		TimeOrZero(ParseTimePtr(d.CreatedAt)),
		TimeOrZero(ParseTimePtr(d.UpdatedAt)),
	)
}

// CatalogItemFromDTO builds the catalog snapshot. An unparsable VAT rate falls back to the default.
func CatalogItemFromDTO(d *dto.CatalogItemDTO) *domain.CatalogItem {
	var vat *big.Rat
	if d.VATRate != nil {
		if r, ok := new(big.Rat).SetString(*d.VATRate); ok {
			vat = r
		}
	}
	var base *domain.Money
	if d.BasePriceDen != 0 {
		base = domain.NewMoney(d.BasePriceNum, d.BasePriceDen)
	}
	return domain.NewCatalogItem(d.ItemID, d.Name, base, vat, d.Status == "active")
}

// EncodeSchemaConfig renders the type-specific part of a definition as the stored config document.
func EncodeSchemaConfig(def domain.SchemaDefinition) (string, error) {
	cfg := make(map[string]any)

	switch def.Type {
	case domain.SchemaTypeSizeSelection:
		sizes := make([]map[string]any, 0, len(def.Sizes))
		for _, sz := range def.Sizes {
			m := map[string]any{"id": sz.ID}
			if sz.Name != "" {
				m["name"] = sz.Name
			}
			if sz.PriceModifier != nil {
				m[cfgPriceModifier] = moneyNumber(sz.PriceModifier)
			}
			sizes = append(sizes, m)
		}
		cfg[cfgSizes] = sizes
		if def.DefaultOptionID != "" {
			cfg[cfgDefaultOption] = def.DefaultOptionID
		}
	case domain.SchemaTypeHalfAndHalf:
		if def.CombinationFee != nil {
			cfg[cfgCombinationFee] = moneyNumber(def.CombinationFee)
		}
	case domain.SchemaTypeAdditionalToppings:
		toppings := make([]map[string]any, 0, len(def.Toppings))
		for _, t := range def.Toppings {
			m := map[string]any{"id": t.ID}
			if t.Name != "" {
				m["name"] = t.Name
			}
			toppings = append(toppings, m)
		}
		cfg[cfgToppings] = toppings
	}

	if def.Type == domain.SchemaTypeAdditionalToppings || def.Type == domain.SchemaTypeSingleChoiceOptions {
		if def.MinSelections != nil {
			cfg[cfgMinSelections] = *def.MinSelections
		}
		if def.MaxSelections != nil {
			cfg[cfgMaxSelections] = *def.MaxSelections
		}
		cfg[cfgAllowMultiple] = def.AllowMultiple
	}

	if len(def.Options) > 0 {
		options := make([]map[string]any, 0, len(def.Options))
		for _, o := range def.Options {
			m := map[string]any{"id": o.ID}
			if o.Name != "" {
				m["name"] = o.Name
			}
			if o.Price != nil {
				m[cfgPrice] = moneyNumber(o.Price)
			}
			options = append(options, m)
		}
		cfg[cfgOptions] = options
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode schema config %s: %w", def.ID, err)
	}
	return string(b), nil
}

// EncodePricingConfig renders a pricing config as {"<id>": {"price": n}}. An empty config
// encodes as nil.
func EncodePricingConfig(pc domain.PricingConfig) (*string, error) {
	entries := pc.Entries()
	if len(entries) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	doc := make(map[string]any, len(entries))
	for _, id := range ids {
		doc[id] = map[string]any{cfgPrice: moneyNumber(entries[id])}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode pricing config: %w", err)
	}
	s := string(b)
	return &s, nil
}

func moneyNumber(m *domain.Money) json.Number {
	r := m.Rat()
	if r.IsInt() {
		return json.Number(r.Num().String())
	}
	return json.Number(strings.TrimSuffix(strings.TrimRight(m.FloatString(6), "0"), "."))
}

func decodeObject(doc string) map[string]any {
	if strings.TrimSpace(doc) == "" {
		return map[string]any{}
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(doc)))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	}
	return ""
}

// asMoney accepts a bare number, a numeric string or an object with a price field.
func asMoney(v any) *domain.Money {
	switch x := v.(type) {
	case json.Number:
		m, err := domain.NewMoneyFromDecimal(x.String())
		if err != nil {
			return nil
		}
		return m
	case string:
		m, err := domain.NewMoneyFromDecimal(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		return m
	case map[string]any:
		return asMoney(x[cfgPrice])
	}
	return nil
}

func asInt(v any) *int {
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil
	}
	out := int(i)
	return &out
}
