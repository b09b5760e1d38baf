package domain

import "strings"

// Field names reported in SchemaDefinitionError.
const (
	DefFieldID             = "id"
	DefFieldItemID         = "itemId"
	DefFieldType           = "type"
	DefFieldSizes          = "config.sizes"
	DefFieldDefaultOption  = "config.defaultOptionId"
	DefFieldCombinationFee = "config.combinationFee"
	DefFieldToppings       = "config.toppings"
	DefFieldOptions        = "config.options"
	DefFieldMinSelections  = "config.minSelections"
	DefFieldMaxSelections  = "config.maxSelections"
	DefFieldAllowMultiple  = "config.allowMultiple"
	DefFieldPricingConfig  = "pricingConfig"
)

// SchemaDefinition is the author-side description of a schema, as an administrator saves it.
// Only the fields relevant to Type are read.
type SchemaDefinition struct {
	ID         string
	ItemID     string
	Type       SchemaType
	IsRequired bool
	Position   int

	// size_selection
	Sizes           []SizeOption
	DefaultOptionID string

	// half_and_half
	CombinationFee *Money

	// additional_toppings
	Toppings []Topping

	// additional_toppings and single_choice_options
	MinSelections *int
	MaxSelections *int
	AllowMultiple bool

	// single_choice_options and legacy option lists
	Options []PricedOption

	Pricing PricingConfig
}

// Validate enforces the author-time invariants. The first violation is returned as a
// *SchemaDefinitionError.
func (d SchemaDefinition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return definitionError(d.ID, DefFieldID, ErrEmptySchemaID)
	}
	if strings.TrimSpace(d.ItemID) == "" {
		return definitionError(d.ID, DefFieldItemID, ErrEmptySchemaItemID)
	}
	if !d.Type.IsKnown() {
		return definitionError(d.ID, DefFieldType, ErrUnknownSchemaType)
	}
	for id, p := range d.Pricing.Entries() {
		if p.IsNegative() {
			return definitionError(d.ID, DefFieldPricingConfig+"."+id, ErrNegativePrice)
		}
	}

	switch d.Type {
	case SchemaTypeSizeSelection:
		return d.validateSizes()
	case SchemaTypeHalfAndHalf:
		if d.CombinationFee != nil && d.CombinationFee.IsNegative() {
			return definitionError(d.ID, DefFieldCombinationFee, ErrNegativeCombinationFee)
		}
	case SchemaTypeAdditionalToppings:
		return d.validateToppings()
	case SchemaTypeSingleChoiceOptions:
		return d.validateSingleChoice()
	}
	return nil
}

func (d SchemaDefinition) validateSizes() error {
	seen := make(map[string]bool, len(d.Sizes))
	for _, sz := range d.Sizes {
		if err := d.checkOptionID(DefFieldSizes, sz.ID, seen); err != nil {
			return err
		}
		if sz.PriceModifier != nil && sz.PriceModifier.IsNegative() {
			return definitionError(d.ID, DefFieldSizes, ErrNegativePrice)
		}
	}
	if d.DefaultOptionID != "" && !seen[d.DefaultOptionID] {
		return definitionError(d.ID, DefFieldDefaultOption, ErrUnknownDefaultOption)
	}
	return nil
}

func (d SchemaDefinition) validateToppings() error {
	seen := make(map[string]bool, len(d.Toppings))
	for _, t := range d.Toppings {
		if err := d.checkOptionID(DefFieldToppings, t.ID, seen); err != nil {
			return err
		}
	}

	if d.MaxSelections == nil {
		return definitionError(d.ID, DefFieldMaxSelections, ErrMaxSelectionsRequired)
	}
	maxSel := *d.MaxSelections
	minSel := 0
	if d.MinSelections != nil {
		minSel = *d.MinSelections
	}
	if minSel < 0 {
		return definitionError(d.ID, DefFieldMinSelections, ErrNegativeSelectionLimit)
	}
	if maxSel < 0 {
		return definitionError(d.ID, DefFieldMaxSelections, ErrNegativeSelectionLimit)
	}
	if maxSel < 1 {
		return definitionError(d.ID, DefFieldMaxSelections, ErrMaxSelectionsTooLow)
	}
	if minSel > maxSel {
		return definitionError(d.ID, DefFieldMinSelections, ErrMinAboveMax)
	}
	if (maxSel == 1) == d.AllowMultiple {
		return definitionError(d.ID, DefFieldAllowMultiple, ErrAllowMultipleMismatch)
	}
	return nil
}

func (d SchemaDefinition) validateSingleChoice() error {
	seen := make(map[string]bool, len(d.Options))
	for _, o := range d.Options {
		if err := d.checkOptionID(DefFieldOptions, o.ID, seen); err != nil {
			return err
		}
		if o.Price != nil && o.Price.IsNegative() {
			return definitionError(d.ID, DefFieldOptions, ErrNegativePrice)
		}
	}
	if d.MaxSelections != nil && *d.MaxSelections != 1 {
		return definitionError(d.ID, DefFieldMaxSelections, ErrSingleChoiceMax)
	}
	if d.AllowMultiple {
		return definitionError(d.ID, DefFieldAllowMultiple, ErrSingleChoiceMultiple)
	}
	return nil
}

func (d SchemaDefinition) checkOptionID(field, id string, seen map[string]bool) error {
	if strings.TrimSpace(id) == "" {
		return definitionError(d.ID, field, ErrEmptyOptionID)
	}
	if seen[id] {
		return definitionError(d.ID, field, ErrDuplicateOptionID)
	}
	seen[id] = true
	return nil
}

// Normalized returns the definition with the fixed characteristics of its type applied:
// single choice options always carry maxSelections=1 and allowMultiple=false.
func (d SchemaDefinition) Normalized() SchemaDefinition {
	out := d
	out.ID = strings.TrimSpace(d.ID)
	out.ItemID = strings.TrimSpace(d.ItemID)
	if d.Type == SchemaTypeSingleChoiceOptions {
		one := 1
		out.MaxSelections = &one
		out.MinSelections = nil
		out.AllowMultiple = false
	}
	return out
}

// Build turns the definition into the engine's view. It performs no validation, so
// stored schemas that predate an invariant still load. Unknown types without an options
// list yield nil and are skipped by the engine.
func (d SchemaDefinition) Build(active bool) Schema {
	base := schemaBase{
		id:       d.ID,
		itemID:   d.ItemID,
		required: d.IsRequired,
		active:   active,
		pricing:  d.Pricing,
	}

	switch d.Type {
	case SchemaTypeSizeSelection:
		return &SizeSelection{
			schemaBase:      base,
			sizes:           append([]SizeOption(nil), d.Sizes...),
			defaultOptionID: d.DefaultOptionID,
		}
	case SchemaTypeHalfAndHalf:
		return &HalfAndHalf{schemaBase: base, combinationFee: d.CombinationFee}
	case SchemaTypeAdditionalToppings:
		return &AdditionalToppings{
			schemaBase:    base,
			toppings:      append([]Topping(nil), d.Toppings...),
			minSelections: copyInt(d.MinSelections),
			maxSelections: copyInt(d.MaxSelections),
			allowMultiple: d.AllowMultiple,
		}
	case SchemaTypeSingleChoiceOptions:
		return &SingleChoiceOptions{
			schemaBase: base,
			options:    append([]PricedOption(nil), d.Options...),
		}
	}

	if len(d.Options) == 0 {
		return nil
	}
	return &OptionList{
		schemaBase: base,
		schemaType: d.Type,
		options:    append([]PricedOption(nil), d.Options...),
	}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
