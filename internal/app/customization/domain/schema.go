package domain

// SchemaType discriminates the customization axes a catalog item can carry.
type SchemaType string

const (
	SchemaTypeSizeSelection       SchemaType = "size_selection"
	SchemaTypeHalfAndHalf         SchemaType = "half_and_half"
	SchemaTypeAdditionalToppings  SchemaType = "additional_toppings"
	SchemaTypeSingleChoiceOptions SchemaType = "single_choice_options"
)

// IsKnown reports whether t is one of the four first-class schema types.
func (t SchemaType) IsKnown() bool {
	switch t {
	case SchemaTypeSizeSelection, SchemaTypeHalfAndHalf,
		SchemaTypeAdditionalToppings, SchemaTypeSingleChoiceOptions:
		return true
	}
	return false
}

// Schema is one customization axis attached to a catalog item. The set of implementations
// is closed: *SizeSelection, *HalfAndHalf, *AdditionalToppings, *SingleChoiceOptions and
// *OptionList (legacy types carrying a generic options list). Callers switch on the
// concrete type.
type Schema interface {
	ID() string
	ItemID() string
	Type() SchemaType
	IsRequired() bool
	IsActive() bool
	Pricing() PricingConfig
	sealed()
}

type schemaBase struct {
	id       string
	itemID   string
	required bool
	active   bool
	pricing  PricingConfig
}

func (b *schemaBase) ID() string             { return b.id }
func (b *schemaBase) ItemID() string         { return b.itemID }
func (b *schemaBase) IsRequired() bool       { return b.required }
func (b *schemaBase) IsActive() bool         { return b.active }
func (b *schemaBase) Pricing() PricingConfig { return b.pricing }
func (b *schemaBase) sealed()                {}

// SizeOption is one size tier.
type SizeOption struct {
	ID            string
	Name          string
	PriceModifier *Money
}

// Topping is one selectable topping. Its price lives in the schema's PricingConfig.
type Topping struct {
	ID   string
	Name string
}

// PricedOption is an option carrying an embedded fallback price.
type PricedOption struct {
	ID    string
	Name  string
	Price *Money
}

// SizeSelection lets the customer pick one size tier.
type SizeSelection struct {
	schemaBase
	sizes           []SizeOption
	defaultOptionID string
}

func (s *SizeSelection) Type() SchemaType { return SchemaTypeSizeSelection }

// Sizes returns the size tiers in display order.
func (s *SizeSelection) Sizes() []SizeOption {
	return append([]SizeOption(nil), s.sizes...)
}

// DefaultOptionID returns the explicitly declared default size, or "".
func (s *SizeSelection) DefaultOptionID() string { return s.defaultOptionID }

// Size returns the tier with the given id.
func (s *SizeSelection) Size(id string) (SizeOption, bool) {
	for _, sz := range s.sizes {
		if sz.ID == id {
			return sz, true
		}
	}
	return SizeOption{}, false
}

// HalfAndHalf lets the customer combine this item with a second flavour.
type HalfAndHalf struct {
	schemaBase
	combinationFee *Money
}

func (s *HalfAndHalf) Type() SchemaType { return SchemaTypeHalfAndHalf }

// CombinationFee resolves the fee: pricing config override, then the configured fee,
// then DefaultCombinationFee. Zero values fall through.
func (s *HalfAndHalf) CombinationFee() *Money {
	if fee, ok := s.pricing.Lookup(HalfAndHalfFeeKey); ok {
		return fee
	}
	if s.combinationFee != nil && !s.combinationFee.IsZero() {
		return s.combinationFee
	}
	return DefaultCombinationFee
}

// AdditionalToppings is a multi-select (or, with maxSelections=1, single-select) topping list.
type AdditionalToppings struct {
	schemaBase
	toppings      []Topping
	minSelections *int
	maxSelections *int
	allowMultiple bool
}

func (s *AdditionalToppings) Type() SchemaType { return SchemaTypeAdditionalToppings }

// Toppings returns the toppings in display order.
func (s *AdditionalToppings) Toppings() []Topping {
	return append([]Topping(nil), s.toppings...)
}

// MinSelections returns the lower bound, if defined.
func (s *AdditionalToppings) MinSelections() (int, bool) {
	if s.minSelections == nil {
		return 0, false
	}
	return *s.minSelections, true
}

// MaxSelections returns the upper bound, if defined.
func (s *AdditionalToppings) MaxSelections() (int, bool) {
	if s.maxSelections == nil {
		return 0, false
	}
	return *s.maxSelections, true
}

// SingleSelect reports whether exactly one topping may be chosen.
func (s *AdditionalToppings) SingleSelect() bool {
	return s.maxSelections != nil && *s.maxSelections == 1
}

// AllowMultiple mirrors the stored flag.
func (s *AdditionalToppings) AllowMultiple() bool { return s.allowMultiple }

// SingleChoiceOptions lets the customer pick at most one add-on.
type SingleChoiceOptions struct {
	schemaBase
	options []PricedOption
}

func (s *SingleChoiceOptions) Type() SchemaType { return SchemaTypeSingleChoiceOptions }

// Options returns the options in display order.
func (s *SingleChoiceOptions) Options() []PricedOption {
	return append([]PricedOption(nil), s.options...)
}

// Option returns the option with the given id.
func (s *SingleChoiceOptions) Option(id string) (PricedOption, bool) {
	return findOption(s.options, id)
}

// OptionList is a legacy or extra schema type that only carries a generic options list.
// Every selected option contributes its configured or embedded price.
type OptionList struct {
	schemaBase
	schemaType SchemaType
	options    []PricedOption
}

func (s *OptionList) Type() SchemaType { return s.schemaType }

// Options returns the options in display order.
func (s *OptionList) Options() []PricedOption {
	return append([]PricedOption(nil), s.options...)
}

// Option returns the option with the given id.
func (s *OptionList) Option(id string) (PricedOption, bool) {
	return findOption(s.options, id)
}

func findOption(options []PricedOption, id string) (PricedOption, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return PricedOption{}, false
}

// ActiveSchemas drops nil and inactive schemas, keeping order.
func ActiveSchemas(schemas []Schema) []Schema {
	out := make([]Schema, 0, len(schemas))
	for _, s := range schemas {
		if s == nil || !s.IsActive() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FindSchema returns the schema with the given id.
func FindSchema(schemas []Schema, id string) (Schema, bool) {
	for _, s := range schemas {
		if s != nil && s.ID() == id {
			return s, true
		}
	}
	return nil, false
}
