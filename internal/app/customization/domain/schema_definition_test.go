package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func toppingsDef(minSel, maxSel *int, allowMultiple bool) SchemaDefinition {
	return SchemaDefinition{
		ID:            "sch-toppings",
		ItemID:        "pizza-margherita",
		Type:          SchemaTypeAdditionalToppings,
		Toppings:      []Topping{{ID: "olives"}, {ID: "mushrooms"}, {ID: "ham"}, {ID: "corn"}},
		MinSelections: minSel,
		MaxSelections: maxSel,
		AllowMultiple: allowMultiple,
	}
}

func TestSchemaDefinition_Validate(t *testing.T) {
	cases := []struct {
		name  string
		def   SchemaDefinition
		want  error
		field string
	}{
		{
			name:  "missing id",
			def:   SchemaDefinition{ItemID: "i", Type: SchemaTypeHalfAndHalf},
			want:  ErrEmptySchemaID,
			field: DefFieldID,
		},
		{
			name:  "missing item",
			def:   SchemaDefinition{ID: "s", Type: SchemaTypeHalfAndHalf},
			want:  ErrEmptySchemaItemID,
			field: DefFieldItemID,
		},
		{
			name:  "unknown type",
			def:   SchemaDefinition{ID: "s", ItemID: "i", Type: "crust_style"},
			want:  ErrUnknownSchemaType,
			field: DefFieldType,
		},
		{
			name: "duplicate size",
			def: SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeSizeSelection,
				Sizes: []SizeOption{{ID: "16cm"}, {ID: "16cm"}}},
			want:  ErrDuplicateOptionID,
			field: DefFieldSizes,
		},
		{
			name: "unknown default size",
			def: SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeSizeSelection,
				Sizes: []SizeOption{{ID: "16cm"}}, DefaultOptionID: "30cm"},
			want:  ErrUnknownDefaultOption,
			field: DefFieldDefaultOption,
		},
		{
			name:  "toppings without max",
			def:   toppingsDef(nil, nil, true),
			want:  ErrMaxSelectionsRequired,
			field: DefFieldMaxSelections,
		},
		{
			name:  "toppings max zero",
			def:   toppingsDef(nil, intPtr(0), true),
			want:  ErrMaxSelectionsTooLow,
			field: DefFieldMaxSelections,
		},
		{
			name:  "toppings min above max",
			def:   toppingsDef(intPtr(4), intPtr(3), true),
			want:  ErrMinAboveMax,
			field: DefFieldMinSelections,
		},
		{
			name:  "toppings single select allowing multiple",
			def:   toppingsDef(nil, intPtr(1), true),
			want:  ErrAllowMultipleMismatch,
			field: DefFieldAllowMultiple,
		},
		{
			name:  "toppings multi select forbidding multiple",
			def:   toppingsDef(nil, intPtr(3), false),
			want:  ErrAllowMultipleMismatch,
			field: DefFieldAllowMultiple,
		},
		{
			name: "single choice with max 2",
			def: SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeSingleChoiceOptions,
				MaxSelections: intPtr(2)},
			want:  ErrSingleChoiceMax,
			field: DefFieldMaxSelections,
		},
		{
			name: "single choice allowing multiple",
			def: SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeSingleChoiceOptions,
				AllowMultiple: true},
			want:  ErrSingleChoiceMultiple,
			field: DefFieldAllowMultiple,
		},
		{
			name: "negative pricing entry",
			def: SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeHalfAndHalf,
				Pricing: NewPricingConfig(map[string]*Money{"halfAndHalfFee": NewMoneyFromInt(-1)})},
			want:  ErrNegativePrice,
			field: DefFieldPricingConfig + ".halfAndHalfFee",
		},
		{
			name: "negative combination fee",
			def: SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeHalfAndHalf,
				CombinationFee: NewMoneyFromInt(-10000)},
			want:  ErrNegativeCombinationFee,
			field: DefFieldCombinationFee,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.def.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrSchemaDefinition)

			var defErr *SchemaDefinitionError
			require.True(t, errors.As(err, &defErr))
			assert.Equal(t, tc.field, defErr.Field)
		})
	}
}

func TestSchemaDefinition_ValidAccepted(t *testing.T) {
	defs := []SchemaDefinition{
		toppingsDef(intPtr(1), intPtr(3), true),
		toppingsDef(nil, intPtr(1), false),
		{ID: "s", ItemID: "i", Type: SchemaTypeSingleChoiceOptions, MaxSelections: intPtr(1)},
		{ID: "s", ItemID: "i", Type: SchemaTypeHalfAndHalf},
		{ID: "s", ItemID: "i", Type: SchemaTypeSizeSelection,
			Sizes: []SizeOption{{ID: "16cm"}, {ID: "20cm"}}, DefaultOptionID: "16cm"},
	}
	for _, d := range defs {
		assert.NoError(t, d.Validate(), "definition %s of type %s", d.ID, d.Type)
	}
}

func TestSchemaDefinition_NormalizedFixesSingleChoice(t *testing.T) {
	def := SchemaDefinition{ID: " s ", ItemID: "i", Type: SchemaTypeSingleChoiceOptions, MinSelections: intPtr(0)}
	n := def.Normalized()

	assert.Equal(t, "s", n.ID)
	require.NotNil(t, n.MaxSelections)
	assert.Equal(t, 1, *n.MaxSelections)
	assert.Nil(t, n.MinSelections)
	assert.False(t, n.AllowMultiple)
}

func TestSchemaDefinition_Build(t *testing.T) {
	s := toppingsDef(intPtr(1), intPtr(3), true).Build(true)
	tp, ok := s.(*AdditionalToppings)
	require.True(t, ok)
	minSel, ok := tp.MinSelections()
	require.True(t, ok)
	assert.Equal(t, 1, minSel)
	assert.False(t, tp.SingleSelect())
	assert.True(t, tp.IsActive())

	legacy := SchemaDefinition{ID: "s", ItemID: "i", Type: "crust_style",
		Options: []PricedOption{{ID: "thin", Price: NewMoneyFromInt(5000)}}}
	ol, ok := legacy.Build(true).(*OptionList)
	require.True(t, ok)
	assert.Equal(t, SchemaType("crust_style"), ol.Type())

	assert.Nil(t, SchemaDefinition{ID: "s", ItemID: "i", Type: "crust_style"}.Build(true))
}

func TestHalfAndHalf_CombinationFeeFallback(t *testing.T) {
	def := SchemaDefinition{ID: "s", ItemID: "i", Type: SchemaTypeHalfAndHalf}
	hh := def.Build(true).(*HalfAndHalf)
	assert.True(t, hh.CombinationFee().Equals(NewMoneyFromInt(10000)))

	def.CombinationFee = NewMoneyFromInt(15000)
	hh = def.Build(true).(*HalfAndHalf)
	assert.True(t, hh.CombinationFee().Equals(NewMoneyFromInt(15000)))

	def.Pricing = NewPricingConfig(map[string]*Money{HalfAndHalfFeeKey: NewMoneyFromInt(20000)})
	hh = def.Build(true).(*HalfAndHalf)
	assert.True(t, hh.CombinationFee().Equals(NewMoneyFromInt(20000)))

	// zero falls through
	def.Pricing = NewPricingConfig(map[string]*Money{HalfAndHalfFeeKey: Zero()})
	def.CombinationFee = Zero()
	hh = def.Build(true).(*HalfAndHalf)
	assert.True(t, hh.CombinationFee().Equals(DefaultCombinationFee))
}
