package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
)

func TestValidate_CardinalityBoundary(t *testing.T) {
	a := item("pizza-a", 185000)
	schemas := []domain.Schema{toppings("pizza-a", intPtr(1), intPtr(3), nil)}
	v := NewSelectionValidator()

	cases := []struct {
		ids  []string
		want []domain.ValidationErrorKind
	}{
		{nil, []domain.ValidationErrorKind{domain.BelowMinimumSelections}},
		{[]string{"olives"}, nil},
		{[]string{"olives", "ham", "corn"}, nil},
		{[]string{"olives", "ham", "corn", "onion"}, []domain.ValidationErrorKind{domain.AboveMaximumSelections}},
	}
	for _, tc := range cases {
		st := domain.NewSelectionStateFor(schemas)
		st.SetSelection("toppings", domain.KeyToppings, domain.Set(tc.ids...))

		errs := v.Validate(a, schemas, st)
		if tc.want == nil {
			assert.Nil(t, errs, "selection %v", tc.ids)
			continue
		}
		assert.Equal(t, tc.want, errs.Kinds(), "selection %v", tc.ids)
	}
}

func TestValidate_RequiredToppingsReportsMissingFirst(t *testing.T) {
	def := domain.SchemaDefinition{ID: "toppings", ItemID: "pizza-a", Type: domain.SchemaTypeAdditionalToppings,
		IsRequired: true, MinSelections: intPtr(1), MaxSelections: intPtr(3), AllowMultiple: true}
	schemas := []domain.Schema{def.Build(true)}

	errs := NewSelectionValidator().Validate(item("pizza-a", 1), schemas, domain.NewSelectionStateFor(schemas))
	assert.Equal(t, []domain.ValidationErrorKind{domain.MissingRequiredSelection}, errs.Kinds())
}

func TestValidate_SingleSelectToppingsCount(t *testing.T) {
	schemas := []domain.Schema{toppings("pizza-a", nil, intPtr(1), nil)}
	st := domain.NewSelectionStateFor(schemas)
	st.SetSelection("toppings", domain.KeyToppings, domain.Single("olives"))

	assert.Nil(t, NewSelectionValidator().Validate(item("pizza-a", 1), schemas, st))
}

func TestValidate_SelfCombinationRejected(t *testing.T) {
	a := item("pizza-a", 185000)
	schemas := []domain.Schema{
		halfAndHalf("pizza-a"),
		toppings("pizza-a", nil, intPtr(3), nil),
	}
	st := domain.NewSelectionStateFor(schemas)
	st.SetOrderMode("hh", domain.OrderModeHalfAndHalf)
	st.SetSecondItem("hh", "pizza-a")
	st.Toggle("toppings", domain.KeyToppings, "olives")

	errs := NewSelectionValidator().Validate(a, schemas, st)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.SelfCombinationNotAllowed, errs[0].Kind)
	assert.Equal(t, "hh", errs[0].SchemaID)
}

func TestValidate_HalfAndHalfRules(t *testing.T) {
	a := item("pizza-a", 185000)
	required := domain.SchemaDefinition{ID: "hh", ItemID: "pizza-a", Type: domain.SchemaTypeHalfAndHalf,
		IsRequired: true}.Build(true)
	schemas := []domain.Schema{required}
	v := NewSelectionValidator()

	st := domain.NewSelectionStateFor(schemas)
	assert.Equal(t, []domain.ValidationErrorKind{domain.MissingRequiredSelection}, v.Validate(a, schemas, st).Kinds())

	st.SetOrderMode("hh", domain.OrderModeHalfAndHalf)
	assert.Equal(t, []domain.ValidationErrorKind{domain.MissingSecondFlavor}, v.Validate(a, schemas, st).Kinds())

	st.SetSecondItem("hh", "pizza-b")
	assert.Nil(t, v.Validate(a, schemas, st))
}

func TestValidate_ReportsEverySchema(t *testing.T) {
	a := item("pizza-a", 250000)
	size := domain.SchemaDefinition{ID: "size", ItemID: "pizza-a", Type: domain.SchemaTypeSizeSelection,
		IsRequired: true, Sizes: []domain.SizeOption{{ID: "16cm"}, {ID: "20cm"}}}.Build(true)
	drink := domain.SchemaDefinition{ID: "drink", ItemID: "pizza-a", Type: domain.SchemaTypeSingleChoiceOptions,
		IsRequired: true, Options: []domain.PricedOption{{ID: "cola"}}}.Build(true)
	schemas := []domain.Schema{size, drink}

	errs := NewSelectionValidator().Validate(a, schemas, domain.NewSelectionStateFor(schemas))
	require.Len(t, errs, 2)
	assert.Equal(t, "size", errs[0].SchemaID)
	assert.Equal(t, "drink", errs[1].SchemaID)
	assert.Equal(t, []domain.ValidationErrorKind{
		domain.MissingRequiredSelection, domain.MissingRequiredSelection,
	}, errs.Kinds())
}

func TestValidate_InactiveRequiredSchemaIgnored(t *testing.T) {
	size := domain.SchemaDefinition{ID: "size", ItemID: "pizza-a", Type: domain.SchemaTypeSizeSelection,
		IsRequired: true}.Build(false)

	assert.Nil(t, NewSelectionValidator().Validate(item("pizza-a", 1), []domain.Schema{size}, nil))
}
