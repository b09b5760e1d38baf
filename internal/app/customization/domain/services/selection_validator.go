package services

import (
	"fmt"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
)

// SelectionValidator checks a customer's selections against each schema's constraints
// before a line can be committed. Every schema is checked; within one schema only the first
// violated rule is reported.
type SelectionValidator struct{}

// NewSelectionValidator creates a new SelectionValidator instance.
func NewSelectionValidator() *SelectionValidator {
	return &SelectionValidator{}
}

// Validate returns nil when the selection can be committed. Inactive schemas are ignored.
func (v *SelectionValidator) Validate(
	item *domain.CatalogItem,
	schemas []domain.Schema,
	state *domain.SelectionState,
) domain.ValidationErrors {
	if state == nil {
		state = domain.NewSelectionState()
	}

	var errs domain.ValidationErrors
	for _, s := range domain.ActiveSchemas(schemas) {
		if err := v.validateSchema(item, s, state.Get(s.ID())); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *SelectionValidator) validateSchema(
	item *domain.CatalogItem,
	s domain.Schema,
	sel domain.SchemaSelection,
) *domain.ValidationError {
	switch sc := s.(type) {
	case *domain.SizeSelection:
		if sc.IsRequired() && sel.Value(domain.KeySize).IsEmpty() {
			return violation(sc, domain.MissingRequiredSelection, "please choose a size")
		}

	case *domain.HalfAndHalf:
		mode := sel.OrderMode()
		if sc.IsRequired() && mode == domain.OrderModeWhole {
			return violation(sc, domain.MissingRequiredSelection, "please choose how to order this item")
		}
		if mode != domain.OrderModeHalfAndHalf {
			return nil
		}
		second := sel.SecondItemID()
		if second == "" {
			return violation(sc, domain.MissingSecondFlavor, "please choose the second flavour")
		}
		if item != nil && second == item.ID() {
			return violation(sc, domain.SelfCombinationNotAllowed, "an item cannot be combined with itself")
		}

	case *domain.AdditionalToppings:
		count := sel.Value(domain.KeyToppings).Count()
		if sc.IsRequired() && count == 0 {
			return violation(sc, domain.MissingRequiredSelection, "please choose at least one topping")
		}
		if minSel, ok := sc.MinSelections(); ok && count < minSel {
			return violation(sc, domain.BelowMinimumSelections,
				fmt.Sprintf("please choose at least %d toppings", minSel))
		}
		if maxSel, ok := sc.MaxSelections(); ok && count > maxSel {
			return violation(sc, domain.AboveMaximumSelections,
				fmt.Sprintf("please choose at most %d toppings", maxSel))
		}

	case *domain.SingleChoiceOptions:
		if sc.IsRequired() && sel.Value(domain.KeySelectedOption).IsEmpty() {
			return violation(sc, domain.MissingRequiredSelection, "please choose an option")
		}
	}
	return nil
}

func violation(s domain.Schema, kind domain.ValidationErrorKind, msg string) *domain.ValidationError {
	return &domain.ValidationError{SchemaID: s.ID(), Kind: kind, Message: msg}
}
