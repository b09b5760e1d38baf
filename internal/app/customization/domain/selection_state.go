package domain

import (
	"sort"
	"strings"
)

// Selection keys used by the first-class schema types.
const (
	KeySize           = "size"
	KeyToppings       = "toppings"
	KeySelectedOption = "selectedOption"
	KeyOrderMode      = "orderMode"
	KeySecondItemID   = "secondItemId"
)

// OrderMode is the half-and-half mode of a schema selection.
type OrderMode string

const (
	OrderModeWhole       OrderMode = ""
	OrderModeHalfAndHalf OrderMode = "hh"
)

// SelectionValue is either a single id or a set of ids.
type SelectionValue struct {
	ids   []string
	multi bool
}

// Single returns a single-id value. An empty id means "nothing selected".
func Single(id string) SelectionValue {
	if id == "" {
		return SelectionValue{}
	}
	return SelectionValue{ids: []string{id}}
}

// Set returns a set value; empty and duplicate ids are dropped.
func Set(ids ...string) SelectionValue {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return SelectionValue{ids: out, multi: true}
}

// IDs returns the selected ids in insertion order.
func (v SelectionValue) IDs() []string {
	return append([]string(nil), v.ids...)
}

// Count is the set size, or 1/0 for a single value.
func (v SelectionValue) Count() int {
	return len(v.ids)
}

// IsEmpty reports whether nothing is selected.
func (v SelectionValue) IsEmpty() bool {
	return len(v.ids) == 0
}

// IsSet reports whether the value was created as a set.
func (v SelectionValue) IsSet() bool {
	return v.multi
}

// First returns the first selected id, or "".
func (v SelectionValue) First() string {
	if len(v.ids) == 0 {
		return ""
	}
	return v.ids[0]
}

// Contains reports whether id is selected.
func (v SelectionValue) Contains(id string) bool {
	for _, x := range v.ids {
		if x == id {
			return true
		}
	}
	return false
}

// Normalized renders the value for persistence: single ids as-is, sets sorted and comma-joined.
func (v SelectionValue) Normalized() string {
	if !v.multi {
		return v.First()
	}
	ids := v.IDs()
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// SchemaSelection is the in-progress choice for one schema.
type SchemaSelection struct {
	values       map[string]SelectionValue
	orderMode    OrderMode
	secondItemID string
}

// Value returns the value stored under key (empty when absent).
func (s SchemaSelection) Value(key string) SelectionValue {
	return s.values[key]
}

// Keys returns the stored keys in lexical order.
func (s SchemaSelection) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OrderMode returns the half-and-half mode.
func (s SchemaSelection) OrderMode() OrderMode {
	return s.orderMode
}

// SecondItemID returns the second flavour's item id.
func (s SchemaSelection) SecondItemID() string {
	return s.secondItemID
}

// SelectionState holds one customer's in-progress choices, keyed by schema id.
// It performs no validation. It is not safe for concurrent use; each customization
// session owns its own state.
type SelectionState struct {
	entries map[string]*SchemaSelection
}

// NewSelectionState returns an empty state.
func NewSelectionState() *SelectionState {
	return &SelectionState{entries: make(map[string]*SchemaSelection)}
}

// NewSelectionStateFor returns a state initialized for the given schemas.
func NewSelectionStateFor(schemas []Schema) *SelectionState {
	st := NewSelectionState()
	st.Initialize(schemas)
	return st
}

func (st *SelectionState) entry(schemaID string) *SchemaSelection {
	e, ok := st.entries[schemaID]
	if !ok {
		e = &SchemaSelection{values: make(map[string]SelectionValue)}
		st.entries[schemaID] = e
	}
	return e
}

// SetSelection overwrites the value stored under key. The orderMode and secondItemId keys
// are routed to the dedicated half-and-half fields.
func (st *SelectionState) SetSelection(schemaID, key string, value SelectionValue) {
	e := st.entry(schemaID)
	switch key {
	case KeyOrderMode:
		e.orderMode = OrderMode(value.First())
	case KeySecondItemID:
		e.secondItemID = value.First()
	default:
		e.values[key] = value
	}
}

// SetOrderMode sets the half-and-half mode for a schema.
func (st *SelectionState) SetOrderMode(schemaID string, mode OrderMode) {
	st.entry(schemaID).orderMode = mode
}

// SetSecondItem sets the second flavour for a half-and-half schema.
func (st *SelectionState) SetSecondItem(schemaID, itemID string) {
	st.entry(schemaID).secondItemID = itemID
}

// Toggle adds id to a set value under key, or removes it when already present.
func (st *SelectionState) Toggle(schemaID, key, id string) {
	cur := st.entry(schemaID).values[key]
	ids := make([]string, 0, cur.Count()+1)
	found := false
	for _, x := range cur.ids {
		if x == id {
			found = true
			continue
		}
		ids = append(ids, x)
	}
	if !found {
		ids = append(ids, id)
	}
	st.entry(schemaID).values[key] = Set(ids...)
}

// Get returns a copy of the selection for a schema.
func (st *SelectionState) Get(schemaID string) SchemaSelection {
	e, ok := st.entries[schemaID]
	if !ok {
		return SchemaSelection{}
	}
	values := make(map[string]SelectionValue, len(e.values))
	for k, v := range e.values {
		values[k] = SelectionValue{ids: v.IDs(), multi: v.multi}
	}
	return SchemaSelection{values: values, orderMode: e.orderMode, secondItemID: e.secondItemID}
}

// Reset clears all state.
func (st *SelectionState) Reset() {
	st.entries = make(map[string]*SchemaSelection)
}

// Initialize writes the initial value for every schema: sizes stay unselected unless the
// schema declares a default, toppings start as an empty set (or an empty single value when
// maxSelections is 1) and single choice options start unselected.
func (st *SelectionState) Initialize(schemas []Schema) {
	for _, s := range schemas {
		if s == nil {
			continue
		}
		switch sc := s.(type) {
		case *SizeSelection:
			if sc.DefaultOptionID() != "" {
				st.SetSelection(sc.ID(), KeySize, Single(sc.DefaultOptionID()))
			} else {
				st.SetSelection(sc.ID(), KeySize, SelectionValue{})
			}
		case *AdditionalToppings:
			if sc.SingleSelect() {
				st.SetSelection(sc.ID(), KeyToppings, Single(""))
			} else {
				st.SetSelection(sc.ID(), KeyToppings, Set())
			}
		case *SingleChoiceOptions:
			st.SetSelection(sc.ID(), KeySelectedOption, SelectionValue{})
		case *HalfAndHalf:
			st.SetOrderMode(sc.ID(), OrderModeWhole)
			st.SetSecondItem(sc.ID(), "")
		}
	}
}
