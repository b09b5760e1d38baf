package domain

// Session is one customer's customization of one catalog item: the item and schema
// snapshots fetched once when the session opens, plus the in-progress selections.
type Session struct {
	item    *CatalogItem
	schemas []Schema
	state   *SelectionState
}

// NewSession opens a session over active schemas and initializes the selection state.
func NewSession(item *CatalogItem, schemas []Schema) *Session {
	active := ActiveSchemas(schemas)
	return &Session{
		item:    item,
		schemas: active,
		state:   NewSelectionStateFor(active),
	}
}

func (s *Session) Item() *CatalogItem {
	return s.item
}

// Schemas returns the active schemas in display order.
func (s *Session) Schemas() []Schema {
	return append([]Schema(nil), s.schemas...)
}

func (s *Session) State() *SelectionState {
	return s.state
}

// Reset discards every selection and restores the initial values.
func (s *Session) Reset() {
	s.state.Reset()
	s.state.Initialize(s.schemas)
}

// Cancel discards the selections. Nothing is committed by a cancelled session.
func (s *Session) Cancel() {
	s.state.Reset()
}
