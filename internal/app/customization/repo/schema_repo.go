package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
	"github.com/ristorante/customization-service/internal/models/m_schema"
)

// SchemaRepo is the Spanner implementation of the schema write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type SchemaRepo struct{}

func NewSchemaRepo() *SchemaRepo {
	return &SchemaRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(s *domain.CustomizationSchema) (map[string]interface{}, error) {
	def := s.Definition()

	configJSON, err := utils.EncodeSchemaConfig(def)
	if err != nil {
		return nil, err
	}
	pricingJSON, err := utils.EncodePricingConfig(def.Pricing)
	if err != nil {
		return nil, err
	}

	return m_schema.BuildInsertMap(def.ID, def.ItemID, string(def.Type), def.IsRequired,
		configJSON, pricingJSON, string(s.Status()), int64(def.Position),
		s.CreatedAt().UTC(), s.UpdatedAt().UTC()), nil
}

// buildUpdateValues collects the dirty columns. It returns nil when nothing changed.
func buildUpdateValues(s *domain.CustomizationSchema) (map[string]interface{}, error) {
	if s == nil || s.Changes() == nil || !s.Changes().HasChanges() {
		return nil, nil
	}

	def := s.Definition()
	updates := map[string]interface{}{}

	if s.Changes().Dirty(domain.FieldDefinition) {
		configJSON, err := utils.EncodeSchemaConfig(def)
		if err != nil {
			return nil, err
		}
		pricingJSON, err := utils.EncodePricingConfig(def.Pricing)
		if err != nil {
			return nil, err
		}
		updates[m_schema.ColConfigJSON] = configJSON
		if pricingJSON != nil {
			updates[m_schema.ColPricingConfigJSON] = *pricingJSON
		} else {
			updates[m_schema.ColPricingConfigJSON] = nil
		}
	}
	if s.Changes().Dirty(domain.FieldRequired) {
		updates[m_schema.ColIsRequired] = def.IsRequired
	}
	if s.Changes().Dirty(domain.FieldPosition) {
		updates[m_schema.ColPosition] = int64(def.Position)
	}
	if s.Changes().Dirty(domain.FieldStatus) {
		updates[m_schema.ColStatus] = string(s.Status())
	}

	if len(updates) == 0 {
		return nil, nil
	}
	updates[m_schema.ColUpdatedAt] = s.UpdatedAt().UTC()
	return updates, nil
}

// InsertMut builds an Insert mutation for a new schema.
func (r *SchemaRepo) InsertMut(s *domain.CustomizationSchema) (*spanner.Mutation, error) {
	values, err := buildInsertValues(s)
	if err != nil {
		return nil, err
	}
	return m_schema.InsertMutation(values), nil
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// It updates only dirty fields and always stamps updated_at when there are changes.
func (r *SchemaRepo) UpdateMut(s *domain.CustomizationSchema) (*spanner.Mutation, error) {
	updates, err := buildUpdateValues(s)
	if err != nil || updates == nil {
		return nil, err
	}
	return m_schema.UpdateMutation(s.ID(), updates), nil
}
