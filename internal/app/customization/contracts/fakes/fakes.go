// Package fakes holds in-memory implementations of the customization contracts for tests.
package fakes

import (
	"context"
	"sort"
	"sync"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
	commitplan "github.com/ristorante/customization-service/internal/pkg/committer"
)

// Store is an in-memory catalog and schema read model.
type Store struct {
	mu      sync.Mutex
	Items   map[string]*dto.CatalogItemDTO
	Schemas map[string]*dto.SchemaDTO
	Err     error

	schemaReads int
}

func NewStore() *Store {
	return &Store{
		Items:   make(map[string]*dto.CatalogItemDTO),
		Schemas: make(map[string]*dto.SchemaDTO),
	}
}

// PutItem adds an active catalog item priced in whole minor units.
func (s *Store) PutItem(id string, price int64) *dto.CatalogItemDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &dto.CatalogItemDTO{ItemID: id, Name: id, BasePriceNum: price, BasePriceDen: 1, Status: "active"}
	s.Items[id] = item
	return item
}

// PutSchema stores a schema row.
func (s *Store) PutSchema(d *dto.SchemaDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Schemas[d.SchemaID] = d
}

func (s *Store) GetCatalogItem(_ context.Context, itemID string) (*dto.CatalogItemDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	item, ok := s.Items[itemID]
	if !ok {
		return nil, domain.ErrCatalogItemNotFound
	}
	return item, nil
}

func (s *Store) GetCatalogItems(_ context.Context, itemIDs []string) ([]*dto.CatalogItemDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*dto.CatalogItemDTO
	for _, id := range itemIDs {
		if item, ok := s.Items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// SchemaReads reports how many times schema rows were listed.
func (s *Store) SchemaReads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schemaReads
}

func (s *Store) GetSchemasForItem(ctx context.Context, itemID string) ([]*dto.SchemaDTO, error) {
	return s.ListItemSchemas(ctx, itemID, false, 0, 0)
}

func (s *Store) GetSchema(_ context.Context, schemaID string) (*dto.SchemaDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	d, ok := s.Schemas[schemaID]
	if !ok {
		return nil, domain.ErrSchemaNotFound
	}
	return d, nil
}

func (s *Store) ListItemSchemas(_ context.Context, itemID string, includeInactive bool, limit, offset int) ([]*dto.SchemaDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemaReads++
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*dto.SchemaDTO
	for _, d := range s.Schemas {
		if d.ItemID != itemID {
			continue
		}
		if !includeInactive && d.Status != string(domain.SchemaStatusActive) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].SchemaID < out[j].SchemaID
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Committer records every applied plan.
type Committer struct {
	mu    sync.Mutex
	Plans []*commitplan.Plan
	Err   error
}

func (c *Committer) Apply(_ context.Context, plan *commitplan.Plan) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.Plans = append(c.Plans, plan)
	return nil
}

// Mutations returns the number of mutations in the last applied plan.
func (c *Committer) Mutations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Plans) == 0 {
		return 0
	}
	return len(c.Plans[len(c.Plans)-1].Mutations())
}
