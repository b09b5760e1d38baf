package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one use case so they are written in a single transaction.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends m. Nil mutations (nothing changed) are skipped.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// Extend appends every non-nil mutation in ms.
func (p *Plan) Extend(ms ...*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

func (p *Plan) IsEmpty() bool {
	return p.Len() == 0
}

func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
