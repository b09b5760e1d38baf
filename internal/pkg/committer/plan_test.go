package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_SkipsNilMutations(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	plan.Extend(
		spanner.Insert("outbox_events", []string{"event_id"}, []interface{}{"e1"}),
		nil,
		spanner.Update("customization_schemas", []string{"schema_id"}, []interface{}{"s1"}),
	)

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 2, plan.Len())
	assert.Len(t, plan.Mutations(), 2)
}

func TestPlan_NilIsEmpty(t *testing.T) {
	var plan *Plan
	assert.True(t, plan.IsEmpty())
	assert.Equal(t, 0, plan.Len())
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	require.NoError(t, a.Apply(context.Background(), NewPlan()))
	require.NoError(t, a.Apply(context.Background(), nil))
}

func TestAdapter_NilClient(t *testing.T) {
	plan := NewPlan()
	plan.Add(spanner.Insert("outbox_events", []string{"event_id"}, []interface{}{"e1"}))

	err := NewAdapter(nil).Apply(context.Background(), plan)
	assert.EqualError(t, err, "committer: spanner client is nil")
}
