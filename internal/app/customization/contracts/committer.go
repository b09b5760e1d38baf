package contracts

import (
	"context"

	commitplan "github.com/ristorante/customization-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. It keeps usecases
// independent of the Spanner driver.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
