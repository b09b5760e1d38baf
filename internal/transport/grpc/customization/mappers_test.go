package customization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapUpdateRequest_Position(t *testing.T) {
	tests := []struct {
		name     string
		in       fields
		keep     bool
		position int
	}{
		{"absent keeps stored", fields{"type": "half_and_half"}, true, 0},
		{"explicit zero", fields{"type": "half_and_half", "position": float64(0)}, false, 0},
		{"explicit value", fields{"type": "half_and_half", "position": float64(7)}, false, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := mapUpdateRequest("hh", tc.in)
			require.NoError(t, err)
			assert.Equal(t, "hh", req.SchemaID)
			assert.Equal(t, tc.keep, req.KeepPosition)
			assert.Equal(t, tc.position, req.Definition.Position)
		})
	}
}
