// Unit tests for the seeded status catalog.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fettersdev/fetters/pkg/types"
)

func TestStatusSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// setupTestDB already seeded once; seed twice more.
	require.NoError(t, db.Statuses().Seed())
	require.NoError(t, db.Statuses().Seed())

	statuses, err := db.Statuses().All()
	require.NoError(t, err)
	require.Len(t, statuses, len(types.DefaultStatuses))
	for i, st := range statuses {
		assert.Equal(t, types.DefaultStatuses[i], st.Name)
	}
}

func TestStatusGet(t *testing.T) {
	db := setupTestDB(t)

	statuses, err := db.Statuses().All()
	require.NoError(t, err)
	require.NotEmpty(t, statuses)

	got, err := db.Statuses().Get(statuses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, statuses[0], *got)
}
