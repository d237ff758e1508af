package generator

import (
	"math/rand"
	"testing"

	seederrors "booking-demo-seeder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleIDs(t *testing.T) {
	pool := []int64{10, 20, 30, 40, 50, 60}

	t.Run("sample of full pool uses every member exactly once", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		got, err := sampleIDs(r, "team member", pool, len(pool))
		require.NoError(t, err)
		require.Len(t, got, len(pool))

		seen := make(map[int64]int)
		for _, id := range got {
			seen[id]++
		}
		for _, id := range pool {
			assert.Equal(t, 1, seen[id], "id %d should appear exactly once", id)
		}
	})

	t.Run("sample larger than pool fails loudly", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		got, err := sampleIDs(r, "team member", pool[:5], 6)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, seederrors.IsPoolTooSmall(err))
		assert.Contains(t, err.Error(), "requested 6, available 5")
	})

	t.Run("no duplicates in partial sample", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			got, err := sampleIDs(r, "event attendee", pool, 4)
			require.NoError(t, err)
			seen := make(map[int64]bool)
			for _, id := range got {
				assert.False(t, seen[id], "duplicate id %d in sample", id)
				seen[id] = true
				assert.Contains(t, pool, id)
			}
		}
	})

	t.Run("same seed reproduces the same sequence", func(t *testing.T) {
		a := rand.New(rand.NewSource(42))
		b := rand.New(rand.NewSource(42))
		for i := 0; i < 10; i++ {
			gotA, err := sampleIDs(a, "team member", pool, 3)
			require.NoError(t, err)
			gotB, err := sampleIDs(b, "team member", pool, 3)
			require.NoError(t, err)
			assert.Equal(t, gotA, gotB)
		}
	})
}
