package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRating(t *testing.T) {
	got, err := ApplyRating(Rating{Mean: 4.0, Total: 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
	assert.InDelta(t, 4.3333, got.Mean, 0.0001)
}

func TestApplyRatingFirstRating(t *testing.T) {
	got, err := ApplyRating(Rating{}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Total)
	assert.Equal(t, 3.0, got.Mean)
}

func TestApplyRatingOutOfRange(t *testing.T) {
	for _, v := range []int{0, 6, -1, 100} {
		_, err := ApplyRating(Rating{Mean: 3, Total: 1}, v)
		assert.ErrorIs(t, err, ErrRatingOutOfRange, "value %d", v)
	}
}

func TestApplyRatingTotalMonotonic(t *testing.T) {
	cur := Rating{}
	for i, v := range []int{5, 1, 3, 4, 2, 5, 5} {
		next, err := ApplyRating(cur, v)
		require.NoError(t, err)
		assert.Equal(t, cur.Total+1, next.Total)
		if cur.Total > 0 && float64(v) != cur.Mean {
			// New mean lands strictly between old mean and the new value.
			lo, hi := cur.Mean, float64(v)
			if lo > hi {
				lo, hi = hi, lo
			}
			assert.Greater(t, next.Mean, lo, "step %d", i)
			assert.Less(t, next.Mean, hi, "step %d", i)
		}
		cur = next
	}
}
