package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spot struct {
	ID    string
	Point Point
}

func (s spot) GeoPoint() Point { return s.Point }

func TestNearbyInvalidOrigin(t *testing.T) {
	_, err := Nearby([]spot{{ID: "a", Point: ribeira}}, Point{Latitude: 91, Longitude: 0}, 5)
	assert.ErrorIs(t, err, ErrInvalidOrigin)

	_, err = Nearby([]spot{}, Point{Latitude: 0, Longitude: -200}, 5)
	assert.ErrorIs(t, err, ErrInvalidOrigin)
}

func TestNearbyFilterAndSort(t *testing.T) {
	candidates := []spot{
		{ID: "far", Point: foz},
		{ID: "here", Point: ribeira},
		{ID: "park", Point: cityPark},
	}
	results, err := Nearby(candidates, ribeira, 5)
	require.NoError(t, err)

	dFoz := HaversineKm(ribeira, foz)
	wantLen := 2
	if dFoz <= 5 {
		wantLen = 3
	}
	require.Len(t, results, wantLen)
	assert.Equal(t, "here", results[0].Record.ID)
	assert.Zero(t, results[0].DistanceKm)
	assert.Equal(t, "park", results[1].Record.ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].DistanceKm, results[i-1].DistanceKm)
	}
}

func TestNearbyRadiusBoundaryInclusive(t *testing.T) {
	edge := spot{ID: "edge", Point: cityPark}
	d := HaversineKm(ribeira, edge.Point)

	included, err := Nearby([]spot{edge}, ribeira, d)
	require.NoError(t, err)
	assert.Len(t, included, 1)

	excluded, err := Nearby([]spot{edge}, ribeira, d-1e-9)
	require.NoError(t, err)
	assert.Empty(t, excluded)
}

func TestNearbyTiesKeepInputOrder(t *testing.T) {
	// Two candidates at the same coordinates compute the same distance.
	candidates := []spot{
		{ID: "first", Point: cityPark},
		{ID: "second", Point: cityPark},
		{ID: "origin", Point: ribeira},
	}
	results, err := Nearby(candidates, ribeira, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "origin", results[0].Record.ID)
	assert.Equal(t, "first", results[1].Record.ID)
	assert.Equal(t, "second", results[2].Record.ID)
}

func TestNearbyEmptyInput(t *testing.T) {
	results, err := Nearby([]spot{}, ribeira, 5)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestNearbyDoesNotMutateCandidates(t *testing.T) {
	candidates := []spot{{ID: "a", Point: cityPark}}
	_, err := Nearby(candidates, ribeira, 100)
	require.NoError(t, err)
	assert.Equal(t, cityPark, candidates[0].Point)
	assert.Equal(t, "a", candidates[0].ID)
}
