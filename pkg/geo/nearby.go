package geo

import (
	"errors"
	"sort"
)

// ErrInvalidOrigin is returned when a query origin is outside coordinate bounds.
var ErrInvalidOrigin = errors.New("geo: origin coordinates out of range")

// Locatable is implemented by any record carrying a coordinate pair.
type Locatable interface {
	GeoPoint() Point
}

// Result annotates a candidate with its distance from the query origin.
// The annotation lives on the result only; the source record is untouched.
type Result[T Locatable] struct {
	Record     T
	DistanceKm float64
}

// Nearby filters candidates to those within radiusKm of origin (boundary
// inclusive) and returns them sorted ascending by distance. Ties keep input
// order. An empty candidate set or empty result is valid and yields an
// empty, non-nil slice.
func Nearby[T Locatable](candidates []T, origin Point, radiusKm float64) ([]Result[T], error) {
	if !origin.Valid() {
		return nil, ErrInvalidOrigin
	}
	results := make([]Result[T], 0, len(candidates))
	for _, c := range candidates {
		d := HaversineKm(origin, c.GeoPoint())
		if d <= radiusKm {
			results = append(results, Result[T]{Record: c, DistanceKm: d})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}
