package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	ribeira    = Point{Latitude: 41.1579, Longitude: -8.6291}
	cityPark   = Point{Latitude: 41.1621, Longitude: -8.6471}
	foz        = Point{Latitude: 41.1731, Longitude: -8.6774}
	riverfront = Point{Latitude: 41.1592, Longitude: -8.6238}
)

func TestHaversineKmPortoLandmarks(t *testing.T) {
	// Ribeira to Parque da Cidade area, roughly 1.6 km apart.
	d := HaversineKm(ribeira, cityPark)
	assert.InDelta(t, 1.6, d, 0.05)
}

func TestHaversineKmIdentity(t *testing.T) {
	for _, p := range []Point{ribeira, cityPark, foz, {0, 0}, {-90, 180}} {
		assert.Zero(t, HaversineKm(p, p))
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	pairs := [][2]Point{
		{ribeira, cityPark},
		{foz, riverfront},
		{{0, 0}, {10, 10}},
		{{-45, -170}, {45, 170}},
	}
	for _, pair := range pairs {
		assert.Equal(t, HaversineKm(pair[0], pair[1]), HaversineKm(pair[1], pair[0]))
	}
}

func TestHaversineKmTriangleInequality(t *testing.T) {
	a, b, c := ribeira, cityPark, foz
	ab := HaversineKm(a, b)
	bc := HaversineKm(b, c)
	ac := HaversineKm(a, c)
	assert.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestPointValid(t *testing.T) {
	cases := []struct {
		point Point
		valid bool
	}{
		{Point{41.1579, -8.6291}, true},
		{Point{90, 180}, true},
		{Point{-90, -180}, true},
		{Point{90.001, 0}, false},
		{Point{-90.001, 0}, false},
		{Point{0, 180.5}, false},
		{Point{0, -181}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, c.point.Valid(), "point %+v", c.point)
	}
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 2.34, RoundKm(2.344999))
	assert.Equal(t, 2.35, RoundKm(2.345001))
	assert.Equal(t, 0.0, RoundKm(0))
}
