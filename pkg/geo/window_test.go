package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age     time.Duration
		horizon time.Duration
		want    bool
	}{
		{3 * time.Hour, 4 * time.Hour, true},
		{5 * time.Hour, 4 * time.Hour, false},
		{4 * time.Hour, 4 * time.Hour, true}, // boundary is inclusive
		{0, 4 * time.Hour, true},
		{25 * time.Hour, 24 * time.Hour, false},
		{23 * time.Hour, 24 * time.Hour, true},
	}
	for _, c := range cases {
		got := WithinWindow(now.Add(-c.age), c.horizon, now)
		assert.Equal(t, c.want, got, "age=%s horizon=%s", c.age, c.horizon)
	}
}

func TestCutoffMatchesWithinWindow(t *testing.T) {
	now := time.Now()
	horizon := 4 * time.Hour
	cutoff := Cutoff(horizon, now)

	inside := now.Add(-3 * time.Hour)
	outside := now.Add(-5 * time.Hour)
	assert.True(t, inside.After(cutoff))
	assert.True(t, WithinWindow(inside, horizon, now))
	assert.True(t, outside.Before(cutoff))
	assert.False(t, WithinWindow(outside, horizon, now))
}
