package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweepRepo struct {
	cutoffs []time.Time
	flipped int64
	err     error
}

func (f *fakeSweepRepo) SweepExpired(cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.flipped, f.err
}

func TestSweepOnceCutoffs(t *testing.T) {
	checkIns := &fakeSweepRepo{flipped: 2}
	alerts := &fakeSweepRepo{flipped: 1}
	s := NewSweeper(checkIns, alerts, time.Minute, logrus.New())

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	s.SweepOnce()

	require.Len(t, checkIns.cutoffs, 1)
	assert.Equal(t, now.Add(-4*time.Hour), checkIns.cutoffs[0])
	require.Len(t, alerts.cutoffs, 1)
	assert.Equal(t, now.Add(-7*24*time.Hour), alerts.cutoffs[0])
}

func TestSweepOnceContinuesPastErrors(t *testing.T) {
	checkIns := &fakeSweepRepo{err: errors.New("db down")}
	alerts := &fakeSweepRepo{flipped: 3}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := NewSweeper(checkIns, alerts, time.Minute, logger)
	s.SweepOnce()

	// The alert pass still runs after a check-in sweep failure.
	assert.Len(t, alerts.cutoffs, 1)
}
