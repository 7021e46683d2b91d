package service

import (
	"context"
	"time"

	"spotline/internal/domain"
	"spotline/pkg/geo"

	"github.com/sirupsen/logrus"
)

// checkInSweeper and alertSweeper are the two repository methods the sweep
// needs; narrow interfaces keep the worker testable without a database.
type checkInSweeper interface {
	SweepExpired(cutoff time.Time) (int64, error)
}

type alertSweeper interface {
	SweepExpired(cutoff time.Time) (int64, error)
}

// Sweeper periodically deactivates expired check-ins (4h horizon) and alerts
// (7 day retention). Read paths apply the same windows at query time, so a
// record can be logically expired before a pass flips its flag; the sweep
// only bounds how long the stale active flag survives.
type Sweeper struct {
	checkIns checkInSweeper
	alerts   alertSweeper
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

func NewSweeper(checkIns checkInSweeper, alerts alertSweeper, interval time.Duration, logger *logrus.Logger) *Sweeper {
	return &Sweeper{
		checkIns: checkIns,
		alerts:   alerts,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.SweepOnce()
	tick := time.NewTicker(s.interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			s.SweepOnce()
		}
	}
}

// SweepOnce runs a single deactivation pass over both record kinds.
func (s *Sweeper) SweepOnce() {
	now := s.now()

	checkIns, err := s.checkIns.SweepExpired(geo.Cutoff(domain.CheckInHorizon, now))
	if err != nil {
		s.logger.WithError(err).Error("check-in sweep failed")
	}

	alerts, err := s.alerts.SweepExpired(geo.Cutoff(domain.AlertRetention, now))
	if err != nil {
		s.logger.WithError(err).Error("alert sweep failed")
	}

	if checkIns > 0 || alerts > 0 {
		s.logger.WithFields(logrus.Fields{
			"check_ins": checkIns,
			"alerts":    alerts,
		}).Info("deactivated expired records")
	}
}
