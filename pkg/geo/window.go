package geo

import "time"

// WithinWindow reports whether a timestamped record is still inside the
// given horizon at time now. Used both as a read-time filter and by the
// periodic sweep that clears stale active flags.
func WithinWindow(ts time.Time, horizon time.Duration, now time.Time) bool {
	return now.Sub(ts) <= horizon
}

// Cutoff returns the oldest timestamp still inside the horizon at time now.
// Repositories use it for created_at range queries.
func Cutoff(horizon time.Duration, now time.Time) time.Time {
	return now.Add(-horizon)
}
