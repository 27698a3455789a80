package cron

import (
	"context"
	"log/slog"
	"time"
)

// CacheEvicter is the slice of the geocode client the eviction sweep needs.
type CacheEvicter interface {
	EvictExpired() int
}

// SummarySnapshotter produces the daily attendance summary logged for operators.
type SummarySnapshotter interface {
	SnapshotSummary(ctx context.Context) (string, error)
}

// NewGeocodeEvictionJob sweeps expired entries out of the reverse-geocode cache.
// Entries already expire lazily on read; the sweep keeps memory bounded when a
// coordinate is never looked up again.
func NewGeocodeEvictionJob(cache CacheEvicter) Job {
	return Job{
		Name:     "geocode-cache-eviction",
		Interval: 10 * time.Minute,
		Fn: func(ctx context.Context) error {
			evicted := cache.EvictExpired()
			if evicted > 0 {
				slog.Info("Geocode cache sweep", "evicted", evicted)
			}
			return nil
		},
	}
}

// NewSummarySnapshotJob logs a one-line attendance summary once a day so
// operators can eyeball the numbers without hitting the API.
func NewSummarySnapshotJob(reports SummarySnapshotter) Job {
	return Job{
		Name:       "attendance-summary-snapshot",
		Interval:   24 * time.Hour,
		RunAtStart: true,
		Fn: func(ctx context.Context) error {
			line, err := reports.SnapshotSummary(ctx)
			if err != nil {
				return err
			}
			slog.Info("Attendance summary snapshot", "summary", line)
			return nil
		},
	}
}
