package report

import (
	"context"
)

// ReportService derives attendance statistics for dashboards and exports.
type ReportService interface {
	// GetSummary computes the daily summary for the filter's date (default:
	// today), guarding the zero-active-employee case
	GetSummary(ctx context.Context, filter SummaryFilter) (SummaryResponse, error)

	// SnapshotSummary renders today's summary as a one-line string for the
	// daily operator log
	SnapshotSummary(ctx context.Context) (string, error)
}
