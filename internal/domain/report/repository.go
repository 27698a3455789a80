package report

import (
	"context"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
)

// ReportRepository fetches the raw rows the aggregator derives statistics
// from. Aggregation itself happens in the service so open sessions can be
// valued to "now" consistently.
type ReportRepository interface {
	// ListRecords retrieves attendance rows with user details for days in
	// [from, to], optionally filtered by department or user
	ListRecords(ctx context.Context, from, to time.Time, department *string, userID *string) ([]attendance.Attendance, error)
}
