package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens (or reopens) today's session for a user after geofence
	// validation. Idempotent while a session is already open.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open session and accumulates the cycle's hours
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetTodayStatus rolls through every active employee (optionally one
	// department) and reports their check-in/out state for today
	GetTodayStatus(ctx context.Context, department *string) (TodayStatusResponse, error)

	// GetAttendance retrieves a single attendance record by its ID
	GetAttendance(ctx context.Context, attendanceID string) (AttendanceResponse, error)

	// GetMyAttendance retrieves a user's attendance history (default: last 180 days)
	GetMyAttendance(ctx context.Context, userID string, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// GetTodayRecords retrieves every employee's record for today with status strings
	GetTodayRecords(ctx context.Context) (TodayRecordsResponse, error)
}
