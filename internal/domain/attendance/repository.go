package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record. Returns ErrSessionConflict when
	// a row for the same user and day already exists.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDay retrieves the single row for a user on a calendar day.
	// Returns nil when the user has no record for that day.
	GetByUserAndDay(ctx context.Context, userID string, day time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// ListByUser retrieves a user's records within [from, to], newest first
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)

	// ListByDay retrieves every record for one calendar day with user details
	ListByDay(ctx context.Context, day time.Time) ([]Attendance, error)
}
