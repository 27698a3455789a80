package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrLocationIncomplete = errors.New("location data is incomplete")
	ErrOutsideAllowedArea = errors.New("you must be within the allowed work area to check in")

	// Check-out errors
	ErrNotCheckedIn = errors.New("no active check-in found for today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrSessionConflict    = errors.New("attendance record for this day already exists")
)
