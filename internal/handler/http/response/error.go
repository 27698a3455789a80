package response

import (
	"errors"
	"net/http"

	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
	"github.com/hrsuite/attendance-backend-go/internal/domain/employee"
	"github.com/hrsuite/attendance-backend-go/internal/domain/timing"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrLocationIncomplete):
		BadRequest(w, "Location data is incomplete", nil)
	case errors.Is(err, attendance.ErrOutsideAllowedArea):
		Forbidden(w, "You must be within the allowed work area to check in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No active check-in found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSessionConflict):
		Conflict(w, "Attendance record for this day already exists")

	// Office timing domain errors
	case errors.Is(err, timing.ErrTimingNotFound):
		NotFound(w, "Office timing not found")
	case errors.Is(err, timing.ErrDuplicateDepartment):
		Conflict(w, "An active timing already exists for this department")
	case errors.Is(err, timing.ErrInvalidEventType):
		BadRequest(w, "Event type must be check_in or check_out", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
