package attendance

import (
	"github.com/hrsuite/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CoordinatePayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CheckInRequest struct {
	UserID     string            `json:"user_id"`
	Coordinate CoordinatePayload `json:"coordinate"`
	Accuracy   *float64          `json:"accuracy,omitempty"`
	SelfiePath *string           `json:"selfie,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if !validator.IsValidLatitude(r.Coordinate.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinate.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Coordinate.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinate.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Accuracy != nil && !validator.IsValidAccuracy(*r.Accuracy) {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must be between 0 and 10000 meters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	UserID     string            `json:"user_id"`
	Coordinate CoordinatePayload `json:"coordinate"`
	Accuracy   *float64          `json:"accuracy,omitempty"`
	SelfiePath *string           `json:"selfie,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if !validator.IsValidLatitude(r.Coordinate.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinate.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Coordinate.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinate.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Accuracy != nil && !validator.IsValidAccuracy(*r.Accuracy) {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must be between 0 and 10000 meters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GPSLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type AttendanceResponse struct {
	AttendanceID     string       `json:"attendance_id"`
	UserID           string       `json:"user_id"`
	Day              string       `json:"day"`
	CheckIn          string       `json:"check_in"`
	CheckOut         *string      `json:"check_out"`
	GPSLocation      GPSLocation  `json:"gps_location"`
	LocationData     LocationData `json:"location_data"`
	Selfie           *string      `json:"selfie"`
	TotalHours       float64      `json:"total_hours"`
	Status           string       `json:"status"`
	TimingStatus     *string      `json:"timing_status,omitempty"`
	LocationReason   string       `json:"location_reason,omitempty"`
	AlreadyCheckedIn bool         `json:"already_checked_in,omitempty"`
}

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int                  `json:"total"`
}

// EmployeeStatus is one roll-call row: every active employee appears exactly
// once, whether or not they have an attendance record today.
type EmployeeStatus struct {
	UserID     string   `json:"user_id"`
	UserName   string   `json:"user_name"`
	Department *string  `json:"department,omitempty"`
	Status     string   `json:"status"`
	CheckIn    *string  `json:"check_in,omitempty"`
	CheckOut   *string  `json:"check_out,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
}

type TodayStatusResponse struct {
	Date     string           `json:"date"`
	Statuses []EmployeeStatus `json:"statuses"`
	Total    int              `json:"total"`
}

type TodayRecord struct {
	AttendanceID string  `json:"attendance_id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	Department   *string `json:"department,omitempty"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"`
	IsLate       bool    `json:"is_late"`
}

type TodayRecordsResponse struct {
	Date    string        `json:"date"`
	Records []TodayRecord `json:"records"`
	Total   int           `json:"total"`
}
