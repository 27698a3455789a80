package timing

import (
	"github.com/hrsuite/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// OFFICE TIMING DTOs
// ========================================

type CreateTimingRequest struct {
	Department   *string `json:"department,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	GraceMinutes int     `json:"grace_minutes"`
}

func (r *CreateTimingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be blank; omit it for the global default",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid clock time (HH:MM)",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid clock time (HH:MM)",
		})
	}

	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimingRequest struct {
	ID           string  `json:"-"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	GraceMinutes *int    `json:"grace_minutes,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateTimingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid clock time (HH:MM)",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid clock time (HH:MM)",
			})
		}
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimingResponse struct {
	ID           string  `json:"id"`
	Department   *string `json:"department"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	GraceMinutes int     `json:"grace_minutes"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListTimingResponse struct {
	Timings []TimingResponse `json:"timings"`
	Total   int              `json:"total"`
}
