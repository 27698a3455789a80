package report

import (
	"github.com/hrsuite/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type SummaryFilter struct {
	Date       *string `json:"date,omitempty"`
	From       *string `json:"from,omitempty"`
	To         *string `json:"to,omitempty"`
	Department *string `json:"department,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if f.From != nil {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if f.To != nil {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryResponse struct {
	Date             string  `json:"date"`
	TotalEmployees   int     `json:"total_employees"`
	PresentToday     int     `json:"present_today"`
	AbsentToday      int     `json:"absent_today"`
	LateArrivals     int     `json:"late_arrivals"`
	EarlyDepartures  int     `json:"early_departures"`
	AverageWorkHours float64 `json:"average_work_hours"`
}
