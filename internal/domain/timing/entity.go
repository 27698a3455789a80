package timing

import "time"

// OfficeTiming is a per-department attendance policy row. A nil Department
// marks the global default used when no department-specific row is active.
type OfficeTiming struct {
	ID           string
	Department   *string
	StartTime    string
	EndTime      string
	GraceMinutes int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Event types classified against a policy.
const (
	EventCheckIn  = "check_in"
	EventCheckOut = "check_out"
)

// Classification statuses. Boundary cases (exactly start+grace, exactly end)
// count in the employee's favor.
const (
	StatusOnTime         = "on_time"
	StatusLate           = "late"
	StatusEarlyDeparture = "early_departure"
	StatusNormal         = "normal"
)
