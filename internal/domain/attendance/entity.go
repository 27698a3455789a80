package attendance

import (
	"time"
)

// Attendance is one row per user per calendar day. A day can hold several
// check-in/check-out cycles: re-checking in after a check-out reopens the same
// row and TotalHours accumulates across cycles.
type Attendance struct {
	ID             string
	UserID         string
	Day            time.Time
	CheckIn        time.Time
	CheckOut       *time.Time
	LastCycleStart time.Time
	TotalHours     float64
	Latitude       *float64
	Longitude      *float64
	LocationData   LocationData
	SelfiePath     *string
	IsLate         bool
	EarlyDeparture bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	UserName       *string
	UserDepartment *string
}

// IsOpen reports whether the row has an active cycle (checked in, not out).
func (a Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// ProcessedLocation is the geofence-evaluated, reverse-geocoded form of a raw
// GPS fix, stored as evidence in the jsonb location column.
type ProcessedLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Address   string   `json:"address"`
	PlaceName string   `json:"place_name,omitempty"`
	Verified  bool     `json:"verified"`
	Reason    string   `json:"reason,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// LocationData keeps check-in and check-out evidence side by side. The
// check-in entry is written once and preserved on idempotent repeats; each
// check-out overwrites the check_out entry with the latest cycle's fix.
type LocationData struct {
	CheckIn  *ProcessedLocation `json:"check_in,omitempty"`
	CheckOut *ProcessedLocation `json:"check_out,omitempty"`
}
