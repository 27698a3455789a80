package employee

import "time"

// Employee is the read-side projection of the HR user record that attendance
// operations need. The full employee lifecycle (registration, roles, profile)
// is owned by the identity service; this backend only reads.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department *string
	Position   *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
