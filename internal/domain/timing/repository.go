package timing

import "context"

// OfficeTimingRepository defines data access methods for office timing policies.
type OfficeTimingRepository interface {
	// Create creates a new office timing policy. Returns ErrDuplicateDepartment
	// when an active policy for the same department already exists.
	Create(ctx context.Context, timing OfficeTiming) (OfficeTiming, error)

	// GetByID retrieves a policy by ID
	GetByID(ctx context.Context, id string) (OfficeTiming, error)

	// GetActiveByDepartment retrieves the active policy for a department.
	// Returns nil when the department has no active policy.
	GetActiveByDepartment(ctx context.Context, department string) (*OfficeTiming, error)

	// GetActiveDefault retrieves the active global default policy (the row
	// with a NULL department). Returns nil when none is configured.
	GetActiveDefault(ctx context.Context) (*OfficeTiming, error)

	// List retrieves all policies
	List(ctx context.Context) ([]OfficeTiming, error)

	// Update updates an existing policy
	Update(ctx context.Context, timing OfficeTiming) error

	// Delete removes a policy
	Delete(ctx context.Context, id string) error
}
