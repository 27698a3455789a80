package timing

import (
	"context"
	"time"
)

// OfficeTimingService defines business logic for timing policies and the
// late/early classification used by attendance and reporting. Classification
// is advisory only and never blocks a check-in or check-out.
type OfficeTimingService interface {
	// Classify classifies an event timestamp against the department's
	// effective policy (department row if active, else global default)
	Classify(ctx context.Context, eventType string, at time.Time, department *string) (string, error)

	// CreateTiming creates a policy row
	CreateTiming(ctx context.Context, req CreateTimingRequest) (TimingResponse, error)

	// UpdateTiming partially updates a policy row
	UpdateTiming(ctx context.Context, req UpdateTimingRequest) (TimingResponse, error)

	// GetTiming retrieves a policy by ID
	GetTiming(ctx context.Context, id string) (TimingResponse, error)

	// ListTimings retrieves all policy rows
	ListTimings(ctx context.Context) (ListTimingResponse, error)

	// DeleteTiming removes a policy row
	DeleteTiming(ctx context.Context, id string) error
}
