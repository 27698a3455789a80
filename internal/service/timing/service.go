package timing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrsuite/attendance-backend-go/internal/domain/timing"
)

type OfficeTimingServiceImpl struct {
	timing.OfficeTimingRepository
	fallback timing.OfficeTiming
}

// NewOfficeTimingService wires the timing repository with the compiled-in
// fallback policy used when no row matches (neither department nor global
// default configured in the database).
func NewOfficeTimingService(repo timing.OfficeTimingRepository, fallbackStart, fallbackEnd string, fallbackGrace int) timing.OfficeTimingService {
	return &OfficeTimingServiceImpl{
		OfficeTimingRepository: repo,
		fallback: timing.OfficeTiming{
			StartTime:    fallbackStart,
			EndTime:      fallbackEnd,
			GraceMinutes: fallbackGrace,
			IsActive:     true,
		},
	}
}

// minutesOfDay parses an "HH:MM" clock string into minutes since midnight.
func minutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// resolvePolicy picks the effective policy: department row if active, else
// the global default row, else the compiled-in fallback.
func (s *OfficeTimingServiceImpl) resolvePolicy(ctx context.Context, department *string) (timing.OfficeTiming, error) {
	if department != nil {
		policy, err := s.OfficeTimingRepository.GetActiveByDepartment(ctx, *department)
		if err != nil {
			return timing.OfficeTiming{}, fmt.Errorf("failed to resolve department policy: %w", err)
		}
		if policy != nil {
			return *policy, nil
		}
	}

	policy, err := s.OfficeTimingRepository.GetActiveDefault(ctx)
	if err != nil {
		return timing.OfficeTiming{}, fmt.Errorf("failed to resolve default policy: %w", err)
	}
	if policy != nil {
		return *policy, nil
	}

	return s.fallback, nil
}

// Classify implements timing.OfficeTimingService.
//
// Comparisons run at minute granularity and ties go to the employee: a
// check-in at exactly start+grace is on-time, a check-out at exactly the end
// time is normal.
func (s *OfficeTimingServiceImpl) Classify(ctx context.Context, eventType string, at time.Time, department *string) (string, error) {
	if eventType != timing.EventCheckIn && eventType != timing.EventCheckOut {
		return "", timing.ErrInvalidEventType
	}

	policy, err := s.resolvePolicy(ctx, department)
	if err != nil {
		return "", err
	}

	eventMinutes := at.Hour()*60 + at.Minute()

	switch eventType {
	case timing.EventCheckIn:
		startMinutes, err := minutesOfDay(policy.StartTime)
		if err != nil {
			return "", err
		}
		if eventMinutes > startMinutes+policy.GraceMinutes {
			return timing.StatusLate, nil
		}
		return timing.StatusOnTime, nil

	default:
		endMinutes, err := minutesOfDay(policy.EndTime)
		if err != nil {
			return "", err
		}
		if eventMinutes < endMinutes {
			return timing.StatusEarlyDeparture, nil
		}
		return timing.StatusNormal, nil
	}
}

// CreateTiming implements timing.OfficeTimingService.
func (s *OfficeTimingServiceImpl) CreateTiming(ctx context.Context, req timing.CreateTimingRequest) (timing.TimingResponse, error) {
	if err := req.Validate(); err != nil {
		return timing.TimingResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return timing.TimingResponse{}, fmt.Errorf("failed to generate timing ID: %w", err)
	}

	created, err := s.OfficeTimingRepository.Create(ctx, timing.OfficeTiming{
		ID:           id.String(),
		Department:   req.Department,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		GraceMinutes: req.GraceMinutes,
		IsActive:     true,
	})
	if err != nil {
		return timing.TimingResponse{}, err
	}

	return toTimingResponse(created), nil
}

// UpdateTiming implements timing.OfficeTimingService.
func (s *OfficeTimingServiceImpl) UpdateTiming(ctx context.Context, req timing.UpdateTimingRequest) (timing.TimingResponse, error) {
	if err := req.Validate(); err != nil {
		return timing.TimingResponse{}, err
	}

	current, err := s.OfficeTimingRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timing.TimingResponse{}, err
	}

	if req.StartTime != nil {
		current.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		current.EndTime = *req.EndTime
	}
	if req.GraceMinutes != nil {
		current.GraceMinutes = *req.GraceMinutes
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.OfficeTimingRepository.Update(ctx, current); err != nil {
		return timing.TimingResponse{}, err
	}

	updated, err := s.OfficeTimingRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timing.TimingResponse{}, err
	}

	return toTimingResponse(updated), nil
}

// GetTiming implements timing.OfficeTimingService.
func (s *OfficeTimingServiceImpl) GetTiming(ctx context.Context, id string) (timing.TimingResponse, error) {
	t, err := s.OfficeTimingRepository.GetByID(ctx, id)
	if err != nil {
		return timing.TimingResponse{}, err
	}
	return toTimingResponse(t), nil
}

// ListTimings implements timing.OfficeTimingService.
func (s *OfficeTimingServiceImpl) ListTimings(ctx context.Context) (timing.ListTimingResponse, error) {
	timings, err := s.OfficeTimingRepository.List(ctx)
	if err != nil {
		return timing.ListTimingResponse{}, err
	}

	resp := timing.ListTimingResponse{
		Timings: make([]timing.TimingResponse, 0, len(timings)),
		Total:   len(timings),
	}
	for _, t := range timings {
		resp.Timings = append(resp.Timings, toTimingResponse(t))
	}

	return resp, nil
}

// DeleteTiming implements timing.OfficeTimingService.
func (s *OfficeTimingServiceImpl) DeleteTiming(ctx context.Context, id string) error {
	return s.OfficeTimingRepository.Delete(ctx, id)
}

func toTimingResponse(t timing.OfficeTiming) timing.TimingResponse {
	return timing.TimingResponse{
		ID:           t.ID,
		Department:   t.Department,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		GraceMinutes: t.GraceMinutes,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}
