package timing

import (
	"context"
	"testing"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/domain/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimingRepo struct {
	byDepartment map[string]timing.OfficeTiming
	defaultRow   *timing.OfficeTiming
}

func (f *fakeTimingRepo) Create(ctx context.Context, t timing.OfficeTiming) (timing.OfficeTiming, error) {
	if t.Department != nil {
		if _, exists := f.byDepartment[*t.Department]; exists {
			return timing.OfficeTiming{}, timing.ErrDuplicateDepartment
		}
		if f.byDepartment == nil {
			f.byDepartment = make(map[string]timing.OfficeTiming)
		}
		f.byDepartment[*t.Department] = t
	} else {
		f.defaultRow = &t
	}
	return t, nil
}

func (f *fakeTimingRepo) GetByID(ctx context.Context, id string) (timing.OfficeTiming, error) {
	if f.defaultRow != nil && f.defaultRow.ID == id {
		return *f.defaultRow, nil
	}
	for _, t := range f.byDepartment {
		if t.ID == id {
			return t, nil
		}
	}
	return timing.OfficeTiming{}, timing.ErrTimingNotFound
}

func (f *fakeTimingRepo) GetActiveByDepartment(ctx context.Context, department string) (*timing.OfficeTiming, error) {
	t, ok := f.byDepartment[department]
	if !ok || !t.IsActive {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTimingRepo) GetActiveDefault(ctx context.Context) (*timing.OfficeTiming, error) {
	if f.defaultRow == nil || !f.defaultRow.IsActive {
		return nil, nil
	}
	row := *f.defaultRow
	return &row, nil
}

func (f *fakeTimingRepo) List(ctx context.Context) ([]timing.OfficeTiming, error) {
	var result []timing.OfficeTiming
	if f.defaultRow != nil {
		result = append(result, *f.defaultRow)
	}
	for _, t := range f.byDepartment {
		result = append(result, t)
	}
	return result, nil
}

func (f *fakeTimingRepo) Update(ctx context.Context, t timing.OfficeTiming) error {
	if f.defaultRow != nil && f.defaultRow.ID == t.ID {
		f.defaultRow = &t
		return nil
	}
	for dept, existing := range f.byDepartment {
		if existing.ID == t.ID {
			f.byDepartment[dept] = t
			return nil
		}
	}
	return timing.ErrTimingNotFound
}

func (f *fakeTimingRepo) Delete(ctx context.Context, id string) error {
	if f.defaultRow != nil && f.defaultRow.ID == id {
		f.defaultRow = nil
		return nil
	}
	for dept, existing := range f.byDepartment {
		if existing.ID == id {
			delete(f.byDepartment, dept)
			return nil
		}
	}
	return timing.ErrTimingNotFound
}

func newService(repo *fakeTimingRepo) timing.OfficeTimingService {
	return NewOfficeTimingService(repo, "09:30", "18:00", 15)
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func TestClassifyCheckInFallbackPolicy(t *testing.T) {
	svc := newService(&fakeTimingRepo{})
	ctx := context.Background()

	// 09:00 against 09:30 start + 15min grace.
	status, err := svc.Classify(ctx, timing.EventCheckIn, at(9, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusOnTime, status)

	// Exactly at start + grace: the boundary favors the employee.
	status, err = svc.Classify(ctx, timing.EventCheckIn, at(9, 45), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusOnTime, status)

	// One minute past the grace limit.
	status, err = svc.Classify(ctx, timing.EventCheckIn, at(9, 46), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusLate, status)
}

func TestClassifyCheckOut(t *testing.T) {
	svc := newService(&fakeTimingRepo{})
	ctx := context.Background()

	status, err := svc.Classify(ctx, timing.EventCheckOut, at(17, 50), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusEarlyDeparture, status)

	// Exactly at end time counts as normal.
	status, err = svc.Classify(ctx, timing.EventCheckOut, at(18, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusNormal, status)

	status, err = svc.Classify(ctx, timing.EventCheckOut, at(19, 15), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusNormal, status)
}

func TestClassifyDepartmentPolicyWins(t *testing.T) {
	dept := "engineering"
	repo := &fakeTimingRepo{byDepartment: map[string]timing.OfficeTiming{
		dept: {ID: "t1", Department: &dept, StartTime: "08:00", EndTime: "16:00", GraceMinutes: 0, IsActive: true},
	}}
	svc := newService(repo)
	ctx := context.Background()

	// 09:00 is late for engineering but fine for the fallback.
	status, err := svc.Classify(ctx, timing.EventCheckIn, at(9, 0), &dept)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusLate, status)

	other := "sales"
	status, err = svc.Classify(ctx, timing.EventCheckIn, at(9, 0), &other)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusOnTime, status)
}

func TestClassifyDefaultRowBeatsFallback(t *testing.T) {
	repo := &fakeTimingRepo{defaultRow: &timing.OfficeTiming{
		ID: "default", StartTime: "10:00", EndTime: "19:00", GraceMinutes: 5, IsActive: true,
	}}
	svc := newService(repo)

	status, err := svc.Classify(context.Background(), timing.EventCheckIn, at(9, 50), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusOnTime, status)

	status, err = svc.Classify(context.Background(), timing.EventCheckOut, at(18, 30), nil)
	require.NoError(t, err)
	assert.Equal(t, timing.StatusEarlyDeparture, status)
}

func TestClassifyRejectsUnknownEvent(t *testing.T) {
	svc := newService(&fakeTimingRepo{})

	_, err := svc.Classify(context.Background(), "lunch", at(12, 0), nil)
	assert.ErrorIs(t, err, timing.ErrInvalidEventType)
}

func TestCreateTimingValidation(t *testing.T) {
	svc := newService(&fakeTimingRepo{})

	_, err := svc.CreateTiming(context.Background(), timing.CreateTimingRequest{
		StartTime:    "9:30am",
		EndTime:      "18:00",
		GraceMinutes: -1,
	})
	require.Error(t, err)
}

func TestCreateAndUpdateTiming(t *testing.T) {
	svc := newService(&fakeTimingRepo{})
	ctx := context.Background()

	dept := "hr"
	created, err := svc.CreateTiming(ctx, timing.CreateTimingRequest{
		Department:   &dept,
		StartTime:    "08:30",
		EndTime:      "17:00",
		GraceMinutes: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	newStart := "09:00"
	updated, err := svc.UpdateTiming(ctx, timing.UpdateTimingRequest{
		ID:        created.ID,
		StartTime: &newStart,
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", updated.StartTime)
	assert.Equal(t, "17:00", updated.EndTime)
	assert.Equal(t, 10, updated.GraceMinutes)
}

func TestCreateTimingDuplicateDepartment(t *testing.T) {
	svc := newService(&fakeTimingRepo{})
	ctx := context.Background()

	dept := "hr"
	req := timing.CreateTimingRequest{Department: &dept, StartTime: "08:30", EndTime: "17:00"}

	_, err := svc.CreateTiming(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateTiming(ctx, req)
	assert.ErrorIs(t, err, timing.ErrDuplicateDepartment)
}
