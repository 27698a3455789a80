package report

import (
	"context"
	"testing"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
	"github.com/hrsuite/attendance-backend-go/internal/domain/employee"
	"github.com/hrsuite/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	records []attendance.Attendance
}

func (f *fakeReportRepo) ListRecords(ctx context.Context, from, to time.Time, department *string, userID *string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.records {
		if att.Day.Before(from) || att.Day.After(to) {
			continue
		}
		if userID != nil && att.UserID != *userID {
			continue
		}
		result = append(result, att)
	}
	return result, nil
}

type fakeEmployeeRepo struct {
	activeCount int
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context, department *string) (int, error) {
	return f.activeCount, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, department *string) ([]employee.Employee, error) {
	return nil, nil
}

var testNow = time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)

func newService(reportRepo *fakeReportRepo, employeeRepo *fakeEmployeeRepo) *ReportServiceImpl {
	return &ReportServiceImpl{
		ReportRepository:   reportRepo,
		EmployeeRepository: employeeRepo,
		now:                func() time.Time { return testNow },
	}
}

func closedRecord(userID string, hours float64, late, early bool) attendance.Attendance {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	checkIn := day.Add(9 * time.Hour)
	checkOut := checkIn.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Attendance{
		ID:             "att-" + userID,
		UserID:         userID,
		Day:            day,
		CheckIn:        checkIn,
		CheckOut:       &checkOut,
		LastCycleStart: checkIn,
		TotalHours:     hours,
		IsLate:         late,
		EarlyDeparture: early,
	}
}

func TestSummaryZeroEmployees(t *testing.T) {
	svc := newService(&fakeReportRepo{}, &fakeEmployeeRepo{activeCount: 0})

	summary, err := svc.GetSummary(context.Background(), report.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalEmployees)
	assert.Equal(t, 0, summary.PresentToday)
	assert.Equal(t, 0, summary.AbsentToday)
	assert.Equal(t, 0, summary.LateArrivals)
	assert.Equal(t, 0, summary.EarlyDepartures)
	assert.Equal(t, 0.0, summary.AverageWorkHours)
}

func TestSummaryCounts(t *testing.T) {
	repo := &fakeReportRepo{records: []attendance.Attendance{
		closedRecord("u1", 8, false, false),
		closedRecord("u2", 6, true, true),
	}}
	svc := newService(repo, &fakeEmployeeRepo{activeCount: 5})

	summary, err := svc.GetSummary(context.Background(), report.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalEmployees)
	assert.Equal(t, 2, summary.PresentToday)
	assert.Equal(t, 3, summary.AbsentToday)
	assert.Equal(t, 1, summary.LateArrivals)
	assert.Equal(t, 1, summary.EarlyDepartures)
	assert.Equal(t, 7.0, summary.AverageWorkHours)
}

func TestSummaryValuesOpenSessionToNow(t *testing.T) {
	open := closedRecord("u1", 0, false, false)
	open.CheckOut = nil
	// Open since 09:00, now 17:00 -> 8 hours running.
	repo := &fakeReportRepo{records: []attendance.Attendance{open}}
	svc := newService(repo, &fakeEmployeeRepo{activeCount: 1})

	summary, err := svc.GetSummary(context.Background(), report.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.PresentToday)
	assert.Equal(t, 0, summary.AbsentToday)
	assert.Equal(t, 8.0, summary.AverageWorkHours)
}

func TestSummaryMultiCycleUserCountedOnce(t *testing.T) {
	repo := &fakeReportRepo{records: []attendance.Attendance{
		closedRecord("u1", 5.5, false, false),
	}}
	svc := newService(repo, &fakeEmployeeRepo{activeCount: 1})

	summary, err := svc.GetSummary(context.Background(), report.SummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.PresentToday)
	assert.Equal(t, 0, summary.AbsentToday)
	assert.Equal(t, 5.5, summary.AverageWorkHours)
}

func TestSummaryRejectsBadDate(t *testing.T) {
	svc := newService(&fakeReportRepo{}, &fakeEmployeeRepo{activeCount: 1})

	bad := "06/02/2025"
	_, err := svc.GetSummary(context.Background(), report.SummaryFilter{Date: &bad})
	require.Error(t, err)
}

func TestSnapshotSummary(t *testing.T) {
	repo := &fakeReportRepo{records: []attendance.Attendance{
		closedRecord("u1", 8, true, false),
	}}
	svc := newService(repo, &fakeEmployeeRepo{activeCount: 2})

	line, err := svc.SnapshotSummary(context.Background())
	require.NoError(t, err)
	assert.Contains(t, line, "2025-06-02")
	assert.Contains(t, line, "1/2 present")
	assert.Contains(t, line, "1 late")
}
