package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/domain/employee"
	"github.com/hrsuite/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	report.ReportRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:   reportRepo,
		EmployeeRepository: employeeRepo,
		now:                time.Now,
	}
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetSummary implements report.ReportService.
func (s *ReportServiceImpl) GetSummary(ctx context.Context, filter report.SummaryFilter) (report.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}

	now := s.now().UTC()
	from := dayOf(now)
	to := from

	if filter.Date != nil {
		from, _ = time.Parse("2006-01-02", *filter.Date)
		to = from
	} else if filter.From != nil || filter.To != nil {
		if filter.From != nil {
			from, _ = time.Parse("2006-01-02", *filter.From)
		}
		if filter.To != nil {
			to, _ = time.Parse("2006-01-02", *filter.To)
		}
	}

	resp := report.SummaryResponse{Date: to.Format("2006-01-02")}

	totalEmployees, err := s.EmployeeRepository.CountActive(ctx, filter.Department)
	if err != nil {
		return report.SummaryResponse{}, err
	}
	resp.TotalEmployees = totalEmployees

	// No active employees: every count is zero and there is nothing to
	// average, so return early rather than divide by zero below.
	if totalEmployees == 0 {
		return resp, nil
	}

	records, err := s.ReportRepository.ListRecords(ctx, from, to, filter.Department, filter.UserID)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	today := dayOf(now)
	presentUsers := make(map[string]struct{})
	var hoursSum float64
	var hoursCount int

	for _, record := range records {
		presentUsers[record.UserID] = struct{}{}

		if record.IsLate {
			resp.LateArrivals++
		}
		if record.EarlyDeparture {
			resp.EarlyDepartures++
		}

		switch {
		case !record.IsOpen():
			hoursSum += record.TotalHours
			hoursCount++
		case record.Day.Equal(today):
			// Open session today: value the running cycle to now.
			running := now.Sub(record.LastCycleStart).Hours()
			if running < 0 {
				running = 0
			}
			hoursSum += record.TotalHours + running
			hoursCount++
		}
	}

	resp.PresentToday = len(presentUsers)
	resp.AbsentToday = totalEmployees - resp.PresentToday
	if resp.AbsentToday < 0 {
		resp.AbsentToday = 0
	}

	if hoursCount > 0 {
		resp.AverageWorkHours = math.Round(hoursSum/float64(hoursCount)*100) / 100
	}

	return resp, nil
}

// SnapshotSummary implements report.ReportService.
func (s *ReportServiceImpl) SnapshotSummary(ctx context.Context) (string, error) {
	summary, err := s.GetSummary(ctx, report.SummaryFilter{})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%s: %d/%d present, %d absent, %d late, %d early departures, avg %.2fh",
		summary.Date, summary.PresentToday, summary.TotalEmployees,
		summary.AbsentToday, summary.LateArrivals, summary.EarlyDepartures,
		summary.AverageWorkHours,
	), nil
}
