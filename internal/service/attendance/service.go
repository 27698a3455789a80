package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
	"github.com/hrsuite/attendance-backend-go/internal/domain/employee"
	"github.com/hrsuite/attendance-backend-go/internal/domain/timing"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/database"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/geocode"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/geofence"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/metrics"
	"github.com/hrsuite/attendance-backend-go/internal/repository/postgresql"
)

// historyWindowDays bounds the default my-attendance lookback.
const historyWindowDays = 180

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	evaluator     *geofence.Evaluator
	resolver      geocode.Resolver
	timingService timing.OfficeTimingService
	now           func() time.Time
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	evaluator *geofence.Evaluator,
	resolver geocode.Resolver,
	timingService timing.OfficeTimingService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		evaluator:            evaluator,
		resolver:             resolver,
		timingService:        timingService,
		now:                  time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// roundHours rounds a duration-in-hours value to 2 decimal places.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validateLocation runs the geofence check and maps a rejection to the
// matching domain error.
func (a *AttendanceServiceImpl) validateLocation(coord geofence.Coordinate, accuracy *float64) (geofence.Decision, error) {
	decision := a.evaluator.Validate(coord, accuracy)
	if !decision.Accepted {
		metrics.GeofenceRejections.Inc()
		if decision.Reason == geofence.ReasonIncomplete {
			return decision, attendance.ErrLocationIncomplete
		}
		return decision, attendance.ErrOutsideAllowedArea
	}
	return decision, nil
}

// resolvePlace reverse-geocodes a coordinate for evidence enrichment. Lookup
// failures never block the transition: a placeholder address is substituted.
func (a *AttendanceServiceImpl) resolvePlace(ctx context.Context, coord geofence.Coordinate) geocode.Place {
	place, err := a.resolver.Resolve(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		metrics.GeocodeFailures.Inc()
		return geocode.Place{Address: geocode.PlaceholderAddress}
	}
	return place
}

func (a *AttendanceServiceImpl) processedLocation(coord geofence.Coordinate, accuracy *float64, decision geofence.Decision, place geocode.Place, at time.Time) attendance.ProcessedLocation {
	return attendance.ProcessedLocation{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Accuracy:  accuracy,
		Address:   place.Address,
		PlaceName: place.PlaceName,
		Verified:  decision.Accepted,
		Reason:    decision.Reason,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

// activeEmployee loads and gates the employee behind every transition.
func (a *AttendanceServiceImpl) activeEmployee(ctx context.Context, userID string) (employee.Employee, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, userID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	coord := geofence.Coordinate{Latitude: req.Coordinate.Latitude, Longitude: req.Coordinate.Longitude}
	decision, err := a.validateLocation(coord, req.Accuracy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now().UTC()
	today := dayOf(now)
	place := a.resolvePlace(ctx, coord)
	evidence := a.processedLocation(coord, req.Accuracy, decision, place, now)

	// Advisory only: classification failure must not block the check-in.
	timingStatus, err := a.timingService.Classify(ctx, timing.EventCheckIn, now, emp.Department)
	if err != nil {
		timingStatus = timing.StatusOnTime
	}

	var result attendance.Attendance
	var alreadyCheckedIn bool
	err = a.runTx(ctx, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByUserAndDay(txCtx, req.UserID, today)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate attendance ID: %w", err)
			}

			created, err := a.AttendanceRepository.Create(txCtx, attendance.Attendance{
				ID:             id.String(),
				UserID:         req.UserID,
				Day:            today,
				CheckIn:        now,
				LastCycleStart: now,
				TotalHours:     0,
				Latitude:       &coord.Latitude,
				Longitude:      &coord.Longitude,
				LocationData:   attendance.LocationData{CheckIn: &evidence},
				SelfiePath:     req.SelfiePath,
				IsLate:         timingStatus == timing.StatusLate,
			})
			if err != nil {
				return err
			}
			result = created
			return nil

		case existing.IsOpen():
			// Idempotent: the first check-in's evidence is authoritative and
			// a duplicate submission must not overwrite it.
			alreadyCheckedIn = true
			result = *existing
			return nil

		default:
			// Closed record: reopen the same row and start a new cycle.
			existing.CheckOut = nil
			existing.LastCycleStart = now
			if err := a.AttendanceRepository.Update(txCtx, *existing); err != nil {
				return err
			}
			result = *existing
			return nil
		}
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A duplicate submission is a no-op, not a new check-in.
	if !alreadyCheckedIn {
		metrics.CheckIns.Inc()
	}

	resp := toAttendanceResponse(result)
	resp.TimingStatus = &timingStatus
	resp.LocationReason = decision.Reason
	resp.AlreadyCheckedIn = alreadyCheckedIn
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	coord := geofence.Coordinate{Latitude: req.Coordinate.Latitude, Longitude: req.Coordinate.Longitude}
	decision, err := a.validateLocation(coord, req.Accuracy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now().UTC()
	today := dayOf(now)
	place := a.resolvePlace(ctx, coord)
	evidence := a.processedLocation(coord, req.Accuracy, decision, place, now)

	timingStatus, err := a.timingService.Classify(ctx, timing.EventCheckOut, now, emp.Department)
	if err != nil {
		timingStatus = timing.StatusNormal
	}

	var result attendance.Attendance
	err = a.runTx(ctx, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByUserAndDay(txCtx, req.UserID, today)
		if err != nil {
			return err
		}
		if existing == nil || !existing.IsOpen() {
			return attendance.ErrNotCheckedIn
		}

		cycle := now.Sub(existing.LastCycleStart).Hours()
		if cycle < 0 {
			cycle = 0
		}

		existing.CheckOut = &now
		existing.TotalHours = roundHours(existing.TotalHours + cycle)
		existing.LocationData.CheckOut = &evidence
		existing.EarlyDeparture = timingStatus == timing.StatusEarlyDeparture
		if existing.SelfiePath == nil {
			existing.SelfiePath = req.SelfiePath
		}

		if err := a.AttendanceRepository.Update(txCtx, *existing); err != nil {
			return err
		}
		result = *existing
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	metrics.CheckOuts.Inc()

	resp := toAttendanceResponse(result)
	resp.TimingStatus = &timingStatus
	resp.LocationReason = decision.Reason
	return resp, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, department *string) (attendance.TodayStatusResponse, error) {
	today := dayOf(a.now())

	employees, err := a.EmployeeRepository.ListActive(ctx, department)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByDay(ctx, today)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	byUser := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byUser[record.UserID] = record
	}

	resp := attendance.TodayStatusResponse{
		Date:     today.Format("2006-01-02"),
		Statuses: make([]attendance.EmployeeStatus, 0, len(employees)),
		Total:    len(employees),
	}

	for _, emp := range employees {
		row := attendance.EmployeeStatus{
			UserID:     emp.ID,
			UserName:   emp.Name,
			Department: emp.Department,
			Status:     "Absent",
		}

		if record, ok := byUser[emp.ID]; ok {
			checkIn := record.CheckIn.Format(time.RFC3339)
			row.CheckIn = &checkIn
			row.TotalHours = &record.TotalHours
			if record.IsOpen() {
				row.Status = "Checked In"
			} else {
				checkOut := record.CheckOut.Format(time.RFC3339)
				row.CheckOut = &checkOut
				row.Status = "Checked Out"
			}
		}

		resp.Statuses = append(resp.Statuses, row)
	}

	return resp, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, attendanceID string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, userID); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	to := dayOf(a.now())
	from := to.AddDate(0, 0, -historyWindowDays)

	if filter.StartDate != nil {
		from, _ = time.Parse("2006-01-02", *filter.StartDate)
	}
	if filter.EndDate != nil {
		to, _ = time.Parse("2006-01-02", *filter.EndDate)
	}

	records, err := a.AttendanceRepository.ListByUser(ctx, userID, from, to)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:   len(records),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, toAttendanceResponse(record))
	}

	return resp, nil
}

// GetTodayRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayRecords(ctx context.Context) (attendance.TodayRecordsResponse, error) {
	today := dayOf(a.now())

	records, err := a.AttendanceRepository.ListByDay(ctx, today)
	if err != nil {
		return attendance.TodayRecordsResponse{}, err
	}

	resp := attendance.TodayRecordsResponse{
		Date:    today.Format("2006-01-02"),
		Records: make([]attendance.TodayRecord, 0, len(records)),
		Total:   len(records),
	}

	for _, record := range records {
		row := attendance.TodayRecord{
			AttendanceID: record.ID,
			UserID:       record.UserID,
			Department:   record.UserDepartment,
			CheckIn:      record.CheckIn.Format(time.RFC3339),
			TotalHours:   record.TotalHours,
			IsLate:       record.IsLate,
		}
		if record.UserName != nil {
			row.UserName = *record.UserName
		}
		if record.IsOpen() {
			row.Status = "Checked In"
		} else {
			checkOut := record.CheckOut.Format(time.RFC3339)
			row.CheckOut = &checkOut
			row.Status = "Checked Out"
		}
		resp.Records = append(resp.Records, row)
	}

	return resp, nil
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		AttendanceID: att.ID,
		UserID:       att.UserID,
		Day:          att.Day.Format("2006-01-02"),
		CheckIn:      att.CheckIn.Format(time.RFC3339),
		GPSLocation:  attendance.GPSLocation{Latitude: att.Latitude, Longitude: att.Longitude},
		LocationData: att.LocationData,
		Selfie:       att.SelfiePath,
		TotalHours:   att.TotalHours,
		Status:       "Checked In",
	}

	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
		resp.Status = "Checked Out"
	}

	return resp
}
