package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
	"github.com/hrsuite/attendance-backend-go/internal/domain/report"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// ListRecords implements report.ReportRepository.
func (r *reportRepository) ListRecords(ctx context.Context, from, to time.Time, department *string, userID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.day, a.check_in, a.check_out, a.last_cycle_start,
			   a.total_hours, a.latitude, a.longitude, a.location_data, a.selfie_path,
			   a.is_late, a.early_departure, a.created_at, a.updated_at,
			   e.name, e.department
		FROM attendances a
		JOIN employees e ON e.id = a.user_id
		WHERE a.day >= $1
		  AND a.day <= $2
	`
	args := []interface{}{from, to}
	argPos := 3

	if department != nil {
		query += fmt.Sprintf(" AND e.department = $%d", argPos)
		args = append(args, *department)
		argPos++
	}

	if userID != nil {
		query += fmt.Sprintf(" AND a.user_id = $%d", argPos)
		args = append(args, *userID)
		argPos++
	}

	query += " ORDER BY a.day DESC, a.check_in ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list report records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var locationData []byte

		err := rows.Scan(
			&att.ID, &att.UserID, &att.Day, &att.CheckIn, &att.CheckOut, &att.LastCycleStart,
			&att.TotalHours, &att.Latitude, &att.Longitude, &locationData, &att.SelfiePath,
			&att.IsLate, &att.EarlyDeparture, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report record: %w", err)
		}

		if len(locationData) > 0 {
			if err := json.Unmarshal(locationData, &att.LocationData); err != nil {
				return nil, fmt.Errorf("failed to decode location data: %w", err)
			}
		}

		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return records, nil
}
