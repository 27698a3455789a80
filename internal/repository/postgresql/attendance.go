package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, day, check_in, check_out, last_cycle_start,
	total_hours, latitude, longitude, location_data, selfie_path,
	is_late, early_departure, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var locationData []byte

	err := row.Scan(
		&att.ID, &att.UserID, &att.Day, &att.CheckIn, &att.CheckOut, &att.LastCycleStart,
		&att.TotalHours, &att.Latitude, &att.Longitude, &locationData, &att.SelfiePath,
		&att.IsLate, &att.EarlyDeparture, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if len(locationData) > 0 {
		if err := json.Unmarshal(locationData, &att.LocationData); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to decode location data: %w", err)
		}
	}

	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	locationData, err := json.Marshal(newAttendance.LocationData)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to encode location data: %w", err)
	}

	query := `
		INSERT INTO attendances (
			id, user_id, day, check_in, check_out, last_cycle_start,
			total_hours, latitude, longitude, location_data, selfie_path,
			is_late, early_departure
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.UserID,
		newAttendance.Day,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.LastCycleStart,
		newAttendance.TotalHours,
		newAttendance.Latitude,
		newAttendance.Longitude,
		locationData,
		newAttendance.SelfiePath,
		newAttendance.IsLate,
		newAttendance.EarlyDeparture,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrSessionConflict
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByUserAndDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDay(ctx context.Context, userID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND day = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and day: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	locationData, err := json.Marshal(att.LocationData)
	if err != nil {
		return fmt.Errorf("failed to encode location data: %w", err)
	}

	query := `
		UPDATE attendances
		SET check_in = $2,
			check_out = $3,
			last_cycle_start = $4,
			total_hours = $5,
			latitude = $6,
			longitude = $7,
			location_data = $8,
			selfie_path = $9,
			is_late = $10,
			early_departure = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CheckIn,
		att.CheckOut,
		att.LastCycleStart,
		att.TotalHours,
		att.Latitude,
		att.Longitude,
		locationData,
		att.SelfiePath,
		att.IsLate,
		att.EarlyDeparture,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND day >= $2
		  AND day <= $3
		ORDER BY day DESC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}

// ListByDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDay(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.day, a.check_in, a.check_out, a.last_cycle_start,
			   a.total_hours, a.latitude, a.longitude, a.location_data, a.selfie_path,
			   a.is_late, a.early_departure, a.created_at, a.updated_at,
			   e.name, e.department
		FROM attendances a
		JOIN employees e ON e.id = a.user_id
		WHERE a.day = $1
		ORDER BY a.check_in ASC
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by day: %w", err)
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
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}

		if len(locationData) > 0 {
			if err := json.Unmarshal(locationData, &att.LocationData); err != nil {
				return nil, fmt.Errorf("failed to decode location data: %w", err)
			}
		}

		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}
