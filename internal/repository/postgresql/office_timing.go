package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsuite/attendance-backend-go/internal/domain/timing"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type officeTimingRepository struct {
	db *database.DB
}

func NewOfficeTimingRepository(db *database.DB) timing.OfficeTimingRepository {
	return &officeTimingRepository{db: db}
}

// Create implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) Create(ctx context.Context, t timing.OfficeTiming) (timing.OfficeTiming, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO office_timings (
			id, department, start_time, end_time, grace_minutes, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID,
		t.Department,
		t.StartTime,
		t.EndTime,
		t.GraceMinutes,
		t.IsActive,
	).Scan(&t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timing.OfficeTiming{}, timing.ErrDuplicateDepartment
		}
		return timing.OfficeTiming{}, fmt.Errorf("failed to create office timing: %w", err)
	}

	return t, nil
}

// GetByID implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) GetByID(ctx context.Context, id string) (timing.OfficeTiming, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, department, start_time, end_time, grace_minutes, is_active, created_at, updated_at
		FROM office_timings
		WHERE id = $1
	`

	var t timing.OfficeTiming
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Department, &t.StartTime, &t.EndTime, &t.GraceMinutes,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timing.OfficeTiming{}, timing.ErrTimingNotFound
		}
		return timing.OfficeTiming{}, fmt.Errorf("failed to get office timing: %w", err)
	}

	return t, nil
}

// GetActiveByDepartment implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) GetActiveByDepartment(ctx context.Context, department string) (*timing.OfficeTiming, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, department, start_time, end_time, grace_minutes, is_active, created_at, updated_at
		FROM office_timings
		WHERE department = $1
		  AND is_active = TRUE
		LIMIT 1
	`

	var t timing.OfficeTiming
	err := q.QueryRow(ctx, query, department).Scan(
		&t.ID, &t.Department, &t.StartTime, &t.EndTime, &t.GraceMinutes,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get office timing by department: %w", err)
	}

	return &t, nil
}

// GetActiveDefault implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) GetActiveDefault(ctx context.Context) (*timing.OfficeTiming, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, department, start_time, end_time, grace_minutes, is_active, created_at, updated_at
		FROM office_timings
		WHERE department IS NULL
		  AND is_active = TRUE
		LIMIT 1
	`

	var t timing.OfficeTiming
	err := q.QueryRow(ctx, query).Scan(
		&t.ID, &t.Department, &t.StartTime, &t.EndTime, &t.GraceMinutes,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default office timing: %w", err)
	}

	return &t, nil
}

// List implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) List(ctx context.Context) ([]timing.OfficeTiming, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, department, start_time, end_time, grace_minutes, is_active, created_at, updated_at
		FROM office_timings
		ORDER BY department NULLS FIRST
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list office timings: %w", err)
	}
	defer rows.Close()

	var timings []timing.OfficeTiming
	for rows.Next() {
		var t timing.OfficeTiming
		err := rows.Scan(
			&t.ID, &t.Department, &t.StartTime, &t.EndTime, &t.GraceMinutes,
			&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office timing: %w", err)
		}
		timings = append(timings, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate office timing rows: %w", err)
	}

	return timings, nil
}

// Update implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) Update(ctx context.Context, t timing.OfficeTiming) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE office_timings
		SET start_time = $2,
			end_time = $3,
			grace_minutes = $4,
			is_active = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, t.ID, t.StartTime, t.EndTime, t.GraceMinutes, t.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update office timing: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return timing.ErrTimingNotFound
	}

	return nil
}

// Delete implements timing.OfficeTimingRepository.
func (o *officeTimingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, o.db)

	tag, err := q.Exec(ctx, `DELETE FROM office_timings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete office timing: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return timing.ErrTimingNotFound
	}

	return nil
}
