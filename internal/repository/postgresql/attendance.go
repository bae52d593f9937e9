package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ReplaceDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) ReplaceDay(ctx context.Context, date time.Time, rows []attendance.DailyRecord) ([]attendance.DailyRecord, error) {
	var saved []attendance.DailyRecord

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := WithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM attendance_records WHERE date = $1`, date); err != nil {
			return fmt.Errorf("failed to clear day records: %w", err)
		}

		query := `
			INSERT INTO attendance_records (date, labourer_id, status, advance, remarks)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`

		for _, rec := range rows {
			rec.Date = date
			err := q.QueryRow(txCtx, query,
				date, rec.LabourerID, rec.Status, rec.Advance, rec.Remarks,
			).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return attendance.ErrDuplicateLabourerEntry
				}
				return fmt.Errorf("failed to insert attendance row: %w", err)
			}
			saved = append(saved, rec)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return saved, nil
}

const attendanceSelect = `
	SELECT a.id, a.date, a.labourer_id, a.status, a.advance, a.remarks,
		   a.created_at, a.updated_at,
		   l.full_name AS labourer_name
	FROM attendance_records a
	LEFT JOIN labourers l ON l.id = a.labourer_id
`

func scanAttendanceRows(rows pgx.Rows) ([]attendance.DailyRecord, error) {
	var records []attendance.DailyRecord
	for rows.Next() {
		var rec attendance.DailyRecord
		err := rows.Scan(
			&rec.ID, &rec.Date, &rec.LabourerID, &rec.Status, &rec.Advance, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.LabourerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByDate(ctx context.Context, date time.Time) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, attendanceSelect+` WHERE a.date = $1 ORDER BY a.created_at, a.id`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		attendanceSelect+` WHERE a.date >= $1 AND a.date <= $2 ORDER BY a.date, a.created_at, a.id`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}
