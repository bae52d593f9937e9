package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

const labourerColumns = `
	id, full_name, father_name, mobile,
	aadhaar_number, pan_number, dl_number,
	aadhaar_doc_url, pan_doc_url, dl_doc_url,
	daily_salary, loan_balance, profile_photo_url, face_scan_data_uri,
	cohort_group, created_at, updated_at
`

type labourerRepository struct {
	db *database.DB
}

func NewLabourerRepository(db *database.DB) labourer.LabourerRepository {
	return &labourerRepository{db: db}
}

func scanLabourer(row pgx.Row) (labourer.Labourer, error) {
	var lab labourer.Labourer
	err := row.Scan(
		&lab.ID, &lab.FullName, &lab.FatherName, &lab.Mobile,
		&lab.AadhaarNumber, &lab.PANNumber, &lab.DLNumber,
		&lab.AadhaarDocURL, &lab.PANDocURL, &lab.DLDocURL,
		&lab.DailySalary, &lab.LoanBalance, &lab.ProfilePhotoURL, &lab.FaceScanDataURI,
		&lab.CohortGroup, &lab.CreatedAt, &lab.UpdatedAt,
	)
	return lab, err
}

// Create implements labourer.LabourerRepository.
func (r *labourerRepository) Create(ctx context.Context, lab labourer.Labourer) (labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO labourers (
			full_name, father_name, mobile,
			aadhaar_number, pan_number, dl_number,
			aadhaar_doc_url, pan_doc_url, dl_doc_url,
			daily_salary, loan_balance, profile_photo_url, face_scan_data_uri,
			cohort_group
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lab.FullName,
		lab.FatherName,
		lab.Mobile,
		lab.AadhaarNumber,
		lab.PANNumber,
		lab.DLNumber,
		lab.AadhaarDocURL,
		lab.PANDocURL,
		lab.DLDocURL,
		lab.DailySalary,
		lab.LoanBalance,
		lab.ProfilePhotoURL,
		lab.FaceScanDataURI,
		lab.CohortGroup,
	).Scan(&lab.ID, &lab.CreatedAt, &lab.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "labourers_mobile_key":
				return labourer.Labourer{}, labourer.ErrMobileExists
			case "labourers_aadhaar_number_key":
				return labourer.Labourer{}, labourer.ErrAadhaarExists
			}
		}
		return labourer.Labourer{}, fmt.Errorf("failed to create labourer: %w", err)
	}

	return lab, nil
}

// GetByID implements labourer.LabourerRepository.
func (r *labourerRepository) GetByID(ctx context.Context, id string) (labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + labourerColumns + ` FROM labourers WHERE id = $1`

	lab, err := scanLabourer(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labourer.Labourer{}, labourer.ErrLabourerNotFound
		}
		return labourer.Labourer{}, fmt.Errorf("failed to get labourer by ID: %w", err)
	}

	return lab, nil
}

// List implements labourer.LabourerRepository.
func (r *labourerRepository) List(ctx context.Context, filter labourer.LabourerFilter) ([]labourer.Labourer, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (full_name ILIKE $%d OR mobile ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.CohortGroup != nil && *filter.CohortGroup != "" {
		baseWhere += fmt.Sprintf(" AND cohort_group = $%d", argIdx)
		args = append(args, *filter.CohortGroup)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM labourers WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count labourers: %w", err)
	}

	orderByField := "created_at"
	switch filter.SortBy {
	case "full_name":
		orderByField = "full_name"
	case "daily_salary":
		orderByField = "daily_salary"
	case "loan_balance":
		orderByField = "loan_balance"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM labourers
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, labourerColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query labourers: %w", err)
	}
	defer rows.Close()

	var labourers []labourer.Labourer
	for rows.Next() {
		lab, err := scanLabourer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan labourer: %w", err)
		}
		labourers = append(labourers, lab)
	}

	return labourers, total, nil
}

// ListAll implements labourer.LabourerRepository.
func (r *labourerRepository) ListAll(ctx context.Context) ([]labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + labourerColumns + ` FROM labourers ORDER BY full_name, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all labourers: %w", err)
	}
	defer rows.Close()

	var labourers []labourer.Labourer
	for rows.Next() {
		lab, err := scanLabourer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan labourer: %w", err)
		}
		labourers = append(labourers, lab)
	}

	return labourers, nil
}

// ListByIDs implements labourer.LabourerRepository.
func (r *labourerRepository) ListByIDs(ctx context.Context, ids []string) ([]labourer.Labourer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + labourerColumns + ` FROM labourers WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query labourers by ids: %w", err)
	}
	defer rows.Close()

	var labourers []labourer.Labourer
	for rows.Next() {
		lab, err := scanLabourer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan labourer: %w", err)
		}
		labourers = append(labourers, lab)
	}

	return labourers, nil
}

// Update implements labourer.LabourerRepository.
func (r *labourerRepository) Update(ctx context.Context, lab labourer.Labourer) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE labourers SET
			full_name = $1, father_name = $2, mobile = $3,
			aadhaar_number = $4, pan_number = $5, dl_number = $6,
			aadhaar_doc_url = $7, pan_doc_url = $8, dl_doc_url = $9,
			daily_salary = $10, profile_photo_url = $11, face_scan_data_uri = $12,
			cohort_group = $13, updated_at = $14
		WHERE id = $15
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		lab.FullName, lab.FatherName, lab.Mobile,
		lab.AadhaarNumber, lab.PANNumber, lab.DLNumber,
		lab.AadhaarDocURL, lab.PANDocURL, lab.DLDocURL,
		lab.DailySalary, lab.ProfilePhotoURL, lab.FaceScanDataURI,
		lab.CohortGroup, time.Now(), lab.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labourer.ErrLabourerNotFound
		}
		return fmt.Errorf("failed to update labourer: %w", err)
	}

	return nil
}

// Delete implements labourer.LabourerRepository.
func (r *labourerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM labourers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete labourer: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return labourer.ErrLabourerNotFound
	}

	return nil
}

// AdjustLoanBalance implements labourer.LabourerRepository.
func (r *labourerRepository) AdjustLoanBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE labourers
		SET loan_balance = loan_balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING loan_balance
	`

	var newBalance decimal.Decimal
	err := q.QueryRow(ctx, query, delta, id).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, labourer.ErrLabourerNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to adjust loan balance: %w", err)
	}

	return newBalance, nil
}
