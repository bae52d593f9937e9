package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/settlement"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

// rowDoc is the frozen JSONB shape of one report row. Kept separate from the
// domain type so later entity changes cannot silently rewrite stored history.
type rowDoc struct {
	LabourerID         string          `json:"labourer_id"`
	FullName           string          `json:"full_name"`
	PresentDays        int             `json:"present_days"`
	HalfDays           int             `json:"half_days"`
	TotalSalary        decimal.Decimal `json:"total_salary"`
	TotalAdvance       decimal.Decimal `json:"total_advance"`
	NetPayable         decimal.Decimal `json:"net_payable"`
	CurrentLoan        decimal.Decimal `json:"current_loan"`
	LoanRepayment      decimal.Decimal `json:"loan_repayment"`
	NewLoan            decimal.Decimal `json:"new_loan"`
	UpdatedLoanBalance decimal.Decimal `json:"updated_loan_balance"`
	FinalAmountPaid    decimal.Decimal `json:"final_amount_paid"`
}

type totalsDoc struct {
	TotalSalary     decimal.Decimal `json:"total_salary"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
	NetPayable      decimal.Decimal `json:"net_payable"`
	LoanRepayment   decimal.Decimal `json:"loan_repayment"`
	NewLoan         decimal.Decimal `json:"new_loan"`
	FinalAmountPaid decimal.Decimal `json:"final_amount_paid"`
}

func toRowDocs(rows []payroll.ReportRow) []rowDoc {
	docs := make([]rowDoc, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, rowDoc(r))
	}
	return docs
}

func fromRowDocs(docs []rowDoc) []payroll.ReportRow {
	rows := make([]payroll.ReportRow, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, payroll.ReportRow(d))
	}
	return rows
}

// Create implements settlement.SettlementRepository. The settlement insert
// and every labourer's loan-balance delta run in one transaction; any
// failure rolls the whole thing back. Infrastructure failures surface as
// ErrStoreUnavailable so callers can tell them from domain rejections.
func (r *settlementRepository) Create(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	rowsJSON, err := json.Marshal(toRowDocs(s.Rows))
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to marshal report rows: %w", err)
	}
	totalsJSON, err := json.Marshal(totalsDoc(s.Totals))
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to marshal report totals: %w", err)
	}

	err = WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := WithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		var overlaps bool
		err := q.QueryRow(txCtx,
			`SELECT EXISTS (SELECT 1 FROM settlements WHERE start_date <= $2 AND end_date >= $1)`,
			s.StartDate, s.EndDate,
		).Scan(&overlaps)
		if err != nil {
			return fmt.Errorf("failed to check settlement overlap: %w", err)
		}
		if overlaps {
			return settlement.ErrDuplicateSettlementRange
		}

		err = q.QueryRow(txCtx, `
			INSERT INTO settlements (start_date, end_date, report_data, overall_totals)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`, s.StartDate, s.EndDate, rowsJSON, totalsJSON).Scan(&s.ID, &s.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return settlement.ErrDuplicateSettlementRange
			}
			return fmt.Errorf("failed to insert settlement: %w", err)
		}

		for _, row := range s.Rows {
			delta := row.NewLoan.Sub(row.LoanRepayment)
			if delta.IsZero() {
				continue
			}
			tag, err := q.Exec(txCtx,
				`UPDATE labourers SET loan_balance = loan_balance + $1, updated_at = NOW() WHERE id = $2`,
				delta, row.LabourerID,
			)
			if err != nil {
				return fmt.Errorf("failed to apply loan delta for labourer %s: %w", row.LabourerID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("failed to apply loan delta: labourer %s not found", row.LabourerID)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, settlement.ErrDuplicateSettlementRange) {
			return settlement.Settlement{}, err
		}
		return settlement.Settlement{}, fmt.Errorf("%w: %v", settlement.ErrStoreUnavailable, err)
	}

	return s, nil
}

// List implements settlement.SettlementRepository. Frozen rows are left out
// of list results; GetByID returns them.
func (r *settlementRepository) List(ctx context.Context, page, limit int) ([]settlement.Settlement, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM settlements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, start_date, end_date, overall_totals, created_at
		FROM settlements
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.Settlement
	for rows.Next() {
		var s settlement.Settlement
		var totalsJSON []byte
		if err := rows.Scan(&s.ID, &s.StartDate, &s.EndDate, &totalsJSON, &s.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		var totals totalsDoc
		if err := json.Unmarshal(totalsJSON, &totals); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal settlement totals: %w", err)
		}
		s.Totals = payroll.ReportTotals(totals)
		settlements = append(settlements, s)
	}

	return settlements, total, nil
}

// GetByID implements settlement.SettlementRepository.
func (r *settlementRepository) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	var s settlement.Settlement
	var rowsJSON, totalsJSON []byte
	err := q.QueryRow(ctx, `
		SELECT id, start_date, end_date, report_data, overall_totals, created_at
		FROM settlements
		WHERE id = $1
	`, id).Scan(&s.ID, &s.StartDate, &s.EndDate, &rowsJSON, &totalsJSON, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	var docs []rowDoc
	if err := json.Unmarshal(rowsJSON, &docs); err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to unmarshal report rows: %w", err)
	}
	var totals totalsDoc
	if err := json.Unmarshal(totalsJSON, &totals); err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to unmarshal report totals: %w", err)
	}
	s.Rows = fromRowDocs(docs)
	s.Totals = payroll.ReportTotals(totals)

	return s, nil
}
