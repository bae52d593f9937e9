package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/loan"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

// Create implements loan.LoanRepository.
func (r *loanRepository) Create(ctx context.Context, txn loan.Transaction) (loan.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loan_transactions (labourer_id, amount, notes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, txn.LabourerID, txn.Amount, txn.Notes).
		Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return loan.Transaction{}, labourer.ErrLabourerNotFound
		}
		return loan.Transaction{}, fmt.Errorf("failed to create loan transaction: %w", err)
	}

	return txn, nil
}

// List implements loan.LoanRepository.
func (r *loanRepository) List(ctx context.Context, labourerID *string, page, limit int) ([]loan.Transaction, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	args := []any{}
	if labourerID != nil {
		where = "WHERE t.labourer_id = $1"
		args = append(args, *labourerID)
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM loan_transactions t %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loan transactions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.labourer_id, t.amount, t.notes, t.created_at,
			   l.full_name AS labourer_name
		FROM loan_transactions t
		LEFT JOIN labourers l ON l.id = t.labourer_id
		%s
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loan transactions: %w", err)
	}
	defer rows.Close()

	var txns []loan.Transaction
	for rows.Next() {
		var txn loan.Transaction
		err := rows.Scan(&txn.ID, &txn.LabourerID, &txn.Amount, &txn.Notes, &txn.CreatedAt, &txn.LabourerName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan loan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	return txns, total, nil
}
