package loan

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/loan"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
	"github.com/shairahamancsc/labourpro-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type LoanServiceImpl struct {
	db           *database.DB
	loanRepo     loan.LoanRepository
	labourerRepo labourer.LabourerRepository
}

func NewLoanService(
	db *database.DB,
	loanRepo loan.LoanRepository,
	labourerRepo labourer.LabourerRepository,
) loan.LoanService {
	return &LoanServiceImpl{
		db:           db,
		loanRepo:     loanRepo,
		labourerRepo: labourerRepo,
	}
}

// Apply writes the ledger entry and the balance delta in one transaction so
// the ledger always sums to the stored balance. A mid-cycle correction may
// push the balance negative here: the labourer overpaid and is owed the
// difference, which the next settlement absorbs.
func (s *LoanServiceImpl) Apply(ctx context.Context, req loan.ApplyTransactionRequest) (loan.ApplyTransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.ApplyTransactionResponse{}, err
	}

	if _, err := s.labourerRepo.GetByID(ctx, req.LabourerID); err != nil {
		return loan.ApplyTransactionResponse{}, err
	}

	var created loan.Transaction
	var newBalance decimal.Decimal
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		var err error
		created, err = s.loanRepo.Create(txCtx, loan.Transaction{
			LabourerID: req.LabourerID,
			Amount:     req.Amount,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}

		newBalance, err = s.labourerRepo.AdjustLoanBalance(txCtx, req.LabourerID, req.Amount)
		return err
	})
	if err != nil {
		return loan.ApplyTransactionResponse{}, err
	}

	return loan.ApplyTransactionResponse{
		Transaction: toTransactionResponse(created),
		NewBalance:  newBalance,
	}, nil
}

func (s *LoanServiceImpl) List(ctx context.Context, labourerID *string, page, limit int) (loan.ListTransactionResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	txns, total, err := s.loanRepo.List(ctx, labourerID, page, limit)
	if err != nil {
		return loan.ListTransactionResponse{}, err
	}

	resp := loan.ListTransactionResponse{
		Data:       make([]loan.TransactionResponse, 0, len(txns)),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}
	for _, txn := range txns {
		resp.Data = append(resp.Data, toTransactionResponse(txn))
	}
	return resp, nil
}

func toTransactionResponse(txn loan.Transaction) loan.TransactionResponse {
	name := ""
	if txn.LabourerName != nil {
		name = *txn.LabourerName
	}
	return loan.TransactionResponse{
		ID:           txn.ID,
		LabourerID:   txn.LabourerID,
		LabourerName: name,
		Amount:       txn.Amount,
		Notes:        txn.Notes,
		CreatedAt:    txn.CreatedAt.Format(time.RFC3339),
	}
}
