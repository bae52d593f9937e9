package loan

import "context"

// LoanRepository defines data access methods for the loan ledger.
// Balance mutation lives on labourer.LabourerRepository.AdjustLoanBalance so
// the insert and the balance delta can share one transaction.
type LoanRepository interface {
	// Create inserts a ledger entry
	Create(ctx context.Context, txn Transaction) (Transaction, error)

	// List retrieves ledger entries newest-first, optionally for one labourer
	List(ctx context.Context, labourerID *string, page, limit int) ([]Transaction, int64, error)
}
