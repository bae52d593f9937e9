package loan

import "context"

type LoanService interface {
	// Apply records a ledger entry and moves the labourer's balance by the
	// signed amount, both in one transaction.
	Apply(ctx context.Context, req ApplyTransactionRequest) (ApplyTransactionResponse, error)

	// List returns ledger entries newest-first, optionally for one labourer.
	List(ctx context.Context, labourerID *string, page, limit int) (ListTransactionResponse, error)
}
