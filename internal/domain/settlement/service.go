package settlement

import "context"

type SettlementService interface {
	// Create recomputes the report for the range, applies the operator's
	// loan adjustments and freezes the result. Loan balances move in the
	// same transaction that stores the settlement.
	Create(ctx context.Context, req CreateSettlementRequest) (SettlementResponse, error)

	// List returns settlement headers newest-first.
	List(ctx context.Context, page, limit int) (ListSettlementResponse, error)

	// GetByID returns a settlement with its frozen rows.
	GetByID(ctx context.Context, id string) (SettlementResponse, error)
}
