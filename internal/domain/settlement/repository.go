package settlement

import "context"

// SettlementRepository persists frozen payroll reports.
type SettlementRepository interface {
	// Create writes the settlement and applies every row's loan-balance
	// delta to the labourer inside one transaction. Either all of it is
	// persisted or none of it is. Overlapping ranges fail with
	// ErrDuplicateSettlementRange.
	Create(ctx context.Context, s Settlement) (Settlement, error)

	// List retrieves settlement headers newest-first by created_at
	List(ctx context.Context, page, limit int) ([]Settlement, int64, error)

	// GetByID retrieves a settlement with its frozen rows, unchanged
	// regardless of later labourer or attendance mutation
	GetByID(ctx context.Context, id string) (Settlement, error)
}
