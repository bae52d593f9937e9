package labourer

import (
	"context"

	"github.com/shopspring/decimal"
)

// LabourerRepository defines data access methods for labourer master data.
type LabourerRepository interface {
	// Create inserts a new labourer
	Create(ctx context.Context, lab Labourer) (Labourer, error)

	// GetByID retrieves a labourer by ID
	GetByID(ctx context.Context, id string) (Labourer, error)

	// List retrieves labourers with filters and pagination
	List(ctx context.Context, filter LabourerFilter) ([]Labourer, int64, error)

	// ListAll retrieves the full roster ordered by name. Reports and
	// summaries cover every labourer, attendance or not.
	ListAll(ctx context.Context) ([]Labourer, error)

	// ListByIDs retrieves labourers for the given ids, unordered
	ListByIDs(ctx context.Context, ids []string) ([]Labourer, error)

	// Update updates master data fields (loan balance excluded; see AdjustLoanBalance)
	Update(ctx context.Context, lab Labourer) error

	// Delete removes a labourer
	Delete(ctx context.Context, id string) error

	// AdjustLoanBalance applies a signed delta to loan_balance and returns the new balance.
	// The only write path for loan_balance besides settlement.
	AdjustLoanBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}
