package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one entry in a labourer's loan ledger. Amount is signed:
// positive issues a loan, negative records a repayment. Applying a
// transaction moves the labourer's loan balance by exactly Amount.
type Transaction struct {
	ID         string
	LabourerID string
	Amount     decimal.Decimal
	Notes      *string
	CreatedAt  time.Time

	// Joined fields
	LabourerName *string
}
