package loan

import (
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ApplyTransactionRequest struct {
	LabourerID string          `json:"labourer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *ApplyTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.LabourerID) {
		errs = append(errs, validator.ValidationError{Field: "labourer_id", Message: "must be a valid id"})
	}
	if r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must not be zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	ID           string          `json:"id"`
	LabourerID   string          `json:"labourer_id"`
	LabourerName string          `json:"labourer_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

type ApplyTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  decimal.Decimal     `json:"new_balance"`
}

type ListTransactionResponse struct {
	Data       []TransactionResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}
