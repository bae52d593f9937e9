package settlement

import (
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RowAdjustmentRequest struct {
	LabourerID    string          `json:"labourer_id"`
	LoanRepayment decimal.Decimal `json:"loan_repayment"`
	NewLoan       decimal.Decimal `json:"new_loan"`
}

// CreateSettlementRequest carries the range and the operator's per-labourer
// loan decisions. The payout rows themselves are recomputed server-side from
// stored attendance and wage data before freezing.
type CreateSettlementRequest struct {
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Adjustments []RowAdjustmentRequest `json:"adjustments"`
}

func (r *CreateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	seen := make(map[string]bool, len(r.Adjustments))
	for i, a := range r.Adjustments {
		field := "adjustments[" + validator.Itoa(i) + "]"
		if !validator.IsValidUUID(a.LabourerID) {
			errs = append(errs, validator.ValidationError{Field: field + ".labourer_id", Message: "must be a valid id"})
		}
		if a.LoanRepayment.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".loan_repayment", Message: "must be non-negative"})
		}
		if a.NewLoan.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".new_loan", Message: "must be non-negative"})
		}
		if seen[a.LabourerID] {
			errs = append(errs, validator.ValidationError{Field: field + ".labourer_id", Message: "appears more than once"})
		}
		seen[a.LabourerID] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettlementResponse struct {
	ID        string                       `json:"id"`
	StartDate string                       `json:"start_date"`
	EndDate   string                       `json:"end_date"`
	Rows      []payroll.ReportRowResponse  `json:"report_data,omitempty"`
	Totals    payroll.ReportTotalsResponse `json:"overall_totals"`
	CreatedAt string                       `json:"created_at"`
}

type ListSettlementResponse struct {
	Data       []SettlementResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
