package payroll

import (
	"github.com/shopspring/decimal"
)

// ReportRowResponse is a ReportRow rounded to 2 fraction digits. Rounding
// happens here, at the boundary, never inside the calculator.
type ReportRowResponse struct {
	LabourerID         string          `json:"labourer_id"`
	FullName           string          `json:"full_name"`
	PresentDays        int             `json:"present_days"`
	HalfDays           int             `json:"half_days"`
	TotalSalary        decimal.Decimal `json:"total_salary"`
	TotalAdvance       decimal.Decimal `json:"total_advance"`
	NetPayable         decimal.Decimal `json:"net_payable"`
	CurrentLoan        decimal.Decimal `json:"current_loan"`
	LoanRepayment      decimal.Decimal `json:"loan_repayment"`
	NewLoan            decimal.Decimal `json:"new_loan"`
	UpdatedLoanBalance decimal.Decimal `json:"updated_loan_balance"`
	FinalAmountPaid    decimal.Decimal `json:"final_amount_paid"`
}

type ReportTotalsResponse struct {
	TotalSalary     decimal.Decimal `json:"total_salary"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
	NetPayable      decimal.Decimal `json:"net_payable"`
	LoanRepayment   decimal.Decimal `json:"loan_repayment"`
	NewLoan         decimal.Decimal `json:"new_loan"`
	FinalAmountPaid decimal.Decimal `json:"final_amount_paid"`
}

type ReportResponse struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Rows      []ReportRowResponse  `json:"rows"`
	Totals    ReportTotalsResponse `json:"totals"`
}

func ToRowResponse(r ReportRow) ReportRowResponse {
	return ReportRowResponse{
		LabourerID:         r.LabourerID,
		FullName:           r.FullName,
		PresentDays:        r.PresentDays,
		HalfDays:           r.HalfDays,
		TotalSalary:        r.TotalSalary.Round(2),
		TotalAdvance:       r.TotalAdvance.Round(2),
		NetPayable:         r.NetPayable.Round(2),
		CurrentLoan:        r.CurrentLoan.Round(2),
		LoanRepayment:      r.LoanRepayment.Round(2),
		NewLoan:            r.NewLoan.Round(2),
		UpdatedLoanBalance: r.UpdatedLoanBalance.Round(2),
		FinalAmountPaid:    r.FinalAmountPaid.Round(2),
	}
}

func ToTotalsResponse(t ReportTotals) ReportTotalsResponse {
	return ReportTotalsResponse{
		TotalSalary:     t.TotalSalary.Round(2),
		TotalAdvance:    t.TotalAdvance.Round(2),
		NetPayable:      t.NetPayable.Round(2),
		LoanRepayment:   t.LoanRepayment.Round(2),
		NewLoan:         t.NewLoan.Round(2),
		FinalAmountPaid: t.FinalAmountPaid.Round(2),
	}
}
