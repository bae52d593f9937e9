package payroll

import (
	"github.com/shopspring/decimal"
)

// ReportRow is one labourer's computed payout line for a date range.
// Invariants, held exactly (unrounded):
//
//	NetPayable         = TotalSalary - TotalAdvance
//	UpdatedLoanBalance = CurrentLoan - LoanRepayment + NewLoan  (>= 0)
//	FinalAmountPaid    = NetPayable - LoanRepayment + NewLoan
type ReportRow struct {
	LabourerID         string
	FullName           string
	PresentDays        int
	HalfDays           int
	TotalSalary        decimal.Decimal
	TotalAdvance       decimal.Decimal
	NetPayable         decimal.Decimal
	CurrentLoan        decimal.Decimal
	LoanRepayment      decimal.Decimal
	NewLoan            decimal.Decimal
	UpdatedLoanBalance decimal.Decimal
	FinalAmountPaid    decimal.Decimal
}

// ReportTotals sums the money columns across all rows.
type ReportTotals struct {
	TotalSalary     decimal.Decimal
	TotalAdvance    decimal.Decimal
	NetPayable      decimal.Decimal
	LoanRepayment   decimal.Decimal
	NewLoan         decimal.Decimal
	FinalAmountPaid decimal.Decimal
}

// Adjustment carries the operator's loan decision for one labourer. Both
// values are manual inputs, never derived from net payable.
type Adjustment struct {
	LoanRepayment decimal.Decimal
	NewLoan       decimal.Decimal
}
