package payroll

import "errors"

var (
	ErrInvalidLoanAdjustment = errors.New("loan repayment exceeds current balance")
	ErrMissingWorkerData     = errors.New("labourer wage data is missing or invalid")
	ErrInvalidRange          = errors.New("invalid report date range")
)
