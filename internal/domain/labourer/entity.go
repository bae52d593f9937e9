package labourer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Labourer struct {
	ID              string
	FullName        string
	FatherName      *string
	Mobile          *string
	AadhaarNumber   *string
	PANNumber       *string
	DLNumber        *string
	AadhaarDocURL   *string
	PANDocURL       *string
	DLDocURL        *string
	DailySalary     *decimal.Decimal
	LoanBalance     decimal.Decimal
	ProfilePhotoURL *string
	FaceScanDataURI *string
	CohortGroup     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
