package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the daily attendance status. A half day contributes 0.5 of a
// wage-day; an absent day contributes nothing but may still carry an advance.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// DailyRecord is one labourer's attendance row for one calendar date.
// At most one row exists per (date, labourer); the table enforces it.
type DailyRecord struct {
	ID         string
	Date       time.Time
	LabourerID string
	Status     Status
	Advance    decimal.Decimal
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	LabourerName *string
}

// Aggregate is the per-labourer rollup over a date range that feeds the
// payroll calculator.
type Aggregate struct {
	LabourerID   string
	PresentDays  int
	HalfDays     int
	TotalAdvance decimal.Decimal
}
