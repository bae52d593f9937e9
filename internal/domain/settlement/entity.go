package settlement

import (
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
)

// Settlement is a frozen payroll report for a date range. Once written it is
// never updated or deleted; corrections happen through new loan transactions.
type Settlement struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Rows      []payroll.ReportRow
	Totals    payroll.ReportTotals
	CreatedAt time.Time
}
