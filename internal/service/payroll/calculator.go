package payroll

import (
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var halfDayWeight = decimal.New(5, -1) // 0.5

// ComputeRow derives one labourer's payout line from the attendance rollup
// and the operator's loan adjustment. All arithmetic stays unrounded;
// callers round for display only.
//
// A repayment larger than the current balance is rejected, never clamped:
// the operator must see the mistake, not have it papered over.
func ComputeRow(lab labourer.Labourer, agg attendance.Aggregate, adj payroll.Adjustment) (payroll.ReportRow, error) {
	if lab.DailySalary == nil || lab.DailySalary.IsNegative() {
		return payroll.ReportRow{}, payroll.ErrMissingWorkerData
	}
	if adj.LoanRepayment.IsNegative() || adj.NewLoan.IsNegative() {
		return payroll.ReportRow{}, payroll.ErrInvalidLoanAdjustment
	}
	// The repayment is bounded by the balance on its own; a new loan in the
	// same row must not mask an over-repayment.
	if adj.LoanRepayment.GreaterThan(lab.LoanBalance) {
		return payroll.ReportRow{}, payroll.ErrInvalidLoanAdjustment
	}

	wageDays := decimal.NewFromInt(int64(agg.PresentDays)).
		Add(halfDayWeight.Mul(decimal.NewFromInt(int64(agg.HalfDays))))
	totalSalary := lab.DailySalary.Mul(wageDays)

	// Net payable may go negative when advances exceed the earned salary;
	// the labourer owes the difference.
	netPayable := totalSalary.Sub(agg.TotalAdvance)

	// Cannot go negative: repayment <= balance and newLoan >= 0 are both
	// checked above.
	updatedLoan := lab.LoanBalance.Sub(adj.LoanRepayment).Add(adj.NewLoan)

	finalPaid := netPayable.Sub(adj.LoanRepayment).Add(adj.NewLoan)

	return payroll.ReportRow{
		LabourerID:         lab.ID,
		FullName:           lab.FullName,
		PresentDays:        agg.PresentDays,
		HalfDays:           agg.HalfDays,
		TotalSalary:        totalSalary,
		TotalAdvance:       agg.TotalAdvance,
		NetPayable:         netPayable,
		CurrentLoan:        lab.LoanBalance,
		LoanRepayment:      adj.LoanRepayment,
		NewLoan:            adj.NewLoan,
		UpdatedLoanBalance: updatedLoan,
		FinalAmountPaid:    finalPaid,
	}, nil
}

// BuildReport computes a row per labourer, in the order supplied. A labourer
// with no attendance in the range still gets an all-zero row, so an
// operator's loan adjustment for them is applied rather than dropped. An
// aggregate or adjustment that matches no supplied labourer fails the whole
// report. An empty labourer set yields an empty report with zero totals.
func BuildReport(labs []labourer.Labourer, aggs []attendance.Aggregate, adjustments map[string]payroll.Adjustment) ([]payroll.ReportRow, payroll.ReportTotals, error) {
	known := make(map[string]bool, len(labs))
	for _, lab := range labs {
		known[lab.ID] = true
	}

	aggByID := make(map[string]attendance.Aggregate, len(aggs))
	for _, agg := range aggs {
		if !known[agg.LabourerID] {
			return nil, payroll.ReportTotals{}, payroll.ErrMissingWorkerData
		}
		aggByID[agg.LabourerID] = agg
	}
	for id := range adjustments {
		if !known[id] {
			return nil, payroll.ReportTotals{}, payroll.ErrMissingWorkerData
		}
	}

	rows := make([]payroll.ReportRow, 0, len(labs))
	var totals payroll.ReportTotals
	for _, lab := range labs {
		row, err := ComputeRow(lab, aggByID[lab.ID], adjustments[lab.ID])
		if err != nil {
			return nil, payroll.ReportTotals{}, err
		}
		rows = append(rows, row)

		totals.TotalSalary = totals.TotalSalary.Add(row.TotalSalary)
		totals.TotalAdvance = totals.TotalAdvance.Add(row.TotalAdvance)
		totals.NetPayable = totals.NetPayable.Add(row.NetPayable)
		totals.LoanRepayment = totals.LoanRepayment.Add(row.LoanRepayment)
		totals.NewLoan = totals.NewLoan.Add(row.NewLoan)
		totals.FinalAmountPaid = totals.FinalAmountPaid.Add(row.FinalAmountPaid)
	}

	return rows, totals, nil
}
