package payroll

import (
	"testing"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testLabourer(id, name, dailySalary, loanBalance string) labourer.Labourer {
	wage := dec(dailySalary)
	return labourer.Labourer{
		ID:          id,
		FullName:    name,
		DailySalary: &wage,
		LoanBalance: dec(loanBalance),
	}
}

func TestComputeRow(t *testing.T) {
	t.Run("half days earn half a wage day", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "500", "0")
		agg := attendance.Aggregate{
			LabourerID:   "lab-1",
			PresentDays:  4,
			HalfDays:     2,
			TotalAdvance: dec("300"),
		}

		row, err := ComputeRow(lab, agg, payroll.Adjustment{})
		require.NoError(t, err)

		// 500 * (4 + 0.5*2) = 2500
		assert.True(t, dec("2500").Equal(row.TotalSalary), "total salary = %s", row.TotalSalary)
		assert.True(t, dec("2200").Equal(row.NetPayable), "net payable = %s", row.NetPayable)
		assert.True(t, dec("2200").Equal(row.FinalAmountPaid))
	})

	t.Run("advance larger than salary leaves a negative net payable", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "500", "0")
		agg := attendance.Aggregate{
			LabourerID:   "lab-1",
			PresentDays:  1,
			TotalAdvance: dec("800"),
		}

		row, err := ComputeRow(lab, agg, payroll.Adjustment{})
		require.NoError(t, err)

		assert.True(t, dec("-300").Equal(row.NetPayable))
	})

	t.Run("full repayment zeroes the loan balance", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "500", "1000")
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 5}
		adj := payroll.Adjustment{LoanRepayment: dec("1000")}

		row, err := ComputeRow(lab, agg, adj)
		require.NoError(t, err)

		assert.True(t, row.UpdatedLoanBalance.IsZero())
		// 2500 - 1000
		assert.True(t, dec("1500").Equal(row.FinalAmountPaid))
	})

	t.Run("repayment beyond the balance is rejected, not clamped", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "500", "1000")
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 5}
		adj := payroll.Adjustment{LoanRepayment: dec("1500")}

		_, err := ComputeRow(lab, agg, adj)
		assert.ErrorIs(t, err, payroll.ErrInvalidLoanAdjustment)
	})

	t.Run("a new loan cannot mask an over-repayment", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "500", "100")
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 5}
		// Net balance would land at +50, but 150 repaid against a 100 loan
		// is still wrong.
		adj := payroll.Adjustment{LoanRepayment: dec("150"), NewLoan: dec("100")}

		_, err := ComputeRow(lab, agg, adj)
		assert.ErrorIs(t, err, payroll.ErrInvalidLoanAdjustment)
	})

	t.Run("new loan raises balance and payout together", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "500", "200")
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 2}
		adj := payroll.Adjustment{LoanRepayment: dec("200"), NewLoan: dec("600")}

		row, err := ComputeRow(lab, agg, adj)
		require.NoError(t, err)

		// 200 - 200 + 600
		assert.True(t, dec("600").Equal(row.UpdatedLoanBalance))
		// 1000 - 200 + 600
		assert.True(t, dec("1400").Equal(row.FinalAmountPaid))
	})

	t.Run("missing daily wage fails", func(t *testing.T) {
		lab := labourer.Labourer{ID: "lab-1", FullName: "Ramesh"}
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 3}

		_, err := ComputeRow(lab, agg, payroll.Adjustment{})
		assert.ErrorIs(t, err, payroll.ErrMissingWorkerData)
	})

	t.Run("negative daily wage fails", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "-100", "0")
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 3}

		_, err := ComputeRow(lab, agg, payroll.Adjustment{})
		assert.ErrorIs(t, err, payroll.ErrMissingWorkerData)
	})

	t.Run("fractional wage stays exact until display rounding", func(t *testing.T) {
		lab := testLabourer("lab-1", "Ramesh", "333.33", "0")
		agg := attendance.Aggregate{LabourerID: "lab-1", PresentDays: 0, HalfDays: 1}

		row, err := ComputeRow(lab, agg, payroll.Adjustment{})
		require.NoError(t, err)

		assert.True(t, dec("166.665").Equal(row.TotalSalary))
		resp := payroll.ToRowResponse(row)
		assert.True(t, dec("166.67").Equal(resp.TotalSalary))
	})
}

func TestBuildReport(t *testing.T) {
	t.Run("sums totals across rows", func(t *testing.T) {
		labs := []labourer.Labourer{
			testLabourer("lab-1", "Ramesh", "500", "1000"),
			testLabourer("lab-2", "Suresh", "400", "0"),
		}
		aggs := []attendance.Aggregate{
			{LabourerID: "lab-1", PresentDays: 4, HalfDays: 2, TotalAdvance: dec("300")},
			{LabourerID: "lab-2", PresentDays: 5, TotalAdvance: dec("100")},
		}
		adjs := map[string]payroll.Adjustment{
			"lab-1": {LoanRepayment: dec("500")},
		}

		rows, totals, err := BuildReport(labs, aggs, adjs)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		// 2500 + 2000
		assert.True(t, dec("4500").Equal(totals.TotalSalary))
		assert.True(t, dec("400").Equal(totals.TotalAdvance))
		// (2200 - 500) + 1900
		assert.True(t, dec("3600").Equal(totals.FinalAmountPaid))
		assert.True(t, dec("500").Equal(totals.LoanRepayment))
	})

	t.Run("labourer with no attendance still gets a zero row", func(t *testing.T) {
		labs := []labourer.Labourer{
			testLabourer("lab-1", "Ramesh", "500", "1000"),
		}
		adjs := map[string]payroll.Adjustment{
			"lab-1": {LoanRepayment: dec("500")},
		}

		rows, totals, err := BuildReport(labs, nil, adjs)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.True(t, rows[0].TotalSalary.IsZero())
		assert.True(t, rows[0].NetPayable.IsZero())
		assert.True(t, dec("500").Equal(rows[0].UpdatedLoanBalance))
		assert.True(t, dec("-500").Equal(rows[0].FinalAmountPaid))
		assert.True(t, dec("500").Equal(totals.LoanRepayment))
	})

	t.Run("adjustment matching no labourer fails instead of vanishing", func(t *testing.T) {
		labs := []labourer.Labourer{
			testLabourer("lab-1", "Ramesh", "500", "1000"),
		}
		adjs := map[string]payroll.Adjustment{
			"ghost": {LoanRepayment: dec("500")},
		}

		_, _, err := BuildReport(labs, nil, adjs)
		assert.ErrorIs(t, err, payroll.ErrMissingWorkerData)
	})

	t.Run("empty roster yields empty rows and zero totals", func(t *testing.T) {
		rows, totals, err := BuildReport(nil, nil, nil)
		require.NoError(t, err)

		assert.Empty(t, rows)
		assert.True(t, totals.TotalSalary.IsZero())
		assert.True(t, totals.FinalAmountPaid.IsZero())
	})

	t.Run("aggregate without a labourer record fails", func(t *testing.T) {
		aggs := []attendance.Aggregate{{LabourerID: "ghost", PresentDays: 1}}

		_, _, err := BuildReport(nil, aggs, nil)
		assert.ErrorIs(t, err, payroll.ErrMissingWorkerData)
	})

	t.Run("one bad row fails the whole report", func(t *testing.T) {
		labs := []labourer.Labourer{
			testLabourer("lab-1", "Ramesh", "500", "100"),
			testLabourer("lab-2", "Suresh", "400", "0"),
		}
		aggs := []attendance.Aggregate{
			{LabourerID: "lab-1", PresentDays: 4},
			{LabourerID: "lab-2", PresentDays: 5},
		}
		adjs := map[string]payroll.Adjustment{
			"lab-1": {LoanRepayment: dec("200")},
		}

		_, _, err := BuildReport(labs, aggs, adjs)
		assert.ErrorIs(t, err, payroll.ErrInvalidLoanAdjustment)
	})
}
