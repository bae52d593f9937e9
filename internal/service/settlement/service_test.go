package settlement

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/settlement"
	payrollsvc "github.com/shairahamancsc/labourpro-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	labID1 = "018f3f60-0000-7000-8000-000000000001"
	labID2 = "018f3f60-0000-7000-8000-000000000002"
)

type fakeAttendanceRepo struct {
	records []attendance.DailyRecord
}

func (f *fakeAttendanceRepo) ReplaceDay(ctx context.Context, date time.Time, rows []attendance.DailyRecord) ([]attendance.DailyRecord, error) {
	panic("not used")
}

func (f *fakeAttendanceRepo) GetByDate(ctx context.Context, date time.Time) ([]attendance.DailyRecord, error) {
	panic("not used")
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]attendance.DailyRecord, error) {
	var out []attendance.DailyRecord
	for _, rec := range f.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeLabourerRepo struct {
	labourer.LabourerRepository
	labourers map[string]labourer.Labourer
}

func (f *fakeLabourerRepo) ListAll(ctx context.Context) ([]labourer.Labourer, error) {
	ids := make([]string, 0, len(f.labourers))
	for id := range f.labourers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]labourer.Labourer, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.labourers[id])
	}
	return out, nil
}

type fakeSettlementRepo struct {
	created []settlement.Settlement
}

func (f *fakeSettlementRepo) Create(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	for _, existing := range f.created {
		if !s.StartDate.After(existing.EndDate) && !s.EndDate.Before(existing.StartDate) {
			return settlement.Settlement{}, settlement.ErrDuplicateSettlementRange
		}
	}
	s.ID = "018f3f60-0000-7000-8000-00000000aaaa"
	s.CreatedAt = time.Now()
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSettlementRepo) List(ctx context.Context, page, limit int) ([]settlement.Settlement, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeSettlementRepo) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	for _, s := range f.created {
		if s.ID == id {
			return s, nil
		}
	}
	return settlement.Settlement{}, settlement.ErrSettlementNotFound
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService() (settlement.SettlementService, *fakeSettlementRepo) {
	wage1 := dec("500")
	wage2 := dec("400")
	labRepo := &fakeLabourerRepo{labourers: map[string]labourer.Labourer{
		labID1: {ID: labID1, FullName: "Ramesh", DailySalary: &wage1, LoanBalance: dec("1000")},
		labID2: {ID: labID2, FullName: "Suresh", DailySalary: &wage2, LoanBalance: decimal.Zero},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.DailyRecord{
		{Date: day("2024-03-01"), LabourerID: labID1, Status: attendance.StatusPresent, Advance: dec("100")},
		{Date: day("2024-03-02"), LabourerID: labID1, Status: attendance.StatusHalfDay, Advance: decimal.Zero},
		{Date: day("2024-03-01"), LabourerID: labID2, Status: attendance.StatusPresent, Advance: decimal.Zero},
	}}

	settRepo := &fakeSettlementRepo{}
	payrollService := payrollsvc.NewPayrollService(attRepo, labRepo)
	return NewSettlementService(settRepo, payrollService), settRepo
}

func TestSettlementCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes rows server-side and freezes them", func(t *testing.T) {
		svc, repo := newTestService()

		resp, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
			Adjustments: []settlement.RowAdjustmentRequest{
				{LabourerID: labID1, LoanRepayment: dec("400")},
			},
		})
		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		require.Len(t, resp.Rows, 2)

		var row1 payroll.ReportRowResponse
		for _, row := range resp.Rows {
			if row.LabourerID == labID1 {
				row1 = row
			}
		}
		// 500 * 1.5 = 750 salary, minus 100 advance, minus 400 repayment
		assert.True(t, dec("750").Equal(row1.TotalSalary))
		assert.True(t, dec("650").Equal(row1.NetPayable))
		assert.True(t, dec("600").Equal(row1.UpdatedLoanBalance))
		assert.True(t, dec("250").Equal(row1.FinalAmountPaid))

		// 750 + 400
		assert.True(t, dec("1150").Equal(resp.Totals.TotalSalary))
	})

	t.Run("repayment beyond balance rejects the whole settlement", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
			Adjustments: []settlement.RowAdjustmentRequest{
				{LabourerID: labID1, LoanRepayment: dec("1500")},
			},
		})
		assert.ErrorIs(t, err, payroll.ErrInvalidLoanAdjustment)
		assert.Empty(t, repo.created)
	})

	t.Run("overlapping range is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-15",
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-03-10",
			EndDate:   "2024-03-20",
		})
		assert.ErrorIs(t, err, settlement.ErrDuplicateSettlementRange)
	})

	t.Run("loan decision survives a range without attendance", func(t *testing.T) {
		svc, repo := newTestService()

		resp, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			Adjustments: []settlement.RowAdjustmentRequest{
				{LabourerID: labID1, LoanRepayment: dec("400")},
			},
		})
		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		require.Len(t, resp.Rows, 2)

		var row1 payroll.ReportRowResponse
		for _, row := range resp.Rows {
			if row.LabourerID == labID1 {
				row1 = row
			}
		}
		assert.True(t, row1.TotalSalary.IsZero())
		assert.True(t, row1.NetPayable.IsZero())
		assert.True(t, dec("600").Equal(row1.UpdatedLoanBalance))
		assert.True(t, dec("-400").Equal(row1.FinalAmountPaid))
		assert.True(t, dec("400").Equal(resp.Totals.LoanRepayment))
	})

	t.Run("empty roster is rejected", func(t *testing.T) {
		labRepo := &fakeLabourerRepo{labourers: map[string]labourer.Labourer{}}
		attRepo := &fakeAttendanceRepo{}
		payrollService := payrollsvc.NewPayrollService(attRepo, labRepo)
		svc := NewSettlementService(&fakeSettlementRepo{}, payrollService)

		_, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})
		assert.ErrorIs(t, err, settlement.ErrEmptyReport)
	})

	t.Run("malformed range fails validation", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-03-31",
			EndDate:   "2024-03-01",
		})
		assert.Error(t, err)
	})
}

func TestSettlementGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns frozen rows", func(t *testing.T) {
		svc, _ := newTestService()

		created, err := svc.Create(ctx, settlement.CreateSettlementRequest{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
		})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Len(t, got.Rows, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.GetByID(ctx, "018f3f60-0000-7000-8000-00000000ffff")
		assert.ErrorIs(t, err, settlement.ErrSettlementNotFound)
	})
}
