package payroll

import (
	"context"
	"time"

	attendancedomain "github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	attendancesvc "github.com/shairahamancsc/labourpro-backend-go/internal/service/attendance"
)

type PayrollServiceImpl struct {
	attendanceRepo attendancedomain.AttendanceRepository
	labourerRepo   labourer.LabourerRepository
	now            func() time.Time
}

func NewPayrollService(
	attendanceRepo attendancedomain.AttendanceRepository,
	labourerRepo labourer.LabourerRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		labourerRepo:   labourerRepo,
		now:            time.Now,
	}
}

func (s *PayrollServiceImpl) Report(ctx context.Context, startDate, endDate string) (payroll.ReportResponse, error) {
	return s.ReportWithAdjustments(ctx, startDate, endDate, nil)
}

func (s *PayrollServiceImpl) ReportWithAdjustments(ctx context.Context, startDate, endDate string, adjustments map[string]payroll.Adjustment) (payroll.ReportResponse, error) {
	rows, totals, err := s.ComputeRows(ctx, startDate, endDate, adjustments)
	if err != nil {
		return payroll.ReportResponse{}, err
	}

	resp := payroll.ReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      make([]payroll.ReportRowResponse, 0, len(rows)),
		Totals:    payroll.ToTotalsResponse(totals),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, payroll.ToRowResponse(row))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) ComputeRows(ctx context.Context, startDate, endDate string, adjustments map[string]payroll.Adjustment) ([]payroll.ReportRow, payroll.ReportTotals, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, payroll.ReportTotals{}, payroll.ErrInvalidRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, payroll.ReportTotals{}, payroll.ErrInvalidRange
	}
	if end.Before(start) {
		return nil, payroll.ReportTotals{}, payroll.ErrInvalidRange
	}

	records, err := s.attendanceRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, payroll.ReportTotals{}, err
	}

	labs, err := s.labourerRepo.ListAll(ctx)
	if err != nil {
		return nil, payroll.ReportTotals{}, err
	}

	ids := make([]string, 0, len(labs))
	for _, lab := range labs {
		ids = append(ids, lab.ID)
	}
	aggs := attendancesvc.Aggregate(ids, records, s.now())

	return BuildReport(labs, aggs, adjustments)
}
