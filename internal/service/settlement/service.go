package settlement

import (
	"context"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/settlement"
)

type SettlementServiceImpl struct {
	settlementRepo settlement.SettlementRepository
	payrollService payroll.PayrollService
}

func NewSettlementService(
	settlementRepo settlement.SettlementRepository,
	payrollService payroll.PayrollService,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		payrollService: payrollService,
	}
}

// Create recomputes the payout rows server-side from stored attendance and
// wage data. The client only sends the range and the loan decisions, so a
// stale browser can never freeze numbers the database no longer backs.
func (s *SettlementServiceImpl) Create(ctx context.Context, req settlement.CreateSettlementRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	adjustments := make(map[string]payroll.Adjustment, len(req.Adjustments))
	for _, adj := range req.Adjustments {
		adjustments[adj.LabourerID] = payroll.Adjustment{
			LoanRepayment: adj.LoanRepayment,
			NewLoan:       adj.NewLoan,
		}
	}

	rows, totals, err := s.payrollService.ComputeRows(ctx, req.StartDate, req.EndDate, adjustments)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	// Every labourer yields a row, so no rows means an empty roster.
	if len(rows) == 0 {
		return settlement.SettlementResponse{}, settlement.ErrEmptyReport
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.settlementRepo.Create(ctx, settlement.Settlement{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      rows,
		Totals:    totals,
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return toResponse(created, true), nil
}

func (s *SettlementServiceImpl) List(ctx context.Context, page, limit int) (settlement.ListSettlementResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	settlements, total, err := s.settlementRepo.List(ctx, page, limit)
	if err != nil {
		return settlement.ListSettlementResponse{}, err
	}

	resp := settlement.ListSettlementResponse{
		Data:       make([]settlement.SettlementResponse, 0, len(settlements)),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}
	for _, st := range settlements {
		resp.Data = append(resp.Data, toResponse(st, false))
	}
	return resp, nil
}

func (s *SettlementServiceImpl) GetByID(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	st, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	return toResponse(st, true), nil
}

func toResponse(st settlement.Settlement, withRows bool) settlement.SettlementResponse {
	resp := settlement.SettlementResponse{
		ID:        st.ID,
		StartDate: st.StartDate.Format("2006-01-02"),
		EndDate:   st.EndDate.Format("2006-01-02"),
		Totals:    payroll.ToTotalsResponse(st.Totals),
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
	if withRows {
		resp.Rows = make([]payroll.ReportRowResponse, 0, len(st.Rows))
		for _, row := range st.Rows {
			resp.Rows = append(resp.Rows, payroll.ToRowResponse(row))
		}
	}
	return resp
}
