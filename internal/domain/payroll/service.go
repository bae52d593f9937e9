package payroll

import "context"

type PayrollService interface {
	// Report computes a payout preview for the range with zero loan
	// adjustments, one row per labourer on the roster. Nothing is
	// persisted.
	Report(ctx context.Context, startDate, endDate string) (ReportResponse, error)

	// ReportWithAdjustments recomputes the rows with the operator's
	// per-labourer loan decisions applied.
	ReportWithAdjustments(ctx context.Context, startDate, endDate string, adjustments map[string]Adjustment) (ReportResponse, error)

	// ComputeRows is ReportWithAdjustments without display rounding. The
	// settlement flow freezes these exact values and derives its loan
	// deltas from them.
	ComputeRows(ctx context.Context, startDate, endDate string, adjustments map[string]Adjustment) ([]ReportRow, ReportTotals, error)
}
