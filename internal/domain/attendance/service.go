package attendance

import "context"

type AttendanceService interface {
	// UpsertDay replaces the full attendance sheet for one calendar date.
	// Future dates are rejected.
	UpsertDay(ctx context.Context, req UpsertDayRequest) (DayResponse, error)

	// GetDay returns the sheet for one date; an empty sheet is not an error.
	GetDay(ctx context.Context, date string) (DayResponse, error)

	// ListRange returns the raw records for an inclusive date range.
	ListRange(ctx context.Context, startDate, endDate string) (RangeResponse, error)

	// Summary rolls the range up per labourer for payroll preview screens.
	Summary(ctx context.Context, startDate, endDate string) (SummaryResponse, error)

	// FaceCheckin matches the probe photo against enrolled labourers and
	// marks the matched labourer present today.
	FaceCheckin(ctx context.Context, req FaceCheckinRequest) (FaceCheckinResponse, error)
}
