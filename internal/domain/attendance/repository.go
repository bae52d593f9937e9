package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for daily attendance rows.
type AttendanceRepository interface {
	// ReplaceDay atomically replaces all rows for a calendar date with the
	// supplied set. The (date, labourer_id) unique key makes duplicate
	// payload entries fail rather than silently merge.
	ReplaceDay(ctx context.Context, date time.Time, rows []DailyRecord) ([]DailyRecord, error)

	// GetByDate retrieves the rows for one date, in insertion order
	GetByDate(ctx context.Context, date time.Time) ([]DailyRecord, error)

	// ListRange retrieves all rows with date in [start, end], ordered by
	// date then insertion order
	ListRange(ctx context.Context, start, end time.Time) ([]DailyRecord, error)
}
