package attendance

import (
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
)

// dateOf keeps the calendar date from the clock's own location, normalized
// to UTC midnight the way date columns come back from the store.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Aggregate rolls daily rows up per labourer, one aggregate per supplied id
// in that order. A labourer with no rows in the range gets an all-zero
// aggregate, not omission. Rows dated after today are skipped so a
// pre-filled future sheet never inflates a payout, and rows for ids not in
// the list are ignored. When the same (date, labourer) appears more than
// once the later row wins; the write path's unique key makes that a
// legacy-data case only.
func Aggregate(labourerIDs []string, records []attendance.DailyRecord, today time.Time) []attendance.Aggregate {
	cutoff := dateOf(today)

	byLabourer := make(map[string]*attendance.Aggregate, len(labourerIDs))
	for _, id := range labourerIDs {
		if _, dup := byLabourer[id]; !dup {
			byLabourer[id] = &attendance.Aggregate{LabourerID: id}
		}
	}

	type dayKey struct {
		date       string
		labourerID string
	}
	latest := make(map[dayKey]attendance.DailyRecord, len(records))
	var order []dayKey
	for _, rec := range records {
		if rec.Date.After(cutoff) {
			continue
		}
		if _, known := byLabourer[rec.LabourerID]; !known {
			continue
		}
		key := dayKey{rec.Date.Format("2006-01-02"), rec.LabourerID}
		if _, dup := latest[key]; !dup {
			order = append(order, key)
		}
		latest[key] = rec
	}

	for _, key := range order {
		rec := latest[key]
		agg := byLabourer[rec.LabourerID]

		switch rec.Status {
		case attendance.StatusPresent:
			agg.PresentDays++
		case attendance.StatusHalfDay:
			agg.HalfDays++
		}
		agg.TotalAdvance = agg.TotalAdvance.Add(rec.Advance)
	}

	out := make([]attendance.Aggregate, 0, len(byLabourer))
	emitted := make(map[string]bool, len(byLabourer))
	for _, id := range labourerIDs {
		if emitted[id] {
			continue
		}
		emitted[id] = true
		out = append(out, *byLabourer[id])
	}
	return out
}
