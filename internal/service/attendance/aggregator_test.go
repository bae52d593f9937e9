package attendance

import (
	"testing"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func rec(date, labourerID string, status attendance.Status, advance string) attendance.DailyRecord {
	adv, err := decimal.NewFromString(advance)
	if err != nil {
		panic(err)
	}
	return attendance.DailyRecord{
		Date:       day(date),
		LabourerID: labourerID,
		Status:     status,
		Advance:    adv,
	}
}

func TestAggregate(t *testing.T) {
	today := day("2026-08-31")

	t.Run("counts statuses and sums advances per labourer", func(t *testing.T) {
		records := []attendance.DailyRecord{
			rec("2026-08-01", "lab-1", attendance.StatusPresent, "100"),
			rec("2026-08-02", "lab-1", attendance.StatusHalfDay, "0"),
			rec("2026-08-03", "lab-1", attendance.StatusAbsent, "50"),
			rec("2026-08-01", "lab-2", attendance.StatusPresent, "0"),
		}

		aggs := Aggregate([]string{"lab-1", "lab-2"}, records, today)
		require.Len(t, aggs, 2)

		assert.Equal(t, "lab-1", aggs[0].LabourerID)
		assert.Equal(t, 1, aggs[0].PresentDays)
		assert.Equal(t, 1, aggs[0].HalfDays)
		assert.True(t, decimal.NewFromInt(150).Equal(aggs[0].TotalAdvance))

		assert.Equal(t, "lab-2", aggs[1].LabourerID)
		assert.Equal(t, 1, aggs[1].PresentDays)
	})

	t.Run("labourer without rows gets an all-zero aggregate", func(t *testing.T) {
		records := []attendance.DailyRecord{
			rec("2026-08-01", "lab-1", attendance.StatusPresent, "100"),
		}

		aggs := Aggregate([]string{"lab-1", "lab-2"}, records, today)
		require.Len(t, aggs, 2)

		assert.Equal(t, "lab-2", aggs[1].LabourerID)
		assert.Equal(t, 0, aggs[1].PresentDays)
		assert.Equal(t, 0, aggs[1].HalfDays)
		assert.True(t, aggs[1].TotalAdvance.IsZero())
	})

	t.Run("absent days still carry their advance", func(t *testing.T) {
		records := []attendance.DailyRecord{
			rec("2026-08-01", "lab-1", attendance.StatusAbsent, "200"),
		}

		aggs := Aggregate([]string{"lab-1"}, records, today)
		require.Len(t, aggs, 1)
		assert.Equal(t, 0, aggs[0].PresentDays)
		assert.True(t, decimal.NewFromInt(200).Equal(aggs[0].TotalAdvance))
	})

	t.Run("rows dated after today are skipped", func(t *testing.T) {
		records := []attendance.DailyRecord{
			rec("2026-08-30", "lab-1", attendance.StatusPresent, "0"),
			rec("2026-08-31", "lab-1", attendance.StatusPresent, "0"),
			rec("2026-09-01", "lab-1", attendance.StatusPresent, "500"),
		}

		aggs := Aggregate([]string{"lab-1"}, records, today)
		require.Len(t, aggs, 1)
		assert.Equal(t, 2, aggs[0].PresentDays)
		assert.True(t, aggs[0].TotalAdvance.IsZero())
	})

	t.Run("today is the local calendar date, not the UTC one", func(t *testing.T) {
		// 01:00 IST on the 31st is still the 30th in UTC; the 31st's sheet
		// must count anyway.
		ist := time.FixedZone("IST", 5*3600+1800)
		morning := time.Date(2026, 8, 31, 1, 0, 0, 0, ist)

		records := []attendance.DailyRecord{
			rec("2026-08-31", "lab-1", attendance.StatusPresent, "0"),
		}

		aggs := Aggregate([]string{"lab-1"}, records, morning)
		require.Len(t, aggs, 1)
		assert.Equal(t, 1, aggs[0].PresentDays)
	})

	t.Run("later duplicate row for the same day wins", func(t *testing.T) {
		records := []attendance.DailyRecord{
			rec("2026-08-01", "lab-1", attendance.StatusPresent, "100"),
			rec("2026-08-01", "lab-1", attendance.StatusHalfDay, "40"),
		}

		aggs := Aggregate([]string{"lab-1"}, records, today)
		require.Len(t, aggs, 1)
		assert.Equal(t, 0, aggs[0].PresentDays)
		assert.Equal(t, 1, aggs[0].HalfDays)
		assert.True(t, decimal.NewFromInt(40).Equal(aggs[0].TotalAdvance))
	})

	t.Run("attended days never exceed the days in the range", func(t *testing.T) {
		// A week that spans today, with every awkward input at once:
		// duplicate rows on alternating days and pre-filled rows on the
		// two future days.
		days := []string{
			"2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30",
			"2026-08-31", "2026-09-01", "2026-09-02",
		}
		var records []attendance.DailyRecord
		for i, d := range days {
			records = append(records, rec(d, "lab-1", attendance.StatusPresent, "0"))
			if i%2 == 0 {
				records = append(records, rec(d, "lab-1", attendance.StatusHalfDay, "0"))
			}
		}

		aggs := Aggregate([]string{"lab-1"}, records, today)
		require.Len(t, aggs, 1)
		assert.LessOrEqual(t, aggs[0].PresentDays+aggs[0].HalfDays, len(days))
		// Five days through today count, duplicates collapse to the later
		// half-day row, the two future days drop out.
		assert.Equal(t, 2, aggs[0].PresentDays)
		assert.Equal(t, 3, aggs[0].HalfDays)
	})

	t.Run("empty input yields an empty rollup", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil, nil, today))
	})
}
