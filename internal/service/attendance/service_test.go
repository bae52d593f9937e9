package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	labID1 = "018f3f60-0000-7000-8000-000000000001"
	labID2 = "018f3f60-0000-7000-8000-000000000002"
)

type fakeAttendanceRepo struct {
	days map[string][]attendance.DailyRecord
}

func (f *fakeAttendanceRepo) ReplaceDay(ctx context.Context, date time.Time, rows []attendance.DailyRecord) ([]attendance.DailyRecord, error) {
	if f.days == nil {
		f.days = make(map[string][]attendance.DailyRecord)
	}
	f.days[date.Format("2006-01-02")] = rows
	return rows, nil
}

func (f *fakeAttendanceRepo) GetByDate(ctx context.Context, date time.Time) ([]attendance.DailyRecord, error) {
	return f.days[date.Format("2006-01-02")], nil
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]attendance.DailyRecord, error) {
	var out []attendance.DailyRecord
	for _, rows := range f.days {
		for _, r := range rows {
			if !r.Date.Before(start) && !r.Date.After(end) {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

type fakeLabourerRepo struct {
	labourer.LabourerRepository
	labourers []labourer.Labourer
}

func (f *fakeLabourerRepo) ListAll(ctx context.Context) ([]labourer.Labourer, error) {
	return f.labourers, nil
}

func (f *fakeLabourerRepo) ListByIDs(ctx context.Context, ids []string) ([]labourer.Labourer, error) {
	var out []labourer.Labourer
	for _, id := range ids {
		for _, lab := range f.labourers {
			if lab.ID == id {
				out = append(out, lab)
			}
		}
	}
	return out, nil
}

func newTestService(now func() time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	attRepo := &fakeAttendanceRepo{}
	labRepo := &fakeLabourerRepo{labourers: []labourer.Labourer{
		{ID: labID1, FullName: "Ramesh"},
		{ID: labID2, FullName: "Suresh"},
	}}
	return &AttendanceServiceImpl{
		attendanceRepo: attRepo,
		labourerRepo:   labRepo,
		now:            now,
	}, attRepo
}

func TestUpsertDay(t *testing.T) {
	ctx := context.Background()
	// 01:00 IST on March 10th is still March 9th in UTC.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := func() time.Time { return time.Date(2026, 3, 10, 1, 0, 0, 0, ist) }

	t.Run("today's sheet is accepted on an early local morning", func(t *testing.T) {
		svc, repo := newTestService(now)

		resp, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
			Date: "2026-03-10",
			Entries: []attendance.DailyEntryRequest{
				{LabourerID: labID1, Status: string(attendance.StatusPresent), Advance: decimal.Zero},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{labID1}, resp.PresentLabourerIDs)
		assert.Len(t, repo.days["2026-03-10"], 1)
	})

	t.Run("tomorrow's sheet is rejected", func(t *testing.T) {
		svc, _ := newTestService(now)

		_, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
			Date: "2026-03-11",
			Entries: []attendance.DailyEntryRequest{
				{LabourerID: labID1, Status: string(attendance.StatusPresent), Advance: decimal.Zero},
			},
		})
		assert.ErrorIs(t, err, attendance.ErrFutureDate)
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return day("2026-03-20") }

	t.Run("covers the whole roster including absentees", func(t *testing.T) {
		svc, repo := newTestService(now)
		repo.days = map[string][]attendance.DailyRecord{
			"2026-03-02": {rec("2026-03-02", labID1, attendance.StatusPresent, "50")},
		}

		resp, err := svc.Summary(ctx, "2026-03-01", "2026-03-09")
		require.NoError(t, err)
		require.Len(t, resp.Aggregates, 2)

		assert.Equal(t, labID1, resp.Aggregates[0].LabourerID)
		assert.Equal(t, 1, resp.Aggregates[0].PresentDays)

		assert.Equal(t, labID2, resp.Aggregates[1].LabourerID)
		assert.Equal(t, "Suresh", resp.Aggregates[1].LabourerName)
		assert.Equal(t, 0, resp.Aggregates[1].PresentDays)
		assert.True(t, resp.Aggregates[1].TotalAdvance.IsZero())
	})
}
