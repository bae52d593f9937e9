package attendance

import (
	"context"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/facematch"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	labourerRepo   labourer.LabourerRepository
	faceMatch      facematch.Service
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	labourerRepo labourer.LabourerRepository,
	faceMatch facematch.Service,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		labourerRepo:   labourerRepo,
		faceMatch:      faceMatch,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) UpsertDay(ctx context.Context, req attendance.UpsertDayRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if date.After(dateOf(s.now())) {
		return attendance.DayResponse{}, attendance.ErrFutureDate
	}

	ids := make([]string, 0, len(req.Entries))
	for _, e := range req.Entries {
		ids = append(ids, e.LabourerID)
	}
	labs, err := s.labourerRepo.ListByIDs(ctx, ids)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	if len(labs) != len(ids) {
		return attendance.DayResponse{}, labourer.ErrLabourerNotFound
	}

	rows := make([]attendance.DailyRecord, 0, len(req.Entries))
	for _, e := range req.Entries {
		rows = append(rows, attendance.DailyRecord{
			Date:       date,
			LabourerID: e.LabourerID,
			Status:     attendance.Status(e.Status),
			Advance:    e.Advance,
			Remarks:    e.Remarks,
		})
	}

	saved, err := s.attendanceRepo.ReplaceDay(ctx, date, rows)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	names := make(map[string]string, len(labs))
	for _, lab := range labs {
		names[lab.ID] = lab.FullName
	}
	return toDayResponse(req.Date, saved, names), nil
}

func (s *AttendanceServiceImpl) GetDay(ctx context.Context, date string) (attendance.DayResponse, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return attendance.DayResponse{}, attendance.ErrInvalidDate
	}

	rows, err := s.attendanceRepo.GetByDate(ctx, parsed)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	return toDayResponse(date, rows, nil), nil
}

func (s *AttendanceServiceImpl) ListRange(ctx context.Context, startDate, endDate string) (attendance.RangeResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return attendance.RangeResponse{}, attendance.ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		return attendance.RangeResponse{}, attendance.ErrInvalidDate
	}

	records, err := s.attendanceRepo.ListRange(ctx, start, end)
	if err != nil {
		return attendance.RangeResponse{}, err
	}

	resp := attendance.RangeResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Records:   make([]attendance.RangeRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		name := ""
		if rec.LabourerName != nil {
			name = *rec.LabourerName
		}
		resp.Records = append(resp.Records, attendance.RangeRecordResponse{
			Date:         rec.Date.Format("2006-01-02"),
			LabourerID:   rec.LabourerID,
			LabourerName: name,
			Status:       string(rec.Status),
			Advance:      rec.Advance,
			Remarks:      rec.Remarks,
		})
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) Summary(ctx context.Context, startDate, endDate string) (attendance.SummaryResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return attendance.SummaryResponse{}, attendance.ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		return attendance.SummaryResponse{}, attendance.ErrInvalidDate
	}

	records, err := s.attendanceRepo.ListRange(ctx, start, end)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	// The whole roster appears in the rollup; a labourer who never showed
	// up still gets an all-zero line.
	labs, err := s.labourerRepo.ListAll(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	ids := make([]string, 0, len(labs))
	names := make(map[string]string, len(labs))
	for _, lab := range labs {
		ids = append(ids, lab.ID)
		names[lab.ID] = lab.FullName
	}

	aggs := Aggregate(ids, records, s.now())

	resp := attendance.SummaryResponse{
		StartDate:  startDate,
		EndDate:    endDate,
		Aggregates: make([]attendance.AggregateResponse, 0, len(aggs)),
	}
	for _, agg := range aggs {
		resp.Aggregates = append(resp.Aggregates, attendance.AggregateResponse{
			LabourerID:   agg.LabourerID,
			LabourerName: names[agg.LabourerID],
			PresentDays:  agg.PresentDays,
			HalfDays:     agg.HalfDays,
			TotalAdvance: agg.TotalAdvance,
		})
	}
	return resp, nil
}

// FaceCheckin matches the probe against every enrolled face and marks the
// winner present today. The day's other rows are preserved; only the matched
// labourer's row is added or overwritten.
func (s *AttendanceServiceImpl) FaceCheckin(ctx context.Context, req attendance.FaceCheckinRequest) (attendance.FaceCheckinResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.FaceCheckinResponse{}, err
	}

	labs, _, err := s.labourerRepo.List(ctx, labourer.LabourerFilter{Page: 1, Limit: 1000})
	if err != nil {
		return attendance.FaceCheckinResponse{}, err
	}

	candidates := make([]facematch.Candidate, 0, len(labs))
	names := make(map[string]string, len(labs))
	for _, lab := range labs {
		if lab.FaceScanDataURI == nil || *lab.FaceScanDataURI == "" {
			continue
		}
		candidates = append(candidates, facematch.Candidate{
			ID:               lab.ID,
			ReferenceDataURI: *lab.FaceScanDataURI,
		})
		names[lab.ID] = lab.FullName
	}
	if len(candidates) == 0 {
		return attendance.FaceCheckinResponse{}, attendance.ErrNoEnrolledFaces
	}

	result, err := s.faceMatch.Match(ctx, req.ImageDataURI, candidates)
	if err != nil {
		return attendance.FaceCheckinResponse{}, err
	}
	if result == nil {
		return attendance.FaceCheckinResponse{}, attendance.ErrNoFaceMatch
	}

	today := dateOf(s.now())
	existing, err := s.attendanceRepo.GetByDate(ctx, today)
	if err != nil {
		return attendance.FaceCheckinResponse{}, err
	}

	rows := make([]attendance.DailyRecord, 0, len(existing)+1)
	found := false
	for _, rec := range existing {
		if rec.LabourerID == result.MatchID {
			rec.Status = attendance.StatusPresent
			found = true
		}
		rows = append(rows, rec)
	}
	if !found {
		rows = append(rows, attendance.DailyRecord{
			Date:       today,
			LabourerID: result.MatchID,
			Status:     attendance.StatusPresent,
			Advance:    decimal.Zero,
		})
	}
	if _, err := s.attendanceRepo.ReplaceDay(ctx, today, rows); err != nil {
		return attendance.FaceCheckinResponse{}, err
	}

	return attendance.FaceCheckinResponse{
		LabourerID:   result.MatchID,
		LabourerName: names[result.MatchID],
		Confidence:   result.Confidence,
	}, nil
}

func toDayResponse(date string, rows []attendance.DailyRecord, names map[string]string) attendance.DayResponse {
	resp := attendance.DayResponse{
		Date:               date,
		Entries:            make([]attendance.DailyEntryResponse, 0, len(rows)),
		PresentLabourerIDs: make([]string, 0, len(rows)),
	}
	for _, rec := range rows {
		name := ""
		if rec.LabourerName != nil {
			name = *rec.LabourerName
		} else if names != nil {
			name = names[rec.LabourerID]
		}
		resp.Entries = append(resp.Entries, attendance.DailyEntryResponse{
			LabourerID:   rec.LabourerID,
			LabourerName: name,
			Status:       string(rec.Status),
			Advance:      rec.Advance,
			Remarks:      rec.Remarks,
		})
		if rec.Status == attendance.StatusPresent {
			resp.PresentLabourerIDs = append(resp.PresentLabourerIDs, rec.LabourerID)
		}
	}
	return resp
}
