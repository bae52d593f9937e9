package attendance

import (
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DailyEntryRequest struct {
	LabourerID string          `json:"labourer_id"`
	Status     string          `json:"status"`
	Advance    decimal.Decimal `json:"advance"`
	Remarks    *string         `json:"remarks,omitempty"`
}

// UpsertDayRequest replaces the full set of entries for one calendar date.
type UpsertDayRequest struct {
	Date    string              `json:"-"`
	Entries []DailyEntryRequest `json:"entries"`
}

func (r *UpsertDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	seen := make(map[string]bool, len(r.Entries))
	for i, e := range r.Entries {
		field := "entries[" + validator.Itoa(i) + "]"
		if !validator.IsValidUUID(e.LabourerID) {
			errs = append(errs, validator.ValidationError{Field: field + ".labourer_id", Message: "must be a valid id"})
		}
		if !Status(e.Status).Valid() {
			errs = append(errs, validator.ValidationError{Field: field + ".status", Message: "must be present, absent or half-day"})
		}
		if e.Advance.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".advance", Message: "must be non-negative"})
		}
		if seen[e.LabourerID] {
			errs = append(errs, validator.ValidationError{Field: field + ".labourer_id", Message: "appears more than once"})
		}
		seen[e.LabourerID] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyEntryResponse struct {
	LabourerID   string          `json:"labourer_id"`
	LabourerName string          `json:"labourer_name,omitempty"`
	Status       string          `json:"status"`
	Advance      decimal.Decimal `json:"advance"`
	Remarks      *string         `json:"remarks,omitempty"`
}

// DayResponse is one calendar date's record plus the derived list of
// labourers marked present that day.
type DayResponse struct {
	Date               string               `json:"date"`
	Entries            []DailyEntryResponse `json:"entries"`
	PresentLabourerIDs []string             `json:"present_labourer_ids"`
}

type RangeRecordResponse struct {
	Date         string          `json:"date"`
	LabourerID   string          `json:"labourer_id"`
	LabourerName string          `json:"labourer_name,omitempty"`
	Status       string          `json:"status"`
	Advance      decimal.Decimal `json:"advance"`
	Remarks      *string         `json:"remarks,omitempty"`
}

// RangeResponse is the raw record list for a date range, ordered by date.
type RangeResponse struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Records   []RangeRecordResponse `json:"records"`
}

type AggregateResponse struct {
	LabourerID   string          `json:"labourer_id"`
	LabourerName string          `json:"labourer_name"`
	PresentDays  int             `json:"present_days"`
	HalfDays     int             `json:"half_days"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
}

type SummaryResponse struct {
	StartDate  string              `json:"start_date"`
	EndDate    string              `json:"end_date"`
	Aggregates []AggregateResponse `json:"aggregates"`
}

// FaceCheckinRequest carries the probe photo captured at the kiosk.
type FaceCheckinRequest struct {
	ImageDataURI string `json:"image_data_uri"`
}

func (r *FaceCheckinRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ImageDataURI) {
		errs = append(errs, validator.ValidationError{Field: "image_data_uri", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FaceCheckinResponse struct {
	LabourerID   string  `json:"labourer_id"`
	LabourerName string  `json:"labourer_name"`
	Confidence   float64 `json:"confidence"`
}
