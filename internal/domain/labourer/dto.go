package labourer

import (
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLabourerRequest struct {
	FullName        string           `json:"full_name"`
	FatherName      *string          `json:"father_name,omitempty"`
	Mobile          *string          `json:"mobile,omitempty"`
	AadhaarNumber   *string          `json:"aadhaar_number,omitempty"`
	PANNumber       *string          `json:"pan_number,omitempty"`
	DLNumber        *string          `json:"dl_number,omitempty"`
	AadhaarDocURL   *string          `json:"aadhaar_doc_url,omitempty"`
	PANDocURL       *string          `json:"pan_doc_url,omitempty"`
	DLDocURL        *string          `json:"dl_doc_url,omitempty"`
	DailySalary     *decimal.Decimal `json:"daily_salary"`
	ProfilePhotoURL *string          `json:"profile_photo_url,omitempty"`
	FaceScanDataURI *string          `json:"face_scan_data_uri,omitempty"`
	CohortGroup     *string          `json:"group,omitempty"`
}

func (r *CreateLabourerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.DailySalary == nil {
		errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "is required"})
	} else if !r.DailySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "must be positive"})
	}
	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "must be a valid mobile number"})
	}
	if r.AadhaarNumber != nil && !validator.IsValidAadhaar(*r.AadhaarNumber) {
		errs = append(errs, validator.ValidationError{Field: "aadhaar_number", Message: "must be 12 digits"})
	}
	if r.PANNumber != nil && !validator.IsValidPAN(*r.PANNumber) {
		errs = append(errs, validator.ValidationError{Field: "pan_number", Message: "must be a valid PAN"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLabourerRequest struct {
	ID              string
	FullName        *string          `json:"full_name,omitempty"`
	FatherName      *string          `json:"father_name,omitempty"`
	Mobile          *string          `json:"mobile,omitempty"`
	AadhaarNumber   *string          `json:"aadhaar_number,omitempty"`
	PANNumber       *string          `json:"pan_number,omitempty"`
	DLNumber        *string          `json:"dl_number,omitempty"`
	AadhaarDocURL   *string          `json:"aadhaar_doc_url,omitempty"`
	PANDocURL       *string          `json:"pan_doc_url,omitempty"`
	DLDocURL        *string          `json:"dl_doc_url,omitempty"`
	DailySalary     *decimal.Decimal `json:"daily_salary,omitempty"`
	ProfilePhotoURL *string          `json:"profile_photo_url,omitempty"`
	FaceScanDataURI *string          `json:"face_scan_data_uri,omitempty"`
	CohortGroup     *string          `json:"group,omitempty"`
}

func (r *UpdateLabourerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.DailySalary != nil && !r.DailySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "must be positive"})
	}
	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "must be a valid mobile number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LabourerFilter struct {
	Search      *string
	CohortGroup *string
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

type LabourerResponse struct {
	ID              string          `json:"id"`
	FullName        string          `json:"full_name"`
	FatherName      *string         `json:"father_name,omitempty"`
	Mobile          *string         `json:"mobile,omitempty"`
	AadhaarNumber   *string         `json:"aadhaar_number,omitempty"`
	PANNumber       *string         `json:"pan_number,omitempty"`
	DLNumber        *string         `json:"dl_number,omitempty"`
	AadhaarDocURL   *string         `json:"aadhaar_doc_url,omitempty"`
	PANDocURL       *string         `json:"pan_doc_url,omitempty"`
	DLDocURL        *string         `json:"dl_doc_url,omitempty"`
	DailySalary     decimal.Decimal `json:"daily_salary"`
	LoanBalance     decimal.Decimal `json:"loan_balance"`
	ProfilePhotoURL *string         `json:"profile_photo_url,omitempty"`
	HasFaceScan     bool            `json:"has_face_scan"`
	CohortGroup     *string         `json:"group,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type ListLabourerResponse struct {
	Data       []LabourerResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
