package response

import (
	"errors"
	"net/http"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/auth"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/loan"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/settlement"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/user"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, user.ErrSupervisorNotFound):
		NotFound(w, "Supervisor not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Labourer domain errors
	case errors.Is(err, labourer.ErrLabourerNotFound):
		NotFound(w, "Labourer not found")
	case errors.Is(err, labourer.ErrMobileExists):
		Conflict(w, "Mobile number already registered")
	case errors.Is(err, labourer.ErrAadhaarExists):
		Conflict(w, "Aadhaar number already registered")
	case errors.Is(err, labourer.ErrHasOpenLoan):
		Conflict(w, "Labourer has an outstanding loan balance")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateLabourerEntry):
		Conflict(w, "Duplicate labourer entry for the same date")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be recorded for a future date", nil)
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date or date range", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoFaceMatch):
		NotFound(w, "No matching labourer found for the supplied photo")
	case errors.Is(err, attendance.ErrNoEnrolledFaces):
		BadRequest(w, "No labourers have an enrolled face scan", nil)

	// Loan domain errors
	case errors.Is(err, loan.ErrTransactionNotFound):
		NotFound(w, "Loan transaction not found")
	case errors.Is(err, loan.ErrZeroAmount):
		BadRequest(w, "Loan amount must not be zero", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidLoanAdjustment):
		BadRequest(w, "Loan repayment exceeds current balance", nil)
	case errors.Is(err, payroll.ErrMissingWorkerData):
		BadRequest(w, "Labourer wage data is missing or invalid", nil)
	case errors.Is(err, payroll.ErrInvalidRange):
		BadRequest(w, "Invalid report date range", nil)

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrDuplicateSettlementRange):
		Conflict(w, "A settlement already exists for an overlapping date range")
	case errors.Is(err, settlement.ErrEmptyReport):
		BadRequest(w, "No attendance found in the settlement range", nil)
	case errors.Is(err, settlement.ErrStoreUnavailable):
		ServiceUnavailable(w, "Failed to save settlement, no changes were made")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
