package http

import (
	"net/http"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/payroll"
	"github.com/shairahamancsc/labourpro-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Report implements PayrollHandler. The preview carries zero loan
// adjustments; those only enter through the settlement flow.
func (h *payrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	result, err := h.payrollService.Report(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
