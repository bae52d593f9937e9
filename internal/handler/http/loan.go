package http

import (
	"encoding/json"
	"net/http"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/loan"
	"github.com/shairahamancsc/labourpro-backend-go/internal/handler/http/response"
)

type LoanHandler interface {
	ApplyTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &loanHandlerImpl{loanService: loanService}
}

// ApplyTransaction implements LoanHandler
func (h *loanHandlerImpl) ApplyTransaction(w http.ResponseWriter, r *http.Request) {
	var req loan.ApplyTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.loanService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan transaction recorded", result)
}

// ListTransactions implements LoanHandler
func (h *loanHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var labourerID *string
	if id := r.URL.Query().Get("labourer_id"); id != "" {
		labourerID = &id
	}

	result, err := h.loanService.List(r.Context(), labourerID, queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}
