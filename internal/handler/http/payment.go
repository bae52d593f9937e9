package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shairahamancsc/labourpro-backend-go/internal/handler/http/response"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/payment"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PaymentHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentClient *payment.Client
}

func NewPaymentHandler(paymentClient *payment.Client) PaymentHandler {
	return &paymentHandlerImpl{paymentClient: paymentClient}
}

type createOrderRequest struct {
	ExternalID  string          `json:"external_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	PayerEmail  string          `json:"payer_email,omitempty"`
	Currency    string          `json:"currency,omitempty"`
}

func (r *createOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExternalID) {
		errs = append(errs, validator.ValidationError{Field: "external_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.PayerEmail != "" && !validator.IsValidEmail(r.PayerEmail) {
		errs = append(errs, validator.ValidationError{Field: "payer_email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateOrder implements PaymentHandler. Settlement payouts are cash; this
// covers the occasional digital collection, e.g. a contractor invoice.
func (h *paymentHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	order, err := h.paymentClient.CreateOrder(r.Context(), payment.CreateOrderRequest{
		ExternalID:  req.ExternalID,
		Amount:      req.Amount,
		Description: req.Description,
		PayerEmail:  req.PayerEmail,
		Currency:    req.Currency,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checkout order created", order)
}

// GetOrder implements PaymentHandler
func (h *paymentHandlerImpl) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.paymentClient.GetOrder(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, order)
}
