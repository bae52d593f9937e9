package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/config"
	"github.com/shopspring/decimal"
	xenditSDK "github.com/xendit/xendit-go/v7"
	"github.com/xendit/xendit-go/v7/invoice"
)

// Client wraps the hosted checkout provider. It is only consumed by the
// storefront order endpoint and never touches payroll or settlement math.
type Client struct {
	invoiceAPI         invoice.InvoiceApi
	environment        string
	successRedirectURL string
	failureRedirectURL string
}

func NewClient(cfg config.XenditConfig) *Client {
	sdk := xenditSDK.NewClient(cfg.APIKey)

	return &Client{
		invoiceAPI:         sdk.InvoiceApi,
		environment:        cfg.Environment,
		successRedirectURL: cfg.SuccessRedirectURL,
		failureRedirectURL: cfg.FailureRedirectURL,
	}
}

// IsSandbox returns true if running in sandbox mode
func (c *Client) IsSandbox() bool {
	return c.environment == "sandbox"
}

// CreateOrderRequest asks the provider for a checkout order handle.
type CreateOrderRequest struct {
	ExternalID  string
	Amount      decimal.Decimal
	Description string
	PayerEmail  string
	Currency    string
}

// Order is the handle the storefront checkout widget consumes.
type Order struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"external_id"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	CheckoutURL string    `json:"checkout_url"`
	ExpiryDate  time.Time `json:"expiry_date"`
}

// CreateOrder creates a checkout order via the provider's invoice API.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	amount, _ := req.Amount.Float64()

	sdkReq := *invoice.NewCreateInvoiceRequest(req.ExternalID, amount)
	sdkReq.SetCurrency(currency)
	if req.Description != "" {
		sdkReq.SetDescription(req.Description)
	}
	if req.PayerEmail != "" {
		sdkReq.SetPayerEmail(req.PayerEmail)
	}
	if c.successRedirectURL != "" {
		sdkReq.SetSuccessRedirectUrl(c.successRedirectURL)
	}
	if c.failureRedirectURL != "" {
		sdkReq.SetFailureRedirectUrl(c.failureRedirectURL)
	}

	resp, _, err := c.invoiceAPI.CreateInvoice(ctx).
		CreateInvoiceRequest(sdkReq).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout order: %w", err)
	}

	return &Order{
		ID:          resp.GetId(),
		ExternalID:  resp.GetExternalId(),
		Status:      string(resp.GetStatus()),
		Amount:      resp.GetAmount(),
		Currency:    string(resp.GetCurrency()),
		CheckoutURL: resp.GetInvoiceUrl(),
		ExpiryDate:  resp.GetExpiryDate(),
	}, nil
}

// GetOrder retrieves an order by provider id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	resp, _, err := c.invoiceAPI.GetInvoiceById(ctx, orderID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout order: %w", err)
	}

	return &Order{
		ID:          resp.GetId(),
		ExternalID:  resp.GetExternalId(),
		Status:      string(resp.GetStatus()),
		Amount:      resp.GetAmount(),
		Currency:    string(resp.GetCurrency()),
		CheckoutURL: resp.GetInvoiceUrl(),
		ExpiryDate:  resp.GetExpiryDate(),
	}, nil
}
