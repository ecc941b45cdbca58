package stripe

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"paygate/internal/gwerr"
	"paygate/internal/models"
	"paygate/internal/pkg/httpclient"
)

// PaymentLinkProcessor creates a hosted checkout session and returns its URL.
type PaymentLinkProcessor struct {
	baseURL string
	client  *httpclient.Client
	logger  *zap.Logger
}

func NewPaymentLinkProcessor(apiKey string, cfg Config, logger *zap.Logger) *PaymentLinkProcessor {
	cfg = cfg.withDefaults()
	return &PaymentLinkProcessor{
		baseURL: cfg.BaseURL,
		client:  httpclient.New().WithTimeout(cfg.Timeout).WithBearerToken(apiKey),
		logger:  logger,
	}
}

// HTTPClient returns the underlying HTTP client.
func (p *PaymentLinkProcessor) HTTPClient() *httpclient.Client {
	return p.client
}

func (p *PaymentLinkProcessor) Process(ctx context.Context, req *models.PaymentRequest) (*models.PaymentLinkResponse, error) {
	p.logger.Info("processing payment link", zap.String("storeId", req.StoreID))

	if req.SuccessURL == "" || req.CancelURL == "" {
		return nil, gwerr.InvalidRequest("success and cancel URLs are required")
	}

	// Stripe expects nested structures flattened into bracketed form keys.
	form := map[string]string{
		"mode":        "payment",
		"success_url": req.SuccessURL,
		"cancel_url":  req.CancelURL,
	}
	form["line_items[0][quantity]"] = "1"
	form["line_items[0][price_data][currency]"] = req.Currency
	form["line_items[0][price_data][unit_amount]"] = strconv.FormatInt(req.AmountOrZero(), 10)
	form["line_items[0][price_data][product_data][name]"] = req.Description
	resp, err := p.client.PostForm(ctx, p.baseURL+"/v1/checkout/sessions", form)
	if err != nil {
		return nil, gwerr.Transport(err)
	}

	body, err := handleStripeResponse(resp)
	if err != nil {
		return nil, err
	}

	return &models.PaymentLinkResponse{
		Status:      statusSuccess,
		PaymentLink: getString(body, "url"),
		StatusCode:  http.StatusOK,
	}, nil
}
