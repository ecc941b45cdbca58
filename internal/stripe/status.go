package stripe

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"paygate/internal/gwerr"
	"paygate/internal/models"
	"paygate/internal/pkg/httpclient"
)

// StatusProcessor retrieves the state of a charge or a checkout session.
type StatusProcessor struct {
	baseURL string
	client  *httpclient.Client
	logger  *zap.Logger
}

func NewStatusProcessor(apiKey string, cfg Config, logger *zap.Logger) *StatusProcessor {
	cfg = cfg.withDefaults()
	return &StatusProcessor{
		baseURL: cfg.BaseURL,
		client:  httpclient.New().WithTimeout(cfg.Timeout).WithBearerToken(apiKey),
		logger:  logger,
	}
}

// HTTPClient returns the underlying HTTP client.
func (p *StatusProcessor) HTTPClient() *httpclient.Client {
	return p.client
}

func (p *StatusProcessor) Process(ctx context.Context, req *models.PaymentRequest) (*models.PaymentStatusResponse, error) {
	p.logger.Info("processing status check", zap.String("storeId", req.StoreID))

	if req.ChargeID == "" && req.SessionID == "" {
		return nil, gwerr.InvalidRequest("charge id or session id required")
	}

	// The charge lookup wins when both identifiers are present.
	var endpoint, paymentID string
	if req.ChargeID != "" {
		paymentID = req.ChargeID
		endpoint = p.baseURL + "/v1/charges/" + url.PathEscape(paymentID)
	} else {
		paymentID = req.SessionID
		endpoint = p.baseURL + "/v1/checkout/sessions/" + url.PathEscape(paymentID)
	}

	resp, err := p.client.Get(ctx, endpoint)
	if err != nil {
		return nil, gwerr.Transport(err)
	}

	body, err := handleStripeResponse(resp)
	if err != nil {
		return nil, err
	}

	// Sessions report their total as amount_total rather than amount.
	amount := getInt64(body, "amount")
	if amount == nil {
		amount = getInt64(body, "amount_total")
	}

	return &models.PaymentStatusResponse{
		Status:        statusSuccess,
		PaymentID:     &paymentID,
		PaymentStatus: getString(body, "status"),
		Amount:        amount,
		Currency:      getString(body, "currency"),
		StatusCode:    http.StatusOK,
	}, nil
}
