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

// ChargeProcessor creates a charge against a stored payment token.
type ChargeProcessor struct {
	baseURL string
	client  *httpclient.Client
	logger  *zap.Logger
}

func NewChargeProcessor(apiKey string, cfg Config, logger *zap.Logger) *ChargeProcessor {
	cfg = cfg.withDefaults()
	return &ChargeProcessor{
		baseURL: cfg.BaseURL,
		client:  httpclient.New().WithTimeout(cfg.Timeout).WithBearerToken(apiKey),
		logger:  logger,
	}
}

// HTTPClient returns the underlying HTTP client.
func (p *ChargeProcessor) HTTPClient() *httpclient.Client {
	return p.client
}

func (p *ChargeProcessor) Process(ctx context.Context, req *models.PaymentRequest) (*models.ChargeResponse, error) {
	p.logger.Info("processing charge", zap.String("storeId", req.StoreID))

	if req.PaymentToken == "" {
		return nil, gwerr.InvalidRequest("payment token is required")
	}

	form := map[string]string{
		"amount":      strconv.FormatInt(req.AmountOrZero(), 10),
		"currency":    req.Currency,
		"source":      req.PaymentToken,
		"description": req.Description,
	}
	resp, err := p.client.PostForm(ctx, p.baseURL+"/v1/charges", form)
	if err != nil {
		return nil, gwerr.Transport(err)
	}

	body, err := handleStripeResponse(resp)
	if err != nil {
		return nil, err
	}

	return &models.ChargeResponse{
		Status:     statusSuccess,
		ChargeID:   getString(body, "id"),
		Amount:     getInt64(body, "amount"),
		Currency:   getString(body, "currency"),
		StatusCode: http.StatusOK,
	}, nil
}
