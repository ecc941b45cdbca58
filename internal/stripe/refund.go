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

// RefundProcessor refunds a previously created charge.
type RefundProcessor struct {
	baseURL string
	client  *httpclient.Client
	logger  *zap.Logger
}

func NewRefundProcessor(apiKey string, cfg Config, logger *zap.Logger) *RefundProcessor {
	cfg = cfg.withDefaults()
	return &RefundProcessor{
		baseURL: cfg.BaseURL,
		client:  httpclient.New().WithTimeout(cfg.Timeout).WithBearerToken(apiKey),
		logger:  logger,
	}
}

// HTTPClient returns the underlying HTTP client.
func (p *RefundProcessor) HTTPClient() *httpclient.Client {
	return p.client
}

func (p *RefundProcessor) Process(ctx context.Context, req *models.PaymentRequest) (*models.RefundResponse, error) {
	p.logger.Info("processing refund", zap.String("storeId", req.StoreID))

	if req.ChargeID == "" {
		return nil, gwerr.InvalidRequest("charge id is required")
	}

	form := map[string]string{
		"charge": req.ChargeID,
		"amount": strconv.FormatInt(req.AmountOrZero(), 10),
	}
	resp, err := p.client.PostForm(ctx, p.baseURL+"/v1/refunds", form)
	if err != nil {
		return nil, gwerr.Transport(err)
	}

	body, err := handleStripeResponse(resp)
	if err != nil {
		return nil, err
	}

	return &models.RefundResponse{
		Status:     statusSuccess,
		RefundID:   getString(body, "id"),
		Amount:     getInt64(body, "amount"),
		Currency:   getString(body, "currency"),
		StatusCode: http.StatusOK,
	}, nil
}
