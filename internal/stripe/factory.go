package stripe

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paygate/internal/gwerr"
	"paygate/internal/models"
)

// Recognized operation types, matched case-insensitively.
const (
	OpCharge      = "CHARGE"
	OpPaymentLink = "PAYMENT_LINK"
	OpRefund      = "REFUND"
	OpStatus      = "STATUS"
	OpWebhook     = "WEBHOOK"
)

// Factory selects and runs the processor matching a request's operation
// type. It is built once per invocation around the resolved API key.
type Factory struct {
	apiKey string
	cfg    Config
	logger *zap.Logger
}

func NewFactory(apiKey string, cfg Config, logger *zap.Logger) *Factory {
	return &Factory{apiKey: apiKey, cfg: cfg, logger: logger}
}

// Process dispatches to the processor for the request's declared type and
// returns its typed result. The default arm is the only source of the
// unrecognized-type error.
func (f *Factory) Process(ctx context.Context, req *models.PaymentRequest) (interface{}, error) {
	switch strings.ToUpper(req.RequestType) {
	case OpCharge:
		return NewChargeProcessor(f.apiKey, f.cfg, f.logger).Process(ctx, req)
	case OpPaymentLink:
		return NewPaymentLinkProcessor(f.apiKey, f.cfg, f.logger).Process(ctx, req)
	case OpRefund:
		return NewRefundProcessor(f.apiKey, f.cfg, f.logger).Process(ctx, req)
	case OpStatus:
		return NewStatusProcessor(f.apiKey, f.cfg, f.logger).Process(ctx, req)
	case OpWebhook:
		return NewWebhookProcessor(f.logger).Process(ctx, req)
	default:
		return nil, gwerr.InvalidRequest("invalid request type: %s", req.RequestType)
	}
}
