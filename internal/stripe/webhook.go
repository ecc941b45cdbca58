package stripe

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"paygate/internal/gwerr"
	"paygate/internal/models"
)

// WebhookProcessor acknowledges an incoming Stripe event. It only validates
// the event's shape and extracts its identifiers; no remote call is made.
type WebhookProcessor struct {
	logger *zap.Logger
}

func NewWebhookProcessor(logger *zap.Logger) *WebhookProcessor {
	return &WebhookProcessor{logger: logger}
}

func (p *WebhookProcessor) Process(ctx context.Context, req *models.PaymentRequest) (*models.WebhookResponse, error) {
	p.logger.Info("processing webhook", zap.String("storeId", req.StoreID))

	if req.WebhookEvent == nil {
		return nil, gwerr.InvalidRequest("webhook event data required")
	}

	eventID, ok := req.WebhookEvent["id"].(string)
	if !ok {
		return nil, gwerr.InvalidRequest("webhook event ID required")
	}
	eventType, ok := req.WebhookEvent["type"].(string)
	if !ok {
		return nil, gwerr.InvalidRequest("webhook event type required")
	}

	p.logger.Debug("received webhook event",
		zap.String("eventId", eventID),
		zap.String("eventType", eventType),
	)

	return &models.WebhookResponse{
		Status:     statusSuccess,
		EventID:    &eventID,
		StatusCode: http.StatusOK,
	}, nil
}
