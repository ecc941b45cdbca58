package handler

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"paygate/internal/gwerr"
	"paygate/internal/models"
	"paygate/internal/parser"
	"paygate/internal/stripe"
)

// Envelope is the uniform outward shape returned for every invocation.
// The outer StatusCode always equals the body's own statusCode field.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Body       interface{} `json:"body"`
}

// CredentialResolver hides the secret store behind its lookup contract.
type CredentialResolver interface {
	Resolve(ctx context.Context, storeID string) (string, error)
}

// Handler runs the full invocation flow: parse the event, resolve the
// store's API key, dispatch the operation, wrap the result.
type Handler struct {
	parser   *parser.RequestParser
	resolver CredentialResolver
	stripe   stripe.Config
	logger   *zap.Logger
}

func New(resolver CredentialResolver, stripeCfg stripe.Config, logger *zap.Logger) *Handler {
	return &Handler{
		parser:   parser.NewRequestParser(),
		resolver: resolver,
		stripe:   stripeCfg,
		logger:   logger,
	}
}

// Handle processes one inbound event. Failures at any stage are folded into
// an error envelope; the returned Go error is always nil so the hosting
// runtime never sees an abnormal termination.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (Envelope, error) {
	log := h.logger.With(zap.String("invocationId", uuid.NewString()))
	log.Info("received event", zap.Int("bytes", len(event)))

	req, err := h.parser.Parse(event)
	if err != nil {
		return errorEnvelope(log, "parse", err), nil
	}
	log = log.With(zap.String("storeId", req.StoreID), zap.String("requestType", req.RequestType))

	apiKey, err := h.resolver.Resolve(ctx, req.StoreID)
	if err != nil {
		return errorEnvelope(log, "resolve credentials", err), nil
	}

	result, err := stripe.NewFactory(apiKey, h.stripe, log).Process(ctx, req)
	if err != nil {
		return errorEnvelope(log, "process", err), nil
	}

	env, err := successEnvelope(result)
	if err != nil {
		return errorEnvelope(log, "encode result", err), nil
	}
	log.Info("request processed", zap.Int("statusCode", env.StatusCode))
	return env, nil
}

// successEnvelope serializes the typed result to a generic JSON object and
// lifts its statusCode to the outer envelope, defaulting to 500 when the
// field is absent or not a number.
func successEnvelope(result interface{}) (Envelope, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return Envelope{}, gwerr.Serialization(err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Envelope{}, gwerr.Serialization(err)
	}

	statusCode := 500
	if v, ok := body["statusCode"].(float64); ok {
		statusCode = int(v)
	}
	return Envelope{StatusCode: statusCode, Body: body}, nil
}

func errorEnvelope(log *zap.Logger, stage string, err error) Envelope {
	statusCode := gwerr.StatusOf(err)
	log.Error("request failed", zap.String("stage", stage), zap.Error(err))
	return Envelope{
		StatusCode: statusCode,
		Body: models.ErrorResponse{
			Status:     "error",
			Message:    err.Error(),
			StatusCode: statusCode,
		},
	}
}
