package parser

import (
	"bytes"
	"encoding/json"
	"errors"

	"paygate/internal/gwerr"
	"paygate/internal/models"
)

// RequestParser extracts a typed PaymentRequest from a raw inbound event.
// The event's "body" field may hold either a JSON object or a JSON-encoded
// string, matching what API-gateway style runtimes deliver.
type RequestParser struct{}

func NewRequestParser() *RequestParser {
	return &RequestParser{}
}

func (p *RequestParser) Parse(raw json.RawMessage) (*models.PaymentRequest, error) {
	var event map[string]json.RawMessage
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, gwerr.Serialization(err)
	}

	body, ok := event["body"]
	if !ok {
		return nil, gwerr.InvalidRequest("request body is missing")
	}

	body = bytes.TrimSpace(body)
	var req models.PaymentRequest
	switch {
	case len(body) > 0 && body[0] == '"':
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return nil, gwerr.Serialization(err)
		}
		if err := json.Unmarshal([]byte(inner), &req); err != nil {
			return nil, gwerr.Serialization(err)
		}
	case len(body) > 0 && body[0] == '{':
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, gwerr.Serialization(err)
		}
	default:
		return nil, gwerr.InvalidRequest("body must be a JSON string or object")
	}

	if req.StoreID == "" {
		return nil, gwerr.Serialization(errors.New("missing required field: storeId"))
	}
	if req.RequestType == "" {
		return nil, gwerr.Serialization(errors.New("missing required field: requestType"))
	}

	return &req, nil
}
