package stripe

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"

	"paygate/internal/gwerr"
)

const (
	defaultBaseURL = "https://api.stripe.com"
	defaultTimeout = 30 * time.Second

	statusSuccess = "success"
)

// Config carries the remote API settings shared by all processors.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// handleStripeResponse decodes a Stripe response body. Non-2xx statuses are
// relayed as invalid-request errors carrying Stripe's error.message when the
// body has one.
func handleStripeResponse(resp *resty.Response) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, gwerr.Serialization(err)
	}
	if resp.IsSuccess() {
		return body, nil
	}

	message := "Unknown Stripe error"
	if errObj, ok := body["error"].(map[string]interface{}); ok {
		if msg, ok := errObj["message"].(string); ok && msg != "" {
			message = msg
		}
	}
	return nil, gwerr.InvalidRequest("%s", message)
}

func getString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func getInt64(m map[string]interface{}, key string) *int64 {
	if v, ok := m[key].(float64); ok {
		n := int64(v)
		return &n
	}
	return nil
}
