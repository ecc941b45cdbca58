package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps resty for requests to the Stripe API. Responses are returned
// whole so callers can map non-2xx statuses themselves. No retries: an
// upstream failure is terminal for the invocation.
type Client struct {
	r *resty.Client
}

// New creates a new HTTP client with sensible defaults.
func New() *Client {
	r := resty.New().SetTimeout(30 * time.Second)
	return &Client{r: r}
}

// WithTimeout sets a custom timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.r.SetTimeout(d)
	}
	return c
}

// WithBearerToken sets a bearer token for authentication.
func (c *Client) WithBearerToken(token string) *Client {
	c.r.SetAuthToken(token)
	return c
}

// WithHeader sets a custom header.
func (c *Client) WithHeader(key, value string) *Client {
	c.r.SetHeader(key, value)
	return c
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, url string) (*resty.Response, error) {
	return c.r.R().SetContext(ctx).Get(url)
}

// PostForm sends a POST request with a form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, url string, data map[string]string) (*resty.Response, error) {
	return c.r.R().SetContext(ctx).SetFormData(data).Post(url)
}

// Raw returns the underlying resty client for advanced usage.
func (c *Client) Raw() *resty.Client {
	return c.r
}
