package models

// Per-operation result objects. Fields missing from the Stripe response stay
// nil and serialize as null; a 200-level response is never rejected for
// lacking an expected field.

// ChargeResponse is the result of a CHARGE operation.
type ChargeResponse struct {
	Status     string  `json:"status"`
	Message    *string `json:"message"`
	ChargeID   *string `json:"chargeId"`
	Amount     *int64  `json:"amount"`
	Currency   *string `json:"currency"`
	StatusCode int     `json:"statusCode"`
}

// PaymentLinkResponse is the result of a PAYMENT_LINK operation.
type PaymentLinkResponse struct {
	Status      string  `json:"status"`
	Message     *string `json:"message"`
	PaymentLink *string `json:"paymentLink"`
	StatusCode  int     `json:"statusCode"`
}

// RefundResponse is the result of a REFUND operation.
type RefundResponse struct {
	Status     string  `json:"status"`
	Message    *string `json:"message"`
	RefundID   *string `json:"refundId"`
	Amount     *int64  `json:"amount"`
	Currency   *string `json:"currency"`
	StatusCode int     `json:"statusCode"`
}

// PaymentStatusResponse is the result of a STATUS operation.
type PaymentStatusResponse struct {
	Status        string  `json:"status"`
	Message       *string `json:"message"`
	PaymentID     *string `json:"paymentId"`
	PaymentStatus *string `json:"paymentStatus"`
	Amount        *int64  `json:"amount"`
	Currency      *string `json:"currency"`
	StatusCode    int     `json:"statusCode"`
}

// WebhookResponse is the result of a WEBHOOK operation.
type WebhookResponse struct {
	Status     string  `json:"status"`
	Message    *string `json:"message"`
	EventID    *string `json:"eventId"`
	StatusCode int     `json:"statusCode"`
}

// ErrorResponse replaces the typed result when any stage fails.
type ErrorResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
