package models

// PaymentRequest is the typed payload carried by an inbound event. It is
// built once per invocation; which optional fields must be set depends on
// the request type and is checked by the processor that handles it.
type PaymentRequest struct {
	StoreID      string                 `json:"storeId"`
	Amount       *int64                 `json:"amount,omitempty"`
	Currency     string                 `json:"currency,omitempty"`
	PaymentToken string                 `json:"paymentToken,omitempty"`
	Description  string                 `json:"description,omitempty"`
	RequestType  string                 `json:"requestType"`
	SuccessURL   string                 `json:"successUrl,omitempty"`
	CancelURL    string                 `json:"cancelUrl,omitempty"`
	ChargeID     string                 `json:"chargeId,omitempty"`
	SessionID    string                 `json:"sessionId,omitempty"`
	WebhookEvent map[string]interface{} `json:"webhookEvent,omitempty"`
}

// AmountOrZero returns the amount in minor currency units, or 0 when absent.
func (r *PaymentRequest) AmountOrZero() int64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}
