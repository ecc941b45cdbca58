package stripe_test

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paygate/internal/gwerr"
	"paygate/internal/models"
	"paygate/internal/stripe"
)

func refundRequest() *models.PaymentRequest {
	return &models.PaymentRequest{
		StoreID:     "store-1",
		RequestType: "REFUND",
		ChargeID:    "ch_1",
		Amount:      int64Ptr(500),
	}
}

func TestRefundProcessor_Success(t *testing.T) {
	defer gock.Off()
	gock.New(testBaseURL).
		Post("/v1/refunds").
		MatchHeader("Authorization", "Bearer sk_test_123").
		BodyString("amount=500&charge=ch_1").
		Reply(200).
		JSON(map[string]interface{}{"id": "re_1", "amount": 500, "currency": "usd"})

	p := stripe.NewRefundProcessor("sk_test_123", stripe.Config{BaseURL: testBaseURL}, zap.NewNop())
	gock.InterceptClient(p.HTTPClient().Raw().GetClient())

	resp, err := p.Process(context.Background(), refundRequest())
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.RefundID)
	assert.Equal(t, "re_1", *resp.RefundID)
	require.NotNil(t, resp.Amount)
	assert.Equal(t, int64(500), *resp.Amount)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, gock.IsDone())
}

func TestRefundProcessor_MissingChargeID(t *testing.T) {
	p := stripe.NewRefundProcessor("sk_test_123", stripe.Config{BaseURL: testBaseURL}, zap.NewNop())

	req := refundRequest()
	req.ChargeID = ""
	_, err := p.Process(context.Background(), req)
	require.Error(t, err)
	kind, _ := gwerr.KindOf(err)
	assert.Equal(t, gwerr.KindInvalidRequest, kind)
}

func TestRefundProcessor_StripeRejection(t *testing.T) {
	defer gock.Off()
	gock.New(testBaseURL).
		Post("/v1/refunds").
		Reply(400).
		JSON(map[string]interface{}{"error": map[string]interface{}{"message": "Charge ch_1 has already been refunded."}})

	p := stripe.NewRefundProcessor("sk_test_123", stripe.Config{BaseURL: testBaseURL}, zap.NewNop())
	gock.InterceptClient(p.HTTPClient().Raw().GetClient())

	_, err := p.Process(context.Background(), refundRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, "already been refunded")
}
