package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/gwerr"
	"paygate/internal/secrets"
)

type fakeStore struct {
	secret   *string
	err      error
	secretID string
}

func (f *fakeStore) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.secretID = aws.ToString(params.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.secret}, nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		secret       *string
		storeErr     error
		expectedKey  string
		expectedKind gwerr.Kind
		expectedErr  bool
	}{
		{
			name:        "structured bundle",
			secret:      aws.String(`{"stripeSecretKey":"sk_live_abc"}`),
			expectedKey: "sk_live_abc",
		},
		{
			name:        "bundle with extras",
			secret:      aws.String(`{"stripeSecretKey":"sk_live_abc","webhookSecret":"whsec_1"}`),
			expectedKey: "sk_live_abc",
		},
		{
			name:        "bare key",
			secret:      aws.String("sk_live_raw"),
			expectedKey: "sk_live_raw",
		},
		{
			name:   "bundle without key falls back to raw string",
			secret: aws.String(`{"otherKey":"v"}`),
			// The raw JSON itself is the fallback, format unvalidated.
			expectedKey: `{"otherKey":"v"}`,
		},
		{
			name:        "bundle with blank key falls back to raw string",
			secret:      aws.String(`{"stripeSecretKey":"  "}`),
			expectedKey: `{"stripeSecretKey":"  "}`,
		},
		{
			name:         "whitespace only secret",
			secret:       aws.String("   "),
			expectedErr:  true,
			expectedKind: gwerr.KindUnexpected,
		},
		{
			name:         "nil secret string",
			secret:       nil,
			expectedErr:  true,
			expectedKind: gwerr.KindUnexpected,
		},
		{
			name:         "store call fails",
			storeErr:     errors.New("access denied"),
			expectedErr:  true,
			expectedKind: gwerr.KindSecretStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := secrets.NewServiceWithClient(&fakeStore{secret: tt.secret, err: tt.storeErr}, "")
			key, err := svc.Resolve(context.Background(), "store-1")
			if tt.expectedErr {
				require.Error(t, err)
				kind, ok := gwerr.KindOf(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectedKind, kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKey, key)
		})
	}
}

func TestResolveEmptyStoreID(t *testing.T) {
	store := &fakeStore{secret: aws.String("sk_live_raw")}
	svc := secrets.NewServiceWithClient(store, "")

	_, err := svc.Resolve(context.Background(), "")
	require.Error(t, err)
	kind, _ := gwerr.KindOf(err)
	assert.Equal(t, gwerr.KindInvalidRequest, kind)
	assert.Empty(t, store.secretID, "no lookup for empty store id")
}

func TestResolvePrefix(t *testing.T) {
	store := &fakeStore{secret: aws.String("sk_live_raw")}
	svc := secrets.NewServiceWithClient(store, "paygate/stores/")

	_, err := svc.Resolve(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, "paygate/stores/store-1", store.secretID)
}
