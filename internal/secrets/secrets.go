package secrets

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"paygate/internal/gwerr"
)

// GetSecretValueAPI is the slice of the Secrets Manager client the service
// needs; tests supply fakes.
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Service resolves the per-store Stripe API key from the secret store.
// Secrets may be stored either as a JSON bundle carrying a stripeSecretKey
// field or as the bare key string; both conventions are accepted.
type Service struct {
	client GetSecretValueAPI
	prefix string
}

// NewService builds a Service on the default AWS configuration chain.
func NewService(ctx context.Context, prefix string) (*Service, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, gwerr.SecretStore(err)
	}
	return &Service{client: secretsmanager.NewFromConfig(cfg), prefix: prefix}, nil
}

// NewServiceWithClient builds a Service around an existing client.
func NewServiceWithClient(client GetSecretValueAPI, prefix string) *Service {
	return &Service{client: client, prefix: prefix}
}

// Resolve looks up the Stripe API key for storeID.
func (s *Service) Resolve(ctx context.Context, storeID string) (string, error) {
	if storeID == "" {
		return "", gwerr.InvalidRequest("store id cannot be empty")
	}

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.prefix + storeID),
	})
	if err != nil {
		return "", gwerr.SecretStore(err)
	}
	if out.SecretString == nil {
		return "", gwerr.Unexpected("secret is empty for store: %s", storeID)
	}
	raw := *out.SecretString

	// Structured bundle first, bare key second.
	var bundle struct {
		StripeSecretKey string `json:"stripeSecretKey"`
	}
	if err := json.Unmarshal([]byte(raw), &bundle); err == nil {
		if strings.TrimSpace(bundle.StripeSecretKey) != "" {
			return bundle.StripeSecretKey, nil
		}
	}

	if strings.TrimSpace(raw) == "" {
		return "", gwerr.Unexpected("secret is empty for store: %s", storeID)
	}
	return raw, nil
}
