package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"go.uber.org/zap"
)

// SecretsAPI is the part of the Secrets Manager client this package uses.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration
// chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

// NewSecretsManagerClientWithAPI wraps an existing API implementation.
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString resolves a secret by the ARN held in secretArnEnvVar and
// falls back to the plain value in fallbackEnvVar. A secret stored as a
// single-key JSON object yields that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar, fallbackEnvVar string) (string, error) {
	secretArn := strings.TrimSpace(os.Getenv(secretArnEnvVar))

	if secretArn != "" && c != nil && c.svc != nil {
		logger.Debug("Fetching secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return unwrapSecret(*result.SecretString, secretArn), nil
		}
		logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Debug("Using secret value from environment", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func unwrapSecret(raw, secretArn string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(raw), &secretJSON); err != nil {
		return raw
	}
	if len(secretJSON) == 1 {
		for _, value := range secretJSON {
			return value
		}
	}
	logger.Warn("Secret is JSON but not single-key, returning raw value",
		zap.String("secretArn", secretArn),
		zap.Int("keyCount", len(secretJSON)),
	)
	return raw
}
