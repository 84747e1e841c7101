package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/salestrack/sales-api/internal/config"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// secretGetter é o subconjunto do cliente do Secrets Manager que usamos.
type secretGetter interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var newSecretsClient = func(ctx context.Context) (secretGetter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// retrieveCredentials usa DB_USERNAME/DB_PASSWORD quando definidos; caso
// contrário busca o segredo DB_SECRET_ID no Secrets Manager.
func retrieveCredentials(ctx context.Context, cfg *config.Config) (string, string, error) {
	if cfg.DBUsername != "" && cfg.DBPassword != "" {
		return cfg.DBUsername, cfg.DBPassword, nil
	}
	if cfg.DBSecretID == "" {
		return "", "", errors.New("credenciais do banco ausentes: defina DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID")
	}

	client, err := newSecretsClient(ctx)
	if err != nil {
		return "", "", fmt.Errorf("aws config: %w", err)
	}
	return fetchSecret(ctx, client, cfg.DBSecretID)
}

func fetchSecret(ctx context.Context, client secretGetter, secretID string) (string, string, error) {
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("get secret %s: %w", secretID, err)
	}
	if result.SecretString == nil {
		return "", "", fmt.Errorf("secret %s has no string value", secretID)
	}

	var secret Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return "", "", fmt.Errorf("decode secret %s: %w", secretID, err)
	}
	return secret.Username, secret.Password, nil
}
