package db

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSecrets struct {
	value *string
	err   error
	asked string
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.asked = aws.ToString(in.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestRetrieveCredentials_PrefersInlineCredentials(t *testing.T) {
	cfg := &config.Config{DBUsername: "app", DBPassword: "secret", DBSecretID: "ignored"}
	user, pass, err := retrieveCredentials(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "app", user)
	assert.Equal(t, "secret", pass)
}

func TestRetrieveCredentials_RequiresSomeSource(t *testing.T) {
	_, _, err := retrieveCredentials(context.Background(), &config.Config{})
	assert.Error(t, err)
}

func TestRetrieveCredentials_FromSecretsManager(t *testing.T) {
	fake := &fakeSecrets{value: aws.String(`{"username":"svc","password":"pw"}`)}
	orig := newSecretsClient
	newSecretsClient = func(ctx context.Context) (secretGetter, error) { return fake, nil }
	t.Cleanup(func() { newSecretsClient = orig })

	user, pass, err := retrieveCredentials(context.Background(), &config.Config{DBSecretID: "prod/sales"})
	require.NoError(t, err)
	assert.Equal(t, "prod/sales", fake.asked)
	assert.Equal(t, "svc", user)
	assert.Equal(t, "pw", pass)
}

func TestFetchSecret_Errors(t *testing.T) {
	_, _, err := fetchSecret(context.Background(), &fakeSecrets{err: errors.New("denied")}, "x")
	assert.ErrorContains(t, err, "denied")

	_, _, err = fetchSecret(context.Background(), &fakeSecrets{}, "x")
	assert.ErrorContains(t, err, "no string value")

	_, _, err = fetchSecret(context.Background(), &fakeSecrets{value: aws.String("not json")}, "x")
	assert.ErrorContains(t, err, "decode secret")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{DBHost: "db", DBName: "sales", DBPort: 5433, DBSSLDisable: true}
	assert.Equal(t, "host=db user=u password=p dbname=sales port=5433 sslmode=disable", PostgresDSN(cfg, "u", "p"))
}

func TestOpenInMemory_EnforcesConstraints(t *testing.T) {
	database, err := OpenInMemory()
	require.NoError(t, err)

	c := models.Client{ClientName: "Acme", ClientContact: "1", ClientEmail: "a@acme.com", JobTitle: "CTO", DealInformation: "x"}
	require.NoError(t, database.Create(&c).Error)

	dup := models.Client{ClientName: "Other", ClientContact: "2", ClientEmail: "a@acme.com", JobTitle: "CEO", DealInformation: "y"}
	err = database.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	orphan := models.Office{OfficeName: "Suite 1", BuildingID: 999}
	assert.Error(t, database.Create(&orphan).Error)
}
