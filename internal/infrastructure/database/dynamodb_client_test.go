package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/config"
)

func TestNewDynamoDBClient(t *testing.T) {
	cfg := config.AWSConfig{Region: "ap-southeast-1", AccessKeyID: "local", SecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"}

	client, err := NewDynamoDBClient(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, "ap-southeast-1", client.Options().Region)
	require.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)

	creds, err := client.Options().Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)
}
