package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/domain/entities"
)

func TestSubscriptionDynamoRepository(t *testing.T) {
	validUntil := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	t.Run("upsert is unconditional", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewSubscriptionDynamoRepository(fake, "user_subscriptions")

		_, err := repo.Upsert(context.Background(), entities.Subscription{UserID: "u-1", Status: entities.SubscriptionStatusActive, Tier: "researcher", ValidUntil: validUntil})
		require.NoError(t, err)
		require.Len(t, fake.puts, 1)
		require.Nil(t, fake.puts[0].ConditionExpression)
	})

	t.Run("missing row is zero value", func(t *testing.T) {
		repo := NewSubscriptionDynamoRepository(&fakeDynamo{}, "user_subscriptions")
		sub, err := repo.GetByUserID(context.Background(), "u-1")
		require.NoError(t, err)
		require.Empty(t, sub.UserID)
	})

	t.Run("existing row", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(subscriptionItem{UserID: "u-1", Status: "active", Tier: "researcher", ValidUntil: "2026-03-31T12:00:00Z"})
		require.NoError(t, err)
		repo := NewSubscriptionDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: item}}, "user_subscriptions")

		sub, err := repo.GetByUserID(context.Background(), "u-1")
		require.NoError(t, err)
		require.True(t, sub.ValidUntil.Equal(validUntil))
		require.Equal(t, entities.SubscriptionStatusActive, sub.Status)
	})
}
