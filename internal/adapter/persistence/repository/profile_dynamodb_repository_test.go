package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/domain/entities"
)

func TestProfileDynamoRepository(t *testing.T) {
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

	t.Run("upsert stores nested preferences", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewProfileDynamoRepository(fake, "profiles")

		_, err := repo.Upsert(context.Background(), entities.Profile{
			UserID:      "u-1",
			Username:    "ann",
			Preferences: entities.ProfilePreferences{HallucinationMode: true, Theme: entities.ThemeDark},
			UpdatedAt:   at,
		})
		require.NoError(t, err)
		require.Len(t, fake.puts, 1)
		require.Nil(t, fake.puts[0].ConditionExpression)

		var stored profileItem
		require.NoError(t, attributevalue.UnmarshalMap(fake.puts[0].Item, &stored))
		require.Equal(t, "dark", stored.Preferences.Theme)
		require.True(t, stored.Preferences.HallucinationMode)
		_, hasProduct := fake.puts[0].Item["active_product"]
		require.False(t, hasProduct)
	})

	t.Run("missing row is zero value", func(t *testing.T) {
		p, err := NewProfileDynamoRepository(&fakeDynamo{}, "profiles").GetByUserID(context.Background(), "u-1")
		require.NoError(t, err)
		require.Empty(t, p.UserID)
	})

	t.Run("existing row", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(profileItem{
			UserID:        "u-1",
			Username:      "ann",
			Preferences:   preferencesItem{QuantumProcessing: true, Theme: "light"},
			ActiveProduct: entities.ProductNoirCode,
			UpdatedAt:     at.Format(time.RFC3339Nano),
		})
		require.NoError(t, err)

		p, err := NewProfileDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: item}}, "profiles").GetByUserID(context.Background(), "u-1")
		require.NoError(t, err)
		require.Equal(t, "ann", p.Username)
		require.True(t, p.Preferences.QuantumProcessing)
		require.Equal(t, entities.ProductNoirCode, p.ActiveProduct)
		require.True(t, p.UpdatedAt.Equal(at))
	})

	t.Run("active product only updates existing rows", func(t *testing.T) {
		fake := &fakeDynamo{}
		require.NoError(t, NewProfileDynamoRepository(fake, "profiles").SetActiveProduct(context.Background(), "u-1", entities.ProductNoirAI, at))
		require.Len(t, fake.updates, 1)
		require.Equal(t, "attribute_exists(#uid)", *fake.updates[0].ConditionExpression)
		require.Equal(t, &types.AttributeValueMemberS{Value: entities.ProductNoirAI}, fake.updates[0].ExpressionAttributeValues[":product"])

		missing := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		require.NoError(t, NewProfileDynamoRepository(missing, "profiles").SetActiveProduct(context.Background(), "u-2", entities.ProductNoirAI, at))

		boom := errors.New("throttled")
		err := NewProfileDynamoRepository(&fakeDynamo{updateErr: boom}, "profiles").SetActiveProduct(context.Background(), "u-1", entities.ProductNoirAI, at)
		require.ErrorIs(t, err, boom)
	})

	t.Run("count", func(t *testing.T) {
		fake := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Count: 4}}}
		n, err := NewProfileDynamoRepository(fake, "profiles").Count(context.Background())
		require.NoError(t, err)
		require.Equal(t, int64(4), n)
		require.Equal(t, types.SelectCount, fake.scans[0].Select)
	})
}
