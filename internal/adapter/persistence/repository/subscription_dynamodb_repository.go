package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

type subscriptionItem struct {
	UserID     string `dynamodbav:"user_id"`
	Status     string `dynamodbav:"status"`
	Tier       string `dynamodbav:"tier"`
	ValidUntil string `dynamodbav:"valid_until"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository keeps one row per user (PK: user_id).
type SubscriptionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb DynamoDBAPI, tableName string) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SubscriptionDynamoRepository) Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(subscriptionItem{
		UserID:     s.UserID,
		Status:     string(s.Status),
		Tier:       s.Tier,
		ValidUntil: s.ValidUntil.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Subscription{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Subscription{
		UserID:     it.UserID,
		Status:     entities.SubscriptionStatus(it.Status),
		Tier:       it.Tier,
		ValidUntil: validUntil,
		UpdatedAt:  updatedAt,
	}, nil
}
