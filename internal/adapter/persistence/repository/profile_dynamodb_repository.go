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

type preferencesItem struct {
	HallucinationMode bool   `dynamodbav:"hallucination_mode"`
	QuantumProcessing bool   `dynamodbav:"quantum_processing"`
	Theme             string `dynamodbav:"theme"`
}

type profileItem struct {
	UserID        string          `dynamodbav:"user_id"`
	Username      string          `dynamodbav:"username"`
	Preferences   preferencesItem `dynamodbav:"preferences"`
	ActiveProduct string          `dynamodbav:"active_product,omitempty"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository keeps one settings row per user (PK: user_id).
type ProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoDBAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProfileDynamoRepository) Upsert(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(profileItem{
		UserID:   p.UserID,
		Username: p.Username,
		Preferences: preferencesItem{
			HallucinationMode: p.Preferences.HallucinationMode,
			QuantumProcessing: p.Preferences.QuantumProcessing,
			Theme:             p.Preferences.Theme,
		},
		ActiveProduct: p.ActiveProduct,
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Profile{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Profile{
		UserID:   it.UserID,
		Username: it.Username,
		Preferences: entities.ProfilePreferences{
			HallucinationMode: it.Preferences.HallucinationMode,
			QuantumProcessing: it.Preferences.QuantumProcessing,
			Theme:             it.Preferences.Theme,
		},
		ActiveProduct: it.ActiveProduct,
		UpdatedAt:     updatedAt,
	}, nil
}

func (r *ProfileDynamoRepository) SetActiveProduct(ctx context.Context, userID, product string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET #product = :product, #updated = :updated"),
		ConditionExpression: aws.String("attribute_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#product": "active_product",
			"#updated": "updated_at",
			"#uid":     "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":product": &types.AttributeValueMemberS{Value: product},
			":updated": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func (r *ProfileDynamoRepository) Count(ctx context.Context) (int64, error) {
	return countItems(ctx, r.ddb, r.tableName)
}
