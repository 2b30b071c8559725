package repository

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

type waitlistItem struct {
	Email     string `dynamodbav:"email"`
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// WaitlistDynamoRepository stores signups keyed by email (PK: email).
type WaitlistDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWaitlistRepository = (*WaitlistDynamoRepository)(nil)

func NewWaitlistDynamoRepository(ddb DynamoDBAPI, tableName string) *WaitlistDynamoRepository {
	return &WaitlistDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WaitlistDynamoRepository) Create(ctx context.Context, e entities.WaitlistEntry) (entities.WaitlistEntry, error) {
	av, err := attributevalue.MarshalMap(waitlistItem{
		Email:     e.Email,
		ID:        e.ID,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.WaitlistEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.WaitlistEntry{}, interfaces.ErrWaitlistEntryExists
		}
		return entities.WaitlistEntry{}, err
	}
	return e, nil
}

func (r *WaitlistDynamoRepository) Count(ctx context.Context) (int64, error) {
	return countItems(ctx, r.ddb, r.tableName)
}

// List returns every signup, newest first.
func (r *WaitlistDynamoRepository) List(ctx context.Context) ([]entities.WaitlistEntry, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var entries []entities.WaitlistEntry
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []waitlistItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			entries = append(entries, entities.WaitlistEntry{ID: it.ID, Email: it.Email, CreatedAt: createdAt})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}
