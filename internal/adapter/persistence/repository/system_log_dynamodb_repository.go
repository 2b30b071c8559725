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

const (
	// Every entry shares one partition so the feed can be read in order.
	systemLogStream = "system"
	// Fixed width keeps the sort key ordered lexically like time.
	systemLogTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

type systemLogItem struct {
	Stream    string `dynamodbav:"stream"`
	SortKey   string `dynamodbav:"sort_key"`
	ID        string `dynamodbav:"id"`
	Type      string `dynamodbav:"type"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// SystemLogDynamoRepository stores the activity feed
// (PK: stream, SK: sort_key = created_at#id).
type SystemLogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISystemLogRepository = (*SystemLogDynamoRepository)(nil)

func NewSystemLogDynamoRepository(ddb DynamoDBAPI, tableName string) *SystemLogDynamoRepository {
	return &SystemLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SystemLogDynamoRepository) Create(ctx context.Context, l entities.SystemLog) error {
	createdAt := l.CreatedAt.UTC().Format(systemLogTimeLayout)
	av, err := attributevalue.MarshalMap(systemLogItem{
		Stream:    systemLogStream,
		SortKey:   createdAt + "#" + l.ID,
		ID:        l.ID,
		Type:      string(l.Type),
		Message:   l.Message,
		CreatedAt: createdAt,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SystemLogDynamoRepository) Recent(ctx context.Context, limit int) ([]entities.SystemLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#stream = :stream"),
		ExpressionAttributeNames: map[string]string{
			"#stream": "stream",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stream": &types.AttributeValueMemberS{Value: systemLogStream},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	var items []systemLogItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	logs := make([]entities.SystemLog, 0, len(items))
	for _, it := range items {
		createdAt, _ := time.Parse(systemLogTimeLayout, it.CreatedAt)
		logs = append(logs, entities.SystemLog{
			ID:        it.ID,
			Type:      entities.SystemLogType(it.Type),
			Message:   it.Message,
			CreatedAt: createdAt,
		})
	}
	return logs, nil
}
