package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/domain/entities"
)

func TestSystemLogDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamo{}
	err := NewSystemLogDynamoRepository(fake, "system_logs").Create(context.Background(), entities.SystemLog{
		ID:        "log-1",
		Type:      entities.SystemLogAuth,
		Message:   "RELAY_ESTABLISHED: a@b.co logged in.",
		CreatedAt: time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var stored systemLogItem
	require.NoError(t, attributevalue.UnmarshalMap(fake.puts[0].Item, &stored))
	require.Equal(t, "system", stored.Stream)
	require.Equal(t, "2026-04-02T09:30:00.000000000Z#log-1", stored.SortKey)
	require.Equal(t, "AUTH", stored.Type)
}

func TestSystemLogDynamoRepository_Recent(t *testing.T) {
	newer, err := attributevalue.MarshalMap(systemLogItem{ID: "log-2", Type: "USAGE", Message: "m2", CreatedAt: "2026-04-02T09:31:00.000000000Z"})
	require.NoError(t, err)
	older, err := attributevalue.MarshalMap(systemLogItem{ID: "log-1", Type: "AUTH", Message: "m1", CreatedAt: "2026-04-02T09:30:00.000000000Z"})
	require.NoError(t, err)

	fake := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{newer, older}}}}
	logs, err := NewSystemLogDynamoRepository(fake, "system_logs").Recent(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, logs, 2)
	require.Equal(t, "log-2", logs[0].ID)
	require.Equal(t, entities.SystemLogUsage, logs[0].Type)
	require.True(t, logs[1].CreatedAt.Equal(time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)))

	q := fake.queries[0]
	require.False(t, *q.ScanIndexForward)
	require.Equal(t, int32(5), *q.Limit)
}
