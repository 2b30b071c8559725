package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/domain/entities"
)

func TestInvoiceDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewInvoiceDynamoRepository(fake, "invoices")

	rec := entities.InvoiceRecord{
		ID:               "inv-1",
		ExternalID:       "ord-1",
		UserID:           "u-1",
		Amount:           150000,
		Currency:         "IDR",
		Status:           entities.InvoiceStatusPending,
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ProviderResponse: json.RawMessage(`{"id":"inv-1"}`),
	}
	_, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)

	require.Len(t, fake.puts, 1)
	in := fake.puts[0]
	require.Equal(t, "invoices", aws.ToString(in.TableName))
	require.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))

	var it invoiceItem
	require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
	require.Equal(t, "2026-01-02T03:04:05Z", it.CreatedAt)
	require.Equal(t, `{"id":"inv-1"}`, it.ProviderResponse)
}

func TestInvoiceDynamoRepository_ListByUserID(t *testing.T) {
	page := func(id string, last map[string]types.AttributeValue) *dynamodb.QueryOutput {
		item, err := attributevalue.MarshalMap(invoiceItem{ID: id, UserID: "u-1", Status: "PAID", CreatedAt: "2026-01-02T03:04:05Z"})
		require.NoError(t, err)
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}, LastEvaluatedKey: last}
	}
	fake := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{
		page("inv-1", map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "inv-1"}}),
		page("inv-2", nil),
	}}
	repo := NewInvoiceDynamoRepository(fake, "invoices")

	items, err := repo.ListByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "inv-2", items[1].ID)
	require.Equal(t, entities.InvoiceStatusPaid, items[0].Status)
	require.Equal(t, "user_id-index", aws.ToString(fake.queries[0].IndexName))
	require.NotNil(t, fake.queries[1].ExclusiveStartKey)
}
