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

const invoicesUserIDIndex = "user_id-index"

type invoiceItem struct {
	ID               string  `dynamodbav:"id"`
	ExternalID       string  `dynamodbav:"external_id"`
	UserID           string  `dynamodbav:"user_id"`
	PayerEmail       string  `dynamodbav:"payer_email"`
	Amount           float64 `dynamodbav:"amount"`
	Currency         string  `dynamodbav:"currency"`
	Description      string  `dynamodbav:"description,omitempty"`
	Status           string  `dynamodbav:"status"`
	InvoiceURL       string  `dynamodbav:"invoice_url,omitempty"`
	ExpiryDate       string  `dynamodbav:"expiry_date,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	ProviderResponse string  `dynamodbav:"provider_response,omitempty"`
}

// InvoiceDynamoRepository is the invoice ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type InvoiceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoDBAPI, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create writes the record once; the provider id never repeats, so a second
// write of the same id is a conflict.
func (r *InvoiceDynamoRepository) Create(ctx context.Context, rec entities.InvoiceRecord) (entities.InvoiceRecord, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(rec))
	if err != nil {
		return entities.InvoiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	return rec, nil
}

func (r *InvoiceDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.InvoiceRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	items := make([]entities.InvoiceRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInvoiceItem(it))
		}
	}
	return items, nil
}

func toInvoiceItem(rec entities.InvoiceRecord) invoiceItem {
	return invoiceItem{
		ID:               rec.ID,
		ExternalID:       rec.ExternalID,
		UserID:           rec.UserID,
		PayerEmail:       rec.PayerEmail,
		Amount:           rec.Amount,
		Currency:         rec.Currency,
		Description:      rec.Description,
		Status:           string(rec.Status),
		InvoiceURL:       rec.InvoiceURL,
		ExpiryDate:       rec.ExpiryDate,
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		ProviderResponse: string(rec.ProviderResponse),
	}
}

func fromInvoiceItem(it invoiceItem) entities.InvoiceRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	rec := entities.InvoiceRecord{
		ID:          it.ID,
		ExternalID:  it.ExternalID,
		UserID:      it.UserID,
		PayerEmail:  it.PayerEmail,
		Amount:      it.Amount,
		Currency:    it.Currency,
		Description: it.Description,
		Status:      entities.InvoiceStatus(it.Status),
		InvoiceURL:  it.InvoiceURL,
		ExpiryDate:  it.ExpiryDate,
		CreatedAt:   createdAt,
	}
	if it.ProviderResponse != "" {
		rec.ProviderResponse = []byte(it.ProviderResponse)
	}
	return rec
}
