package repository

import (
	"context"
	"time"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderLogTableName = "order_log"
	orderLogGuestPhoneIndex  = "guest_phone-index"
)

type orderLogLineItem struct {
	CatalogPath    string `dynamodbav:"catalog_path"`
	DisplayName    string `dynamodbav:"display_name"`
	Quantity       int    `dynamodbav:"quantity"`
	UnitPriceMinor int64  `dynamodbav:"unit_price_minor"`
}

type orderLogItem struct {
	ID               string             `dynamodbav:"id"`
	GuestPhone       string             `dynamodbav:"guest_phone"`
	GuestName        string             `dynamodbav:"guest_name"`
	PlaceReference   string             `dynamodbav:"place_reference"`
	OrderReference   string             `dynamodbav:"order_reference"`
	PaymentReference string             `dynamodbav:"payment_reference,omitempty"`
	TotalMinor       int64              `dynamodbav:"total_minor"`
	Lines            []orderLogLineItem `dynamodbav:"lines"`
	CreatedAt        string             `dynamodbav:"created_at"`
}

// OrderLogDynamoRepository persists order audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: guest_phone-index (PK: guest_phone)

type OrderLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderLogRepository = (*OrderLogDynamoRepository)(nil)

func NewOrderLogDynamoRepository(ddb *dynamodb.Client) *OrderLogDynamoRepository {
	return &OrderLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_LOG_TABLE", defaultOrderLogTableName),
	}
}

func (r *OrderLogDynamoRepository) Create(ctx context.Context, e interfaces.OrderLogEntry) (interfaces.OrderLogEntry, error) {
	it := toOrderLogItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return interfaces.OrderLogEntry{}, err
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
		return interfaces.OrderLogEntry{}, err
	}
	return e, nil
}

// ListByGuestPhone returns all audit records for one guest, most useful for
// support lookups.
func (r *OrderLogDynamoRepository) ListByGuestPhone(ctx context.Context, phone string) ([]interfaces.OrderLogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderLogGuestPhoneIndex),
		KeyConditionExpression: aws.String("guest_phone = :gp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gp": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]interfaces.OrderLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromOrderLogItem(it))
	}
	return entries, nil
}

func toOrderLogItem(e interfaces.OrderLogEntry) orderLogItem {
	lines := make([]orderLogLineItem, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, orderLogLineItem{
			CatalogPath:    l.CatalogPath,
			DisplayName:    l.DisplayName,
			Quantity:       l.Quantity,
			UnitPriceMinor: l.UnitPriceMinor,
		})
	}
	return orderLogItem{
		ID:               e.ID,
		GuestPhone:       e.GuestPhone,
		GuestName:        e.GuestName,
		PlaceReference:   e.PlaceReference,
		OrderReference:   e.OrderReference,
		PaymentReference: e.PaymentReference,
		TotalMinor:       e.TotalMinor,
		Lines:            lines,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderLogItem(it orderLogItem) interfaces.OrderLogEntry {
	entry := interfaces.OrderLogEntry{
		ID:               it.ID,
		GuestPhone:       it.GuestPhone,
		GuestName:        it.GuestName,
		PlaceReference:   it.PlaceReference,
		OrderReference:   it.OrderReference,
		PaymentReference: it.PaymentReference,
		TotalMinor:       it.TotalMinor,
	}
	entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	for _, l := range it.Lines {
		entry.Lines = append(entry.Lines, entities.ResolvedOrderLine{
			CatalogPath:    l.CatalogPath,
			DisplayName:    l.DisplayName,
			Quantity:       l.Quantity,
			UnitPriceMinor: l.UnitPriceMinor,
		})
	}
	return entry
}
