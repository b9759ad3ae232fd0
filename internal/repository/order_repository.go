package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	pkgconfig "github.com/OmarHosamCodes/noocommerce/pkg/config"
)

// OrderRepository persists checkout acknowledgments in a DynamoDB single
// table. Order items live under ORDER#<id>/METADATA with a GSI keyed by the
// buyer; idempotency items under IDEM#<key> point a retried checkout at the
// order that was already created upstream.
type OrderRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewOrderRepository(client *dynamodb.Client, tableName string) *OrderRepository {
	return &OrderRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *OrderRepository) CreateOrderRecord(ctx context.Context, rec *domain.OrderRecord) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal order record: %w", err)
	}

	av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%d", rec.OrderID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "METADATA"}
	av["GSI1PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", rec.Email)}
	av["GSI1SK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", rec.CreatedAt.Format("2006-01-02T15:04:05Z"))}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put order record: %w", err)
	}

	if rec.IdempotencyKey != "" {
		_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item: map[string]types.AttributeValue{
				"PK":       &types.AttributeValueMemberS{Value: fmt.Sprintf("IDEM#%s", rec.IdempotencyKey)},
				"SK":       &types.AttributeValueMemberS{Value: "METADATA"},
				"order_id": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rec.OrderID)},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to put idempotency item: %w", err)
		}
	}

	return nil
}

func (r *OrderRepository) GetOrderRecord(ctx context.Context, orderID int64) (*domain.OrderRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%d", orderID)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrOrderNotFound
	}

	var rec domain.OrderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByIdempotencyKey returns the order record a previous checkout with
// this key produced, or ErrOrderNotFound.
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.OrderRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("IDEM#%s", key)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrOrderNotFound
	}

	var pointer struct {
		OrderID int64 `dynamodbav:"order_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &pointer); err != nil {
		return nil, err
	}
	return r.GetOrderRecord(ctx, pointer.OrderID)
}
