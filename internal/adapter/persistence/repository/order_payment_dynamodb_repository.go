package repository

import (
	"context"
	"time"

	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrderPaymentsTableName = "order_payments"

// dynamoAPI is the subset of *dynamodb.Client the repository needs.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type orderPaymentItem struct {
	OrderRef      string            `dynamodbav:"order_ref"`
	Token         string            `dynamodbav:"token,omitempty"`
	TransactionID string            `dynamodbav:"transaction_id,omitempty"`
	Status        string            `dynamodbav:"status"`
	ResultCode    string            `dynamodbav:"result_code"`
	PrivateData   map[string]string `dynamodbav:"private_data,omitempty"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
}

// OrderPaymentDynamoRepository persists the shop-side order payment status.
//
// Table requirements:
//   - PK: order_ref (string)
//
// Writes are last-writer-wins: a later notification for the same order
// replaces the previous outcome.

type OrderPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderPaymentRepository = (*OrderPaymentDynamoRepository)(nil)

func NewOrderPaymentDynamoRepository(ddb dynamoAPI, tableName string) *OrderPaymentDynamoRepository {
	return &OrderPaymentDynamoRepository{
		ddb:       ddb,
		tableName: resolveTableName(tableName, "ORDER_PAYMENTS_TABLE", defaultOrderPaymentsTableName),
	}
}

func (r *OrderPaymentDynamoRepository) Save(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	av, err := attributevalue.MarshalMap(toOrderPaymentItem(p))
	if err != nil {
		return entities.OrderPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.OrderPayment{}, err
	}
	return p, nil
}

func (r *OrderPaymentDynamoRepository) GetByOrderRef(ctx context.Context, orderRef string) (entities.OrderPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_ref": &types.AttributeValueMemberS{Value: orderRef},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderPayment{}, nil
	}

	var it orderPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderPayment{}, err
	}
	return fromOrderPaymentItem(it), nil
}

func toOrderPaymentItem(p entities.OrderPayment) orderPaymentItem {
	return orderPaymentItem{
		OrderRef:      p.OrderRef,
		Token:         p.Token,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		ResultCode:    p.ResultCode,
		PrivateData:   p.PrivateData,
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderPaymentItem(it orderPaymentItem) entities.OrderPayment {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.OrderPayment{
		OrderRef:      it.OrderRef,
		Token:         it.Token,
		TransactionID: it.TransactionID,
		Status:        entities.OrderPaymentStatus(it.Status),
		ResultCode:    it.ResultCode,
		PrivateData:   it.PrivateData,
		UpdatedAt:     updatedAt,
	}
}
