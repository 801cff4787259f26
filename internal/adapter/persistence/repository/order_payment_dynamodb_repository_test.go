package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"webpay_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory keyed by order_ref.
type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	tables []string
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, aws.ToString(in.TableName))
	key := in.Item["order_ref"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, aws.ToString(in.TableName))
	key := in.Key["order_ref"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func TestOrderPaymentDynamoRepository_SaveAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewOrderPaymentDynamoRepository(ddb, "payments_test")

	p := entities.OrderPayment{
		OrderRef:      "ORD-1",
		Token:         "tok-1",
		TransactionID: "X",
		Status:        entities.OrderPaymentStatusPaid,
		ResultCode:    entities.ResultCodeApproved,
		PrivateData:   map[string]string{"cart_id": "42"},
		UpdatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	saved, err := repo.Save(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p, saved)

	got, err := repo.GetByOrderRef(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, []string{"payments_test", "payments_test"}, ddb.tables)
}

func TestOrderPaymentDynamoRepository_LastWriteWins(t *testing.T) {
	repo := NewOrderPaymentDynamoRepository(newFakeDynamo(), "payments_test")
	ctx := context.Background()

	_, err := repo.Save(ctx, entities.OrderPayment{OrderRef: "ORD-1", Status: entities.OrderPaymentStatusFailed})
	require.NoError(t, err)
	_, err = repo.Save(ctx, entities.OrderPayment{OrderRef: "ORD-1", Status: entities.OrderPaymentStatusPaid})
	require.NoError(t, err)

	got, err := repo.GetByOrderRef(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderPaymentStatusPaid, got.Status)
}

func TestOrderPaymentDynamoRepository_Missing(t *testing.T) {
	repo := NewOrderPaymentDynamoRepository(newFakeDynamo(), "payments_test")

	got, err := repo.GetByOrderRef(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.OrderRef)
}

func TestOrderPaymentDynamoRepository_Errors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("throttled")
	repo := NewOrderPaymentDynamoRepository(ddb, "payments_test")

	_, err := repo.Save(context.Background(), entities.OrderPayment{OrderRef: "ORD-1"})
	assert.EqualError(t, err, "throttled")

	_, err = repo.GetByOrderRef(context.Background(), "ORD-1")
	assert.EqualError(t, err, "throttled")
}

func TestNewOrderPaymentDynamoRepository_TableFromEnv(t *testing.T) {
	t.Setenv("ORDER_PAYMENTS_TABLE", "from_env")
	ddb := newFakeDynamo()
	repo := NewOrderPaymentDynamoRepository(ddb, "")

	_, err := repo.GetByOrderRef(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"from_env"}, ddb.tables)
}
