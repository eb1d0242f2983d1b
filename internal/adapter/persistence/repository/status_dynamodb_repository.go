package repository

import (
	"context"

	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"

	statusKeyPrefix = "payment:"
)

type paymentStatusItem struct {
	PK     string `dynamodbav:"pk"`
	Status string `dynamodbav:"status"`
}

// StatusDynamoRepository is the durable status store: one item per billing
// identifier, key `payment:<billingId>`, value one of the three status
// strings. No structured envelope on purpose; the status string is the
// whole record.
//
// Table requirements:
//   - PK: pk (string)

type StatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusStore = (*StatusDynamoRepository)(nil)

func NewStatusDynamoRepository(ddb *dynamodb.Client) *StatusDynamoRepository {
	return &StatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *StatusDynamoRepository) Get(ctx context.Context, billingID string) (entities.PaymentStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: statusKeyPrefix + billingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it paymentStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return entities.PaymentStatus(it.Status), nil
}

func (r *StatusDynamoRepository) Put(ctx context.Context, billingID string, status entities.PaymentStatus) error {
	av, err := attributevalue.MarshalMap(paymentStatusItem{
		PK:     statusKeyPrefix + billingID,
		Status: string(status),
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
