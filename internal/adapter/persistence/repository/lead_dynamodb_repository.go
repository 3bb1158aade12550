package repository

import (
	"context"
	"errors"
	"time"

	appconfig "major_home/internal/config"
	"major_home/internal/domain/entities"
	"major_home/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type leadItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email"`
	Phone           string `dynamodbav:"phone,omitempty"`
	Address         string `dynamodbav:"address,omitempty"`
	ServiceInterest string `dynamodbav:"service_interest,omitempty"`
	Source          string `dynamodbav:"source"`
	Notes           string `dynamodbav:"notes,omitempty"`
	QuoteDataRaw    string `dynamodbav:"quote_data_raw,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client, cfg appconfig.DynamoConfig) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: cfg.LeadsTable,
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:              l.ID,
		Name:            l.Name,
		Email:           l.Email,
		Phone:           l.Phone,
		Address:         l.Address,
		ServiceInterest: l.ServiceInterest,
		Source:          l.Source,
		Notes:           l.Notes,
		QuoteDataRaw:    string(l.QuoteData),
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	l := entities.Lead{
		ID:              it.ID,
		Name:            it.Name,
		Email:           it.Email,
		Phone:           it.Phone,
		Address:         it.Address,
		ServiceInterest: it.ServiceInterest,
		Source:          it.Source,
		Notes:           it.Notes,
		Status:          entities.LeadStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.QuoteDataRaw != "" {
		l.QuoteData = []byte(it.QuoteDataRaw)
	}
	return l
}
