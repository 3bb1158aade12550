package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	appconfig "major_home/internal/config"
	"major_home/internal/domain/entities"
	"major_home/internal/domain/pricing"
	"major_home/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotesLeadIDIndex = "lead_id-index"

type quoteItem struct {
	ID            string   `dynamodbav:"id"`
	LeadID        string   `dynamodbav:"lead_id,omitempty"`
	ServiceType   string   `dynamodbav:"service_type"`
	Tier          string   `dynamodbav:"tier"`
	SquareFootage int      `dynamodbav:"square_footage"`
	Stories       int      `dynamodbav:"stories"`
	Addons        []string `dynamodbav:"addons,omitempty"`
	PriceLow      string   `dynamodbav:"price_low"`
	PriceHigh     string   `dynamodbav:"price_high"`
	ResultRaw     string   `dynamodbav:"result_raw,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index on lead_id (string)
//
// The full pricing result is stored as raw JSON so a saved breakdown can be
// re-rendered without recomputation.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, cfg appconfig.DynamoConfig) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: cfg.QuotesTable,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	resultRaw, err := json.Marshal(q.Result)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:            q.ID,
		LeadID:        q.LeadID,
		ServiceType:   string(q.Service),
		Tier:          string(q.Tier),
		SquareFootage: q.SquareFootage,
		Stories:       q.Stories,
		Addons:        q.Addons,
		PriceLow:      floatToString(q.PriceLow),
		PriceHigh:     floatToString(q.PriceHigh),
		ResultRaw:     string(resultRaw),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	priceLow, _ := strconv.ParseFloat(it.PriceLow, 64)
	priceHigh, _ := strconv.ParseFloat(it.PriceHigh, 64)

	var result pricing.Result
	if it.ResultRaw != "" {
		_ = json.Unmarshal([]byte(it.ResultRaw), &result)
	}

	return entities.Quote{
		ID:            it.ID,
		LeadID:        it.LeadID,
		Service:       pricing.ServiceType(it.ServiceType),
		Tier:          pricing.MaterialTier(it.Tier),
		SquareFootage: it.SquareFootage,
		Stories:       it.Stories,
		Addons:        it.Addons,
		PriceLow:      priceLow,
		PriceHigh:     priceHigh,
		Result:        result,
		CreatedAt:     createdAt,
	}
}
