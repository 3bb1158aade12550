package repository

import (
	"context"
	"time"

	appconfig "major_home/internal/config"
	"major_home/internal/domain/entities"
	"major_home/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type appointmentItem struct {
	ID            string `dynamodbav:"id"`
	LeadID        string `dynamodbav:"lead_id,omitempty"`
	ServiceType   string `dynamodbav:"service_type,omitempty"`
	PreferredDate string `dynamodbav:"preferred_date"`
	PreferredTime string `dynamodbav:"preferred_time,omitempty"`
	Status        string `dynamodbav:"status"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client, cfg appconfig.DynamoConfig) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: cfg.AppointmentsTable,
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:            a.ID,
		LeadID:        a.LeadID,
		ServiceType:   a.Service,
		PreferredDate: a.PreferredDate,
		PreferredTime: a.PreferredTime,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Appointment{
		ID:            it.ID,
		LeadID:        it.LeadID,
		Service:       it.ServiceType,
		PreferredDate: it.PreferredDate,
		PreferredTime: it.PreferredTime,
		Status:        entities.AppointmentStatus(it.Status),
		CreatedAt:     createdAt,
	}
}
