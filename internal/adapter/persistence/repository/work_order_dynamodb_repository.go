package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "work_orders"

type lineItemRecord struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Category    string  `dynamodbav:"category"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   string  `dynamodbav:"unit_price"`
	Total       string  `dynamodbav:"total"`
	PartID      string  `dynamodbav:"part_id,omitempty"`
	LaborHours  float64 `dynamodbav:"labor_hours,omitempty"`
}

type workOrderItem struct {
	ID              string           `dynamodbav:"id"`
	ScenarioID      string           `dynamodbav:"scenario_id,omitempty"`
	LineItems       []lineItemRecord `dynamodbav:"line_items"`
	Subtotal        string           `dynamodbav:"subtotal"`
	Tax             string           `dynamodbav:"tax"`
	Total           string           `dynamodbav:"total"`
	EstimatedHours  string           `dynamodbav:"estimated_hours"`
	ScheduledDate   string           `dynamodbav:"scheduled_date,omitempty"`
	TechnicianNotes string           `dynamodbav:"technician_notes,omitempty"`
	Status          string           `dynamodbav:"status"`
	CreatedAt       string           `dynamodbav:"created_at"`
	UpdatedAt       string           `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The work-order id assigned at scoping time ("WO-<year>-<seq>") is the PK,
// so committing the same scenario twice fails the conditional put instead of
// duplicating the order.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	it := toWorkOrderItem(wo)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
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
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	items := make([]lineItemRecord, 0, len(wo.LineItems))
	for _, li := range wo.LineItems {
		items = append(items, lineItemRecord{
			ID:          li.ID,
			Description: li.Description,
			Category:    string(li.Category),
			Quantity:    li.Quantity,
			UnitPrice:   floatToString(li.UnitPrice),
			Total:       floatToString(li.Total),
			PartID:      li.PartID,
			LaborHours:  li.LaborHours,
		})
	}
	return workOrderItem{
		ID:              wo.ID,
		ScenarioID:      wo.ScenarioID,
		LineItems:       items,
		Subtotal:        floatToString(wo.Subtotal),
		Tax:             floatToString(wo.Tax),
		Total:           floatToString(wo.Total),
		EstimatedHours:  floatToString(wo.EstimatedHours),
		ScheduledDate:   wo.ScheduledDate,
		TechnicianNotes: wo.TechnicianNotes,
		Status:          string(wo.Status),
		CreatedAt:       wo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       wo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, rec := range it.LineItems {
		unitPrice, _ := strconv.ParseFloat(rec.UnitPrice, 64)
		total, _ := strconv.ParseFloat(rec.Total, 64)
		items = append(items, entities.LineItem{
			ID:          rec.ID,
			Description: rec.Description,
			Category:    entities.LineItemCategory(rec.Category),
			Quantity:    rec.Quantity,
			UnitPrice:   unitPrice,
			Total:       total,
			PartID:      rec.PartID,
			LaborHours:  rec.LaborHours,
		})
	}
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	tax, _ := strconv.ParseFloat(it.Tax, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	hours, _ := strconv.ParseFloat(it.EstimatedHours, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.WorkOrder{
		ID:              it.ID,
		ScenarioID:      it.ScenarioID,
		LineItems:       items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		EstimatedHours:  hours,
		ScheduledDate:   it.ScheduledDate,
		TechnicianNotes: it.TechnicianNotes,
		Status:          entities.WorkOrderStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
