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

const defaultOutreachTableName = "outreach"

type outreachAnalysisRecord struct {
	Findings          []string `dynamodbav:"findings,omitempty"`
	HistoricalContext string   `dynamodbav:"historical_context,omitempty"`
	RiskFactor        string   `dynamodbav:"risk_factor,omitempty"`
}

type outreachItem struct {
	ID               string                 `dynamodbav:"id"`
	CustomerID       string                 `dynamodbav:"customer_id"`
	VesselID         string                 `dynamodbav:"vessel_id,omitempty"`
	Title            string                 `dynamodbav:"title"`
	Message          string                 `dynamodbav:"message,omitempty"`
	Trigger          string                 `dynamodbav:"trigger,omitempty"`
	TriggerType      string                 `dynamodbav:"trigger_type,omitempty"`
	Priority         string                 `dynamodbav:"priority"`
	Status           string                 `dynamodbav:"status"`
	EstimatedRevenue string                 `dynamodbav:"estimated_revenue"`
	Channel          string                 `dynamodbav:"channel"`
	CreatedDate      string                 `dynamodbav:"created_date,omitempty"`
	DueDate          string                 `dynamodbav:"due_date,omitempty"`
	AIConfidence     float64                `dynamodbav:"ai_confidence,omitempty"`
	AIReasoning      string                 `dynamodbav:"ai_reasoning,omitempty"`
	AIAnalysis       outreachAnalysisRecord `dynamodbav:"ai_analysis,omitempty"`
	UpdatedAt        string                 `dynamodbav:"updated_at,omitempty"`
}

// OutreachDynamoRepository persists ProactiveOutreach entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The dashboard always works on the full set (it is small and filtered
// in-process), so listing is a Scan rather than a query.

type OutreachDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOutreachRepository = (*OutreachDynamoRepository)(nil)

func NewOutreachDynamoRepository(ddb *dynamodb.Client) *OutreachDynamoRepository {
	return &OutreachDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OUTREACH_TABLE", defaultOutreachTableName),
	}
}

func (r *OutreachDynamoRepository) Create(ctx context.Context, o entities.ProactiveOutreach) (entities.ProactiveOutreach, error) {
	it := toOutreachItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProactiveOutreach{}, err
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
		return entities.ProactiveOutreach{}, err
	}
	return o, nil
}

func (r *OutreachDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProactiveOutreach, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProactiveOutreach{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProactiveOutreach{}, nil
	}

	var it outreachItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProactiveOutreach{}, err
	}
	return fromOutreachItem(it), nil
}

func (r *OutreachDynamoRepository) List(ctx context.Context) ([]entities.ProactiveOutreach, error) {
	items := make([]entities.ProactiveOutreach, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it outreachItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOutreachItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *OutreachDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.OutreachStatus) (entities.ProactiveOutreach, error) {
	return r.update(ctx, id, "SET #status = :v, #updated_at = :updated_at",
		map[string]string{"#status": "status", "#updated_at": "updated_at"},
		&types.AttributeValueMemberS{Value: string(status)})
}

func (r *OutreachDynamoRepository) UpdateMessageByID(ctx context.Context, id string, message string) (entities.ProactiveOutreach, error) {
	return r.update(ctx, id, "SET #message = :v, #updated_at = :updated_at",
		map[string]string{"#message": "message", "#updated_at": "updated_at"},
		&types.AttributeValueMemberS{Value: message})
}

func (r *OutreachDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, value types.AttributeValue) (entities.ProactiveOutreach, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":          value,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProactiveOutreach{}, nil
		}
		return entities.ProactiveOutreach{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ProactiveOutreach{}, nil
	}
	var it outreachItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProactiveOutreach{}, err
	}
	return fromOutreachItem(it), nil
}

func toOutreachItem(o entities.ProactiveOutreach) outreachItem {
	updatedAt := ""
	if !o.UpdatedAt.IsZero() {
		updatedAt = o.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return outreachItem{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		VesselID:         o.VesselID,
		Title:            o.Title,
		Message:          o.Message,
		Trigger:          o.Trigger,
		TriggerType:      o.TriggerType,
		Priority:         string(o.Priority),
		Status:           string(o.Status),
		EstimatedRevenue: floatToString(o.EstimatedRevenue),
		Channel:          o.Channel,
		CreatedDate:      o.CreatedDate,
		DueDate:          o.DueDate,
		AIConfidence:     o.AIConfidence,
		AIReasoning:      o.AIReasoning,
		AIAnalysis: outreachAnalysisRecord{
			Findings:          o.AIAnalysis.Findings,
			HistoricalContext: o.AIAnalysis.HistoricalContext,
			RiskFactor:        o.AIAnalysis.RiskFactor,
		},
		UpdatedAt: updatedAt,
	}
}

func fromOutreachItem(it outreachItem) entities.ProactiveOutreach {
	revenue, _ := strconv.ParseFloat(it.EstimatedRevenue, 64)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProactiveOutreach{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		VesselID:         it.VesselID,
		Title:            it.Title,
		Message:          it.Message,
		Trigger:          it.Trigger,
		TriggerType:      it.TriggerType,
		Priority:         entities.OutreachPriority(it.Priority),
		Status:           entities.OutreachStatus(it.Status),
		EstimatedRevenue: revenue,
		Channel:          it.Channel,
		CreatedDate:      it.CreatedDate,
		DueDate:          it.DueDate,
		AIConfidence:     it.AIConfidence,
		AIReasoning:      it.AIReasoning,
		AIAnalysis: entities.OutreachAnalysis{
			Findings:          it.AIAnalysis.Findings,
			HistoricalContext: it.AIAnalysis.HistoricalContext,
			RiskFactor:        it.AIAnalysis.RiskFactor,
		},
		UpdatedAt: updatedAt,
	}
}
