package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"webquote/internal/domain/entities"
	"webquote/internal/usecase/interfaces"
)

const DefaultQuotesTableName = "quotes"

type lineItemAttr struct {
	Name  string  `dynamodbav:"name"`
	Value float64 `dynamodbav:"value"`
}

type quoteItem struct {
	ID              string         `dynamodbav:"id"`
	Number          string         `dynamodbav:"number"`
	SessionID       string         `dynamodbav:"session_id"`
	Category        string         `dynamodbav:"category,omitempty"`
	Stack           string         `dynamodbav:"stack"`
	Items           []lineItemAttr `dynamodbav:"items"`
	Total           float64        `dynamodbav:"total"`
	Duration        int            `dynamodbav:"duration"`
	CustomerName    string         `dynamodbav:"customer_name,omitempty"`
	CustomerContact string         `dynamodbav:"customer_contact,omitempty"`
	Status          string         `dynamodbav:"status"`
	CreatedAt       string         `dynamodbav:"created_at"`
	UpdatedAt       string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists issued quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
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

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]lineItemAttr, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, lineItemAttr{Name: li.Name, Value: li.Value})
	}
	return quoteItem{
		ID:              q.ID,
		Number:          q.Number,
		SessionID:       q.SessionID,
		Category:        string(q.Category),
		Stack:           string(q.Stack),
		Items:           items,
		Total:           q.Total,
		Duration:        q.Duration,
		CustomerName:    q.CustomerName,
		CustomerContact: q.CustomerContact,
		Status:          string(q.Status),
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{Name: li.Name, Value: li.Value})
	}
	return entities.Quote{
		ID:              it.ID,
		Number:          it.Number,
		SessionID:       it.SessionID,
		Category:        entities.Category(it.Category),
		Stack:           entities.Stack(it.Stack),
		Items:           items,
		Total:           it.Total,
		Duration:        it.Duration,
		CustomerName:    it.CustomerName,
		CustomerContact: it.CustomerContact,
		Status:          entities.QuoteStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
