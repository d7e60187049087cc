// Package dynamo implements books.Store on AWS DynamoDB.
//
// Books live in a single table keyed by the string attribute "id".
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/books"
)

const AttrID = "id"

// ErrDuplicateID is returned by Insert when an item with the same id exists.
var ErrDuplicateID = errors.New("book id already exists")

type item struct {
	ID             string    `dynamodbav:"id"`
	Author         string    `dynamodbav:"author"`
	Title          string    `dynamodbav:"title"`
	PublishingDate time.Time `dynamodbav:"publishing_date"`
}

type Store struct {
	client    Client
	tableName string
}

func NewStore(client Client, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// NewRepository wraps a DynamoDB store in the domain repository contract.
func NewRepository(client Client, tableName string, opts ...books.StoreOption) *books.StoreRepository {
	return books.NewStoreRepository(NewStore(client, tableName), opts...)
}

func (s *Store) Insert(ctx context.Context, record books.Record) error {
	av, err := attributevalue.MarshalMap(itemFromRecord(record))
	if err != nil {
		return fmt.Errorf("failed to marshal book: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": AttrID,
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
		}
		return fmt.Errorf("failed to put book: %w", err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (books.Record, bool, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            itemKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return books.Record{}, false, fmt.Errorf("failed to get book: %w", err)
	}
	if len(result.Item) == 0 {
		return books.Record{}, false, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
		return books.Record{}, false, fmt.Errorf("failed to unmarshal book: %w", err)
	}
	record, err := it.toRecord()
	if err != nil {
		return books.Record{}, false, err
	}
	return record, true, nil
}

func itemKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrID: &types.AttributeValueMemberS{Value: id.String()},
	}
}

func itemFromRecord(r books.Record) item {
	return item{
		ID:             r.ID.String(),
		Author:         r.Author,
		Title:          r.Title,
		PublishingDate: r.PublishingDate,
	}
}

func (it item) toRecord() (books.Record, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return books.Record{}, fmt.Errorf("invalid book id %q: %w", it.ID, err)
	}
	return books.Record{
		ID:             id,
		Author:         it.Author,
		Title:          it.Title,
		PublishingDate: it.PublishingDate,
	}, nil
}
