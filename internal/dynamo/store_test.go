package dynamo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/books"
	"github.com/mrlokans/bookshelf/internal/books/booktest"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const testTable = "books-test"

// fakeClient is an in-process stand-in for a single DynamoDB table keyed by "id".
type fakeClient struct {
	mu     sync.Mutex
	items  map[string]map[string]types.AttributeValue
	tables map[string]bool

	getErr error
	putErr error
	// createRace makes CreateTable behave as if another process won the race.
	createRace bool
	createErr  error

	createCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		items:  make(map[string]map[string]types.AttributeValue),
		tables: make(map[string]bool),
	}
}

func keyOf(av map[string]types.AttributeValue) string {
	if s, ok := av[AttrID].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := keyOf(params.Item)
	if params.ConditionExpression != nil {
		if _, exists := f.items[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(params.Key)]}, nil
}

func (f *fakeClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tables[aws.ToString(params.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("Requested resource not found")}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusActive,
		},
	}, nil
}

func (f *fakeClient) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.tables[aws.ToString(params.TableName)] = true
	if f.createRace {
		return nil, &types.ResourceInUseException{Message: aws.String("Table already exists: " + aws.ToString(params.TableName))}
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestStore_Conformance(t *testing.T) {
	var client *fakeClient

	booktest.Run(t, booktest.Harness{
		NewRepository: func(t *testing.T) books.Repository {
			client = newFakeClient()
			return NewRepository(client, testTable)
		},
		FetchBook: func(t *testing.T, id uuid.UUID) (*entities.Book, bool) {
			raw, ok := client.items[id.String()]
			if !ok {
				return nil, false
			}
			var it item
			require.NoError(t, attributevalue.UnmarshalMap(raw, &it))
			record, err := it.toRecord()
			require.NoError(t, err)
			return record.ToEntity(), true
		},
		InsertBook: func(t *testing.T, book *entities.Book) {
			raw, err := attributevalue.MarshalMap(itemFromRecord(books.RecordFromEntity(book)))
			require.NoError(t, err)
			client.items[book.ID.String()] = raw
		},
	})
}

func TestStore_Insert_DuplicateID(t *testing.T) {
	store := NewStore(newFakeClient(), testTable)
	record := books.RecordFromEntity(booktest.LordOfTheRings())
	record.ID = uuid.New()

	require.NoError(t, store.Insert(context.Background(), record))
	err := store.Insert(context.Background(), record)

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestStore_Insert_WritesTableAndAttributes(t *testing.T) {
	var captured *dynamodb.PutItemInput
	client := newFakeClient()
	store := NewStore(&capturingClient{fakeClient: client, onPut: func(in *dynamodb.PutItemInput) { captured = in }}, testTable)
	record := books.RecordFromEntity(booktest.LordOfTheRings())
	record.ID = uuid.New()

	require.NoError(t, store.Insert(context.Background(), record))

	require.NotNil(t, captured)
	assert.Equal(t, testTable, aws.ToString(captured.TableName))
	for _, attr := range []string{"id", "author", "title", "publishing_date"} {
		assert.Contains(t, captured.Item, attr)
	}
	assert.Equal(t, &types.AttributeValueMemberS{Value: record.ID.String()}, captured.Item[AttrID])
}

func TestStore_FindByID_ClientError(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("request timeout")
	repo := NewRepository(client, testTable)

	_, err := repo.Get(context.Background(), uuid.New())

	require.Error(t, err)
	assert.NotErrorIs(t, err, books.ErrNotFound)
	assert.ErrorIs(t, err, client.getErr)
}

func TestStore_FindByID_CorruptID(t *testing.T) {
	client := newFakeClient()
	id := uuid.New()
	client.items[id.String()] = map[string]types.AttributeValue{
		AttrID: &types.AttributeValueMemberS{Value: "not-a-uuid"},
	}
	store := NewStore(client, testTable)

	_, _, err := store.FindByID(context.Background(), id)

	assert.Error(t, err)
}

func TestEnsureTable(t *testing.T) {
	client := newFakeClient()
	ctx := context.Background()

	require.NoError(t, EnsureTable(ctx, client, testTable))
	assert.Equal(t, 1, client.createCalls)

	// Existing table is left alone.
	require.NoError(t, EnsureTable(ctx, client, testTable))
	assert.Equal(t, 1, client.createCalls)
}

func TestEnsureTable_ConcurrentCreate(t *testing.T) {
	client := newFakeClient()
	client.createRace = true

	err := EnsureTable(context.Background(), client, testTable)

	require.NoError(t, err)
	assert.Equal(t, 1, client.createCalls)
}

func TestEnsureTable_CreateFailure(t *testing.T) {
	client := newFakeClient()
	client.createErr = errors.New("access denied")

	err := EnsureTable(context.Background(), client, testTable)

	assert.ErrorIs(t, err, client.createErr)
}

type capturingClient struct {
	*fakeClient
	onPut func(*dynamodb.PutItemInput)
}

func (c *capturingClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.onPut(params)
	return c.fakeClient.PutItem(ctx, params, optFns...)
}
