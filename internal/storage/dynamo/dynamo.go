// Package dynamo provides a DynamoDB-backed implementation of storage.KV.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mmynk/topten/internal/storage"
)

// Ensure Store implements storage.KV
var _ storage.KV = (*Store)(nil)

// API is the subset of the DynamoDB client the store uses.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// record is the stored item shape. The table's partition key is "pk" (string).
type record struct {
	PK    string `dynamodbav:"pk"`
	Value []byte `dynamodbav:"value"`
}

// Store implements storage.KV on a single DynamoDB table.
type Store struct {
	client    API
	tableName string
}

// Options configures the AWS client built by New.
type Options struct {
	TableName string
	Region    string
	// Endpoint overrides the service endpoint (e.g. DynamoDB Local).
	Endpoint string
}

// New loads the default AWS configuration and creates a Store.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.TableName == "" {
		return nil, fmt.Errorf("dynamodb table name is required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return NewWithClient(client, opts.TableName), nil
}

// NewWithClient creates a Store over an existing client.
func NewWithClient(client API, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

func (s *Store) key(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: key},
	}
}

// Get performs a strongly consistent read of key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, storage.ErrNotFound
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshaling item %s: %w", key, err)
	}
	return rec.Value, nil
}

// Set writes key unconditionally.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(record{PK: key, Value: value})
	if err != nil {
		return fmt.Errorf("marshaling item %s: %w", key, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.key(key),
	})
	if err != nil {
		return fmt.Errorf("dynamodb delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the AWS client holds no long-lived resources.
func (s *Store) Close() error {
	return nil
}
