package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI is the subset of the AWS SDK v2 DynamoDB client used by the
// Store. It mirrors the method signatures of *dynamodb.Client so the real
// client satisfies it directly, while tests can supply an in-memory double.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// ClientOption customizes the AWS configuration used by NewClient.
type ClientOption = func(*config.LoadOptions) error

// WithRegion pins the client to an AWS region.
func WithRegion(region string) ClientOption {
	return config.WithRegion(region)
}

// WithStaticCredentials uses a fixed access key pair instead of the default
// credential chain. Intended for local DynamoDB endpoints and CI.
func WithStaticCredentials(accessKey, secretKey string) ClientOption {
	return config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	)
}

// NewClient builds a DynamoDB client from the default AWS configuration
// chain, applying any options on top.
func NewClient(ctx context.Context, optFns ...ClientOption) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}
