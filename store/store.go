package store

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Store provides the user record operations over a single DynamoDB table.
type Store struct {
	client DynamoDBAPI
	config Config

	// now is swapped out by tests for deterministic timestamps.
	now func() int64
}

// New creates a new Store instance.
func New(client DynamoDBAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
		now:    func() int64 { return time.Now().UTC().Unix() },
	}
}

// TableName returns the backing table name.
func (s *Store) TableName() string {
	return s.config.TableName
}

// Create registers a user record with created_time == updated_time == now and
// no delay payload. An existing record with the same key is overwritten
// unconditionally.
func (s *Store) Create(ctx context.Context, userID string) error {
	now := s.now()
	item, err := marshalRecord(UserRecord{
		UserID:      userID,
		CreatedTime: now,
		UpdatedTime: now,
	})
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      item,
	})
	return err
}

// Update rewrites delay_info_messages and updated_time on the record keyed by
// userID, leaving all other attributes untouched, and returns the new values
// of the rewritten attributes.
//
// DynamoDB upserts on a missing key: updating a user that was never created
// leaves a sparse record with no created_time. Callers that care should
// Create first; this layer does not add an existence check.
func (s *Store) Update(ctx context.Context, userID string, msgs DelayInfoMessages) (*UpdatedRecord, error) {
	msgsAttr, err := attributevalue.Marshal(msgs)
	if err != nil {
		return nil, err
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.config.TableName),
		Key:              userKey(userID),
		UpdateExpression: aws.String("SET #delay_info_messages = :delay_info_messages, #updated_time = :updated_time"),
		ExpressionAttributeNames: map[string]string{
			"#delay_info_messages": "delay_info_messages",
			"#updated_time":        "updated_time",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delay_info_messages": msgsAttr,
			":updated_time":        &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now(), 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return nil, err
	}

	updated := new(UpdatedRecord)
	if err := attributevalue.UnmarshalMap(out.Attributes, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateRailway updates the reserved railway record's delay payload.
func (s *Store) UpdateRailway(ctx context.Context, msgs DelayInfoMessages) (*UpdatedRecord, error) {
	return s.Update(ctx, RailwayUserID, msgs)
}

// Delete removes the record keyed by userID. Deleting a missing key is not an
// error.
func (s *Store) Delete(ctx context.Context, userID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       userKey(userID),
	})
	return err
}

// Get retrieves the record keyed by userID, or nil when no such record
// exists.
func (s *Store) Get(ctx context.Context, userID string) (*UserRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       userKey(userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	return unmarshalRecord(out.Item)
}

// GetRailway retrieves the reserved railway record, returning
// ErrRailwayNotRegistered when it does not exist.
func (s *Store) GetRailway(ctx context.Context) (*UserRecord, error) {
	record, err := s.Get(ctx, RailwayUserID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRailwayNotRegistered
	}
	return record, nil
}

// ScanUsers returns every ordinary user record, excluding the railway record
// with a server-side filter. Order is whatever DynamoDB returns.
//
// A single Scan call is issued: tables larger than one scan page return a
// truncated result, inherited from the client semantics.
func (s *Store) ScanUsers(ctx context.Context) ([]UserRecord, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(s.config.TableName),
		FilterExpression: aws.String("user_id <> :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: RailwayUserID},
		},
	})
	if err != nil {
		return nil, err
	}

	users := make([]UserRecord, 0, len(out.Items))
	for _, item := range out.Items {
		record, err := unmarshalRecord(item)
		if err != nil {
			return nil, err
		}
		users = append(users, *record)
	}
	return users, nil
}
