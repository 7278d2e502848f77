package store

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RailwayUserID keys the reserved record that carries system-wide railway
// delay state. Exactly one record uses it; every other record is an ordinary
// user.
const RailwayUserID = "railway"

// DelayInfoMessages is the delay payload attached to a user or to the
// reserved railway record: one human-readable message per delayed line.
type DelayInfoMessages struct {
	Lines []string `dynamodbav:"lines"`
}

// UserRecord is one row of the user records table.
type UserRecord struct {
	// UserID is the primary key. It never changes after creation.
	UserID string `dynamodbav:"user_id"`

	// CreatedTime is the Unix-second UTC timestamp set once at creation.
	CreatedTime int64 `dynamodbav:"created_time"`

	// UpdatedTime is the Unix-second UTC timestamp touched on every update.
	UpdatedTime int64 `dynamodbav:"updated_time"`

	// DelayInfoMessages is nil until the first update sets it.
	DelayInfoMessages *DelayInfoMessages `dynamodbav:"delay_info_messages,omitempty"`
}

// IsRailway reports whether this is the reserved railway record.
func (u *UserRecord) IsRailway() bool {
	return u.UserID == RailwayUserID
}

// UpdatedRecord is the typed view of the attributes an update rewrote,
// decoded from DynamoDB's UPDATED_NEW response.
type UpdatedRecord struct {
	UpdatedTime       int64              `dynamodbav:"updated_time"`
	DelayInfoMessages *DelayInfoMessages `dynamodbav:"delay_info_messages"`
}

// userKey builds the table primary key for a user ID.
func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
	}
}

// marshalRecord converts a UserRecord to its item representation.
func marshalRecord(u UserRecord) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(u)
}

// unmarshalRecord converts a raw item back into a UserRecord.
func unmarshalRecord(item map[string]types.AttributeValue) (*UserRecord, error) {
	u := new(UserRecord)
	if err := attributevalue.UnmarshalMap(item, u); err != nil {
		return nil, err
	}
	return u, nil
}
