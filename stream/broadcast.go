// Package stream provides the DynamoDB Streams handler that broadcasts
// railway delay updates to subscribed users.
package stream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/delaywire/store"
)

// Notifier delivers a delay payload to one user. Implementations wrap the
// outbound messaging channel (push service, chat bot, mail).
type Notifier interface {
	Notify(ctx context.Context, userID string, msgs store.DelayInfoMessages) error
}

// Handler processes DynamoDB stream events for delay broadcasting.
type Handler struct {
	store    *store.Store
	notifier Notifier
	logger   *slog.Logger
}

// NewHandler creates a new stream handler.
func NewHandler(s *store.Store, notifier Notifier, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:    s,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleDelayBroadcast processes DynamoDB stream events from the user records
// table. When the railway record's delay payload changes, every ordinary user
// is notified. This function is designed to be used as an AWS Lambda handler.
func (h *Handler) HandleDelayBroadcast(ctx context.Context, event events.DynamoDBEvent) error {
	for _, record := range event.Records {
		if err := h.processRecord(ctx, record); err != nil {
			h.logger.Error("failed to process record",
				"eventID", record.EventID,
				"error", err,
			)
			return err // Will retry, eventually DLQ
		}
	}
	return nil
}

// processRecord processes a single DynamoDB stream record.
func (h *Handler) processRecord(ctx context.Context, record events.DynamoDBEventRecord) error {
	// The railway record is written by UpdateRailway: MODIFY normally,
	// INSERT when the update upserted a missing record.
	if record.EventName != "MODIFY" && record.EventName != "INSERT" {
		return nil
	}
	if getStringAttr(record.Change.Keys, "user_id") != store.RailwayUserID {
		return nil
	}

	newLines := getDelayLines(record.Change.NewImage)
	oldLines := getDelayLines(record.Change.OldImage)

	// Only broadcast an actual change with something to say.
	if len(newLines) == 0 || sameLines(newLines, oldLines) {
		return nil
	}

	msgs := store.DelayInfoMessages{Lines: newLines}

	users, err := h.store.ScanUsers(ctx)
	if err != nil {
		return fmt.Errorf("scan users: %w", err)
	}

	h.logger.Info("broadcasting delay update",
		"lines", len(newLines),
		"userCount", len(users),
	)

	failed := 0
	for _, user := range users {
		if err := h.notifier.Notify(ctx, user.UserID, msgs); err != nil {
			h.logger.Warn("failed to notify user",
				"userID", user.UserID,
				"error", err,
			)
			failed++
			// Continue - one refused delivery must not stall the broadcast
		}
	}

	h.logger.Info("delay broadcast completed",
		"notified", len(users)-failed,
		"failed", failed,
	)

	return nil
}

// getStringAttr extracts a string attribute from a DynamoDB stream image.
func getStringAttr(image map[string]events.DynamoDBAttributeValue, key string) string {
	if v, ok := image[key]; ok {
		return v.String()
	}
	return ""
}

// getDelayLines extracts the delay message lines from a stream image's
// delay_info_messages map. Returns nil when the payload is absent or empty.
func getDelayLines(image map[string]events.DynamoDBAttributeValue) []string {
	payload, ok := image["delay_info_messages"]
	if !ok || payload.DataType() != events.DataTypeMap {
		return nil
	}
	lines, ok := payload.Map()["lines"]
	if !ok || lines.DataType() != events.DataTypeList {
		return nil
	}
	var result []string
	for _, item := range lines.List() {
		if item.DataType() == events.DataTypeString {
			result = append(result, item.String())
		}
	}
	return result
}

// sameLines reports whether two delay line lists are identical in order and
// content.
func sameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
