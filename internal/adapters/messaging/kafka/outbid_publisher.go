// Package kafka publishes auction events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/auctionbay/internal/core/domain"
	"github.com/SscSPs/auctionbay/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// OutbidEvent is the message body written for each outbid notification.
type OutbidEvent struct {
	NotificationID int64     `json:"notificationID"`
	UserID         string    `json:"userID"`
	AuctionID      int64     `json:"auctionID"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Timestamp      time.Time `json:"timestamp"`
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OutbidPublisher implements events.OutbidPublisher.
type OutbidPublisher struct {
	writer MessageWriter
}

// NewWriter builds a writer for topic that hashes keys onto partitions, so all
// events for a recipient stay ordered.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}

// NewOutbidPublisher wraps writer.
func NewOutbidPublisher(writer MessageWriter) *OutbidPublisher {
	return &OutbidPublisher{writer: writer}
}

var _ events.OutbidPublisher = (*OutbidPublisher)(nil)

// PublishOutbid writes one message keyed by the recipient's user ID.
func (p *OutbidPublisher) PublishOutbid(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(OutbidEvent{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		AuctionID:      n.AuctionID,
		Type:           string(n.Kind),
		Title:          n.Title,
		Timestamp:      n.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal outbid event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(n.UserID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(domain.NotificationOutbid)},
			{Key: "auction-id", Value: []byte(strconv.FormatInt(n.AuctionID, 10))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write outbid event for user %s: %w", n.UserID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *OutbidPublisher) Close() error {
	return p.writer.Close()
}
