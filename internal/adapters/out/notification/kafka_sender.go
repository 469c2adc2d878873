// Package notification publishes customer notification events to Kafka.
// Delivery to the actual channel (email, push) is handled by a downstream
// consumer of the notification topic; from this service's point of view a
// notification is sent once the event is written to the broker.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// Event types carried in the notification topic.
const (
	EventOrderConfirmed = "order.confirmed"
	EventOrderShipped   = "order.shipped"
	EventUserWelcome    = "user.welcome"
	EventPasswordReset  = "user.password_reset"
)

// messageWriter is the slice of kafka.Writer this sender needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// notificationEvent is the wire format of one notification.
// Amount and TrackingNumber are set depending on the event type.
type notificationEvent struct {
	EventType      string    `json:"event_type"`
	Email          string    `json:"email"`
	OrderID        string    `json:"order_id,omitempty"`
	Amount         string    `json:"amount,omitempty"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	Name           string    `json:"name,omitempty"`
	ResetToken     string    `json:"reset_token,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// KafkaNotificationSender implements NotificationSender over a Kafka topic.
// Messages are keyed by recipient email so all notifications for one
// customer land in the same partition, in order.
type KafkaNotificationSender struct {
	writer messageWriter
}

// NewWriter builds a Kafka writer for the notification topic.
func NewWriter(host, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(host),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafkaNotificationSender creates a sender publishing to the given writer.
func NewKafkaNotificationSender(writer messageWriter) *KafkaNotificationSender {
	return &KafkaNotificationSender{writer: writer}
}

// SendOrderConfirmation publishes a payment confirmation event.
func (s *KafkaNotificationSender) SendOrderConfirmation(
	ctx context.Context, email string, orderID kernel.UUID, amount kernel.Money,
) error {
	return s.publish(ctx, notificationEvent{
		EventType: EventOrderConfirmed,
		Email:     email,
		OrderID:   orderID.String(),
		Amount:    amount.String(),
	})
}

// SendShippingNotice publishes a shipping event with the tracking number.
func (s *KafkaNotificationSender) SendShippingNotice(
	ctx context.Context, email string, orderID kernel.UUID, trackingNumber string,
) error {
	return s.publish(ctx, notificationEvent{
		EventType:      EventOrderShipped,
		Email:          email,
		OrderID:        orderID.String(),
		TrackingNumber: trackingNumber,
	})
}

// SendWelcome publishes a welcome event for a new user.
func (s *KafkaNotificationSender) SendWelcome(ctx context.Context, email, name string) error {
	return s.publish(ctx, notificationEvent{
		EventType: EventUserWelcome,
		Email:     email,
		Name:      name,
	})
}

// SendPasswordReset publishes a password reset event carrying the token.
func (s *KafkaNotificationSender) SendPasswordReset(ctx context.Context, email, token string) error {
	return s.publish(ctx, notificationEvent{
		EventType:  EventPasswordReset,
		Email:      email,
		ResetToken: token,
	})
}

// Close closes the underlying Kafka writer.
func (s *KafkaNotificationSender) Close() error {
	return s.writer.Close()
}

func (s *KafkaNotificationSender) publish(ctx context.Context, event notificationEvent) error {
	event.OccurredAt = time.Now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification event: %w", err)
	}

	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Email),
		Value: data,
		Time:  event.OccurredAt,
	})
}
