package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"commerce/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *capturingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaNotificationSender_SendOrderConfirmation(t *testing.T) {
	writer := &capturingWriter{}
	sender := NewKafkaNotificationSender(writer)

	orderID := kernel.NewUUID()
	amount, err := kernel.MoneyFromString("25.00")
	require.NoError(t, err)

	err = sender.SendOrderConfirmation(t.Context(), "alice@example.com", orderID, amount)
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "alice@example.com", string(msg.Key))

	var event notificationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, EventOrderConfirmed, event.EventType)
	assert.Equal(t, "alice@example.com", event.Email)
	assert.Equal(t, orderID.String(), event.OrderID)
	assert.Equal(t, "25", event.Amount)
	assert.Empty(t, event.TrackingNumber)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestKafkaNotificationSender_SendShippingNotice(t *testing.T) {
	writer := &capturingWriter{}
	sender := NewKafkaNotificationSender(writer)

	orderID := kernel.NewUUID()
	err := sender.SendShippingNotice(t.Context(), "alice@example.com", orderID, "TRACK-123")
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	var event notificationEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, EventOrderShipped, event.EventType)
	assert.Equal(t, orderID.String(), event.OrderID)
	assert.Equal(t, "TRACK-123", event.TrackingNumber)
	assert.Empty(t, event.Amount)
}

func TestKafkaNotificationSender_SendWelcome(t *testing.T) {
	writer := &capturingWriter{}
	sender := NewKafkaNotificationSender(writer)

	err := sender.SendWelcome(t.Context(), "alice@example.com", "Alice")
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	var event notificationEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, EventUserWelcome, event.EventType)
	assert.Equal(t, "Alice", event.Name)
	assert.Empty(t, event.OrderID)
}

func TestKafkaNotificationSender_SendPasswordReset(t *testing.T) {
	writer := &capturingWriter{}
	sender := NewKafkaNotificationSender(writer)

	err := sender.SendPasswordReset(t.Context(), "alice@example.com", "token-123")
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	var event notificationEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, EventPasswordReset, event.EventType)
	assert.Equal(t, "alice@example.com", event.Email)
	assert.Equal(t, "token-123", event.ResetToken)
	assert.Empty(t, event.OrderID)
}

func TestKafkaNotificationSender_WriterErrorIsPropagated(t *testing.T) {
	writer := &capturingWriter{err: errors.New("broker unreachable")}
	sender := NewKafkaNotificationSender(writer)

	err := sender.SendWelcome(t.Context(), "alice@example.com", "Alice")
	require.Error(t, err)
}

func TestKafkaNotificationSender_Close(t *testing.T) {
	writer := &capturingWriter{}
	sender := NewKafkaNotificationSender(writer)

	require.NoError(t, sender.Close())
	assert.True(t, writer.closed)
}
